package models

// BookingNotification is the payload enqueued for the notification worker
// after a successful booking commit.
type BookingNotification struct {
	UserID    string            `json:"userId"`
	Message   string            `json:"message"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	BookingID string            `json:"bookingId,omitempty"`
}
