package notification

// NotificationService delivers messages to users (doctors and patients).
// Delivery is asynchronous: Notify only enqueues, and the booking path
// treats enqueue failure as non-fatal.
type NotificationService interface {
	Notify(userID, message string, metadata map[string]string) error
}
