package models

import "time"

// Booking statuses. A booking counts as occupying its slot unless it has
// been rejected or cancelled.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ActiveStatuses are the statuses that keep a slot occupied.
var ActiveStatuses = []string{StatusPending, StatusApproved, StatusCompleted}

// Booking represents a committed appointment reservation.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctor_id" json:"doctor_id"`
	PatientID string    `bson:"patient_id" json:"patient_id"`
	Date      string    `bson:"date" json:"date"` // "DD-MM-YYYY"
	Time      string    `bson:"time" json:"time"` // "HH:mm"
	Status    string    `bson:"status" json:"status"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsActive reports whether the booking still occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusRejected && b.Status != StatusCancelled
}
