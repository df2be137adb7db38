package bookingRepo

import (
	"context"

	"medibook/models"
)

// BookingRepository defines the data access methods used by the scheduling
// engine. All reads treat rejected/cancelled bookings as non-occupying.
type BookingRepository interface {
	// ListBookedTimes returns every time occupied by an active booking for
	// the doctor and date, in one query.
	ListBookedTimes(ctx context.Context, doctorID, date string) ([]string, error)
	// IsSlotBooked checks a single (doctor, date, time) tuple.
	IsSlotBooked(ctx context.Context, doctorID, date, timeStr string) (bool, error)
	// InsertBookingIfAbsent atomically reserves the slot. It returns
	// (true, nil) when the booking was inserted, (false, nil) when an
	// active booking already holds the tuple, and a non-nil error only on
	// storage failure.
	InsertBookingIfAbsent(ctx context.Context, booking *models.Booking) (bool, error)
	// GetByID retrieves a booking by its ID.
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// UpdateStatus transitions a booking's status (approve/reject/complete/cancel).
	UpdateStatus(ctx context.Context, bookingID, status string) error
	// ListByDoctorDate returns all active bookings for a doctor on a date.
	ListByDoctorDate(ctx context.Context, doctorID, date string) ([]models.Booking, error)
	// EnsureIndexes creates the indexes the engine's correctness depends on.
	EnsureIndexes() error
}
