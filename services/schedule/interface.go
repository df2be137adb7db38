package schedule

import (
	"context"
	"time"

	bookingRepo "medibook/database/repository/booking"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/notification"
)

// AvailableSlotsResult is the payload served to the booking UI for one
// doctor and date.
type AvailableSlotsResult struct {
	Slots              []string            `json:"slots"`
	DoctorHoursDisplay string              `json:"doctorHoursDisplay,omitempty"`
	Suggestions        []models.Suggestion `json:"suggestions,omitempty"`
}

// BookingRequest carries a patient's commit attempt for one slot.
type BookingRequest struct {
	DoctorID  string `json:"doctorId" binding:"required"`
	PatientID string `json:"patientId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Reason    string `json:"reason"`
}

// ScheduleService defines the slot-scheduling engine's operations.
type ScheduleService interface {
	// AvailableSlots computes the bookable times for a doctor on a date.
	// A malformed consulting window or a fully booked date yields an empty
	// slot list with forward-looking suggestions attached, not an error.
	AvailableSlots(ctx context.Context, doctorID, date string) (AvailableSlotsResult, error)
	// Suggestions searches forward from date for the nearest confirmed-
	// available alternatives. An empty result is a normal outcome.
	Suggestions(ctx context.Context, doctorID, date string) ([]models.Suggestion, error)
	// Book performs the authoritative, race-safe reservation of one slot.
	Book(ctx context.Context, req BookingRequest) (*models.Booking, error)
	// UpdateBookingStatus transitions a booking (approve/reject/complete/cancel).
	UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)
}

// SearchConfig bounds the forward suggestion search.
type SearchConfig struct {
	MaxDaysAhead int
	MaxResults   int
	SampleStep   int
}

// Timeouts bounds the storage reads performed during resolution.
type Timeouts struct {
	BatchCheck  time.Duration
	SingleCheck time.Duration
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Doctors      doctorRepo.DoctorRepository
	Bookings     bookingRepo.BookingRepository
	Notifier     notification.NotificationService
	Clock        Clock
	Policy       NoticePolicy
	SlotMinutes  int
	Search       SearchConfig
	StorageLimit Timeouts
}

// DefaultSearchConfig samples every third candidate and stops after three
// confirmed alternatives within a week.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{MaxDaysAhead: 7, MaxResults: 3, SampleStep: 3}
}

// DefaultTimeouts bounds the batch read at 5s and single checks at 2s.
func DefaultTimeouts() Timeouts {
	return Timeouts{BatchCheck: 5 * time.Second, SingleCheck: 2 * time.Second}
}
