package schedule

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book reserves a slot. The earlier read-time availability check is
// advisory only: the window is re-derived and the reservation is performed
// as one conditional insert, so of any number of concurrent attempts for
// the same (doctor, date, time) exactly one succeeds and the rest are told
// the slot was taken.
func (s *DefaultScheduleService) Book(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if _, err := time.Parse(WireDate, req.Date); err != nil {
		return nil, NewInvalidSlotError(fmt.Sprintf("invalid date %q", req.Date))
	}
	if !hhmmRe.MatchString(req.Time) {
		return nil, NewInvalidSlotError(fmt.Sprintf("invalid time %q", req.Time))
	}

	// Re-derive the doctor's current window; timing data may have changed
	// since the patient last saw the slot list.
	raw, err := s.Doctors.GetConsultingHours(req.DoctorID)
	if err != nil {
		return nil, NewStorageUnavailableError(fmt.Sprintf("cannot load consulting hours: %v", err))
	}
	window, err := Normalize(raw)
	if err != nil {
		return nil, NewInvalidSlotError("doctor has no valid consulting window")
	}

	if !s.slotStillValid(window, req) {
		return nil, NewInvalidSlotError(
			fmt.Sprintf("time %s on %s is outside the doctor's bookable slots", req.Time, req.Date))
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    models.StatusPending,
		Reason:    req.Reason,
		CreatedAt: s.Clock.Now(),
	}

	insertCtx, cancel := context.WithTimeout(ctx, s.timeout(s.StorageLimit.BatchCheck, 5*time.Second))
	inserted, err := s.Bookings.InsertBookingIfAbsent(insertCtx, booking)
	cancel()
	if err != nil {
		return nil, NewStorageUnavailableError(fmt.Sprintf("booking insert failed: %v", err))
	}
	if !inserted {
		return nil, NewSlotTakenError(
			fmt.Sprintf("slot %s on %s for doctor %s was just taken", req.Time, req.Date, req.DoctorID))
	}

	// Fire-and-forget: notification failure must never roll back a booking.
	if err := s.Notifier.Notify(req.DoctorID,
		fmt.Sprintf("New appointment request for %s at %s", req.Date, req.Time),
		map[string]string{"bookingId": booking.ID, "patientId": req.PatientID}); err != nil {
		logger.Warn("failed to enqueue booking notification",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	return booking, nil
}

// slotStillValid checks that the requested time is one of the candidates
// the engine would offer right now: on the 30-minute grid inside the
// current window and clear of the advance-notice rules.
func (s *DefaultScheduleService) slotStillValid(window models.ConsultingWindow, req BookingRequest) bool {
	candidates := GenerateSlots(req.DoctorID, window, req.Date, s.SlotMinutes)
	candidates = s.Policy.FilterByNotice(candidates, req.Date, s.Clock.Now())
	for _, slot := range candidates {
		if slot.Time == req.Time {
			return true
		}
	}
	return false
}

// UpdateBookingStatus transitions a booking through the doctor/admin
// actions. Freeing transitions (reject/cancel) release the slot simply by
// leaving the active-status filter, so a waiting patient can book it.
func (s *DefaultScheduleService) UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	switch status {
	case models.StatusApproved, models.StatusRejected, models.StatusCompleted, models.StatusCancelled:
	default:
		return nil, NewInvalidSlotError(fmt.Sprintf("unknown status %q", status))
	}

	opCtx, cancel := context.WithTimeout(ctx, s.timeout(s.StorageLimit.BatchCheck, 5*time.Second))
	defer cancel()

	if err := s.Bookings.UpdateStatus(opCtx, bookingID, status); err != nil {
		return nil, NewStorageUnavailableError(fmt.Sprintf("status update failed: %v", err))
	}
	booking, err := s.Bookings.GetByID(opCtx, bookingID)
	if err != nil {
		return nil, NewStorageUnavailableError(fmt.Sprintf("booking reload failed: %v", err))
	}
	return booking, nil
}
