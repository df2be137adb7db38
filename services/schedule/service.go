package schedule

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// AvailableSlots computes the bookable times for a doctor on a date:
// generate candidates from the normalized window, prune by the notice
// policy, then reconcile against committed bookings. Malformed consulting
// hours surface as an empty slot list, and an empty list carries
// forward-looking suggestions so the UI can offer alternatives.
func (s *DefaultScheduleService) AvailableSlots(ctx context.Context, doctorID, date string) (AvailableSlotsResult, error) {
	logger := utils.GetLogger()

	day, err := time.Parse(WireDate, date)
	if err != nil {
		return AvailableSlotsResult{}, NewInvalidSlotError(fmt.Sprintf("invalid date %q", date))
	}

	raw, err := s.Doctors.GetConsultingHours(doctorID)
	if err != nil {
		return AvailableSlotsResult{}, NewStorageUnavailableError(
			fmt.Sprintf("cannot load consulting hours for doctor %s: %v", doctorID, err))
	}

	window, err := Normalize(raw)
	if err != nil {
		// Spelled-out hours the engine cannot read mean the doctor simply
		// has nothing bookable, on any date.
		logger.Warn("doctor has malformed consulting hours",
			zap.String("doctorID", doctorID), zap.Error(err))
		return AvailableSlotsResult{Slots: []string{}}, nil
	}

	candidates := GenerateSlots(doctorID, window, date, s.SlotMinutes)
	candidates = s.Policy.FilterByNotice(candidates, date, s.Clock.Now())

	avail := s.Resolve(ctx, doctorID, date, candidates)

	result := AvailableSlotsResult{
		Slots:              make([]string, 0, len(avail.Available)),
		DoctorHoursDisplay: window.Display(),
	}
	for _, slot := range avail.Available {
		result.Slots = append(result.Slots, slot.Time)
	}

	if len(result.Slots) == 0 {
		result.Suggestions = s.FindAlternatives(ctx, doctorID, window, day)
	}
	return result, nil
}

// Suggestions runs the forward search on its own, for the dedicated
// suggestions endpoint.
func (s *DefaultScheduleService) Suggestions(ctx context.Context, doctorID, date string) ([]models.Suggestion, error) {
	day, err := time.Parse(WireDate, date)
	if err != nil {
		return nil, NewInvalidSlotError(fmt.Sprintf("invalid date %q", date))
	}

	raw, err := s.Doctors.GetConsultingHours(doctorID)
	if err != nil {
		return nil, NewStorageUnavailableError(
			fmt.Sprintf("cannot load consulting hours for doctor %s: %v", doctorID, err))
	}
	window, err := Normalize(raw)
	if err != nil {
		// Nothing bookable on any date; no alternatives to offer.
		return []models.Suggestion{}, nil
	}

	found := s.FindAlternatives(ctx, doctorID, window, day)
	if found == nil {
		found = []models.Suggestion{}
	}
	return found, nil
}
