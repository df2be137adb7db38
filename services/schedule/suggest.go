package schedule

import (
	"context"
	"time"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// FindAlternatives walks forward from startDate, one day at a time, looking
// for confirmed-available slots. Per day it generates candidates, applies
// the notice policy, then samples every SampleStep'th candidate to bound
// the number of storage checks. The walk stops as soon as MaxResults slots
// are confirmed or MaxDaysAhead days are exhausted. Days that yield no
// candidates are skipped without error, and an empty result means "no
// alternatives", not failure.
func (s *DefaultScheduleService) FindAlternatives(ctx context.Context, doctorID string, window models.ConsultingWindow, startDate time.Time) []models.Suggestion {
	logger := utils.GetLogger()

	maxDays := s.Search.MaxDaysAhead
	if maxDays <= 0 {
		maxDays = 7
	}
	maxResults := s.Search.MaxResults
	if maxResults <= 0 {
		maxResults = 3
	}
	step := s.Search.SampleStep
	if step <= 0 {
		step = 3
	}

	now := s.Clock.Now()
	var found []models.Suggestion

	for offset := 1; offset <= maxDays; offset++ {
		day := startDate.AddDate(0, 0, offset)
		dateStr := day.Format(WireDate)

		candidates := GenerateSlots(doctorID, window, dateStr, s.SlotMinutes)
		if len(candidates) == 0 {
			continue
		}
		candidates = s.Policy.FilterByNotice(candidates, dateStr, now)

		for i := 0; i < len(candidates); i += step {
			slot := candidates[i]

			slotCtx, cancel := context.WithTimeout(ctx, s.timeout(s.StorageLimit.SingleCheck, 2*time.Second))
			taken, err := s.Bookings.IsSlotBooked(slotCtx, doctorID, dateStr, slot.Time)
			cancel()
			if err != nil {
				logger.Warn("suggestion availability check failed, skipping slot",
					zap.String("doctorID", doctorID), zap.String("date", dateStr),
					zap.String("time", slot.Time), zap.Error(err))
				continue
			}
			if taken {
				continue
			}

			found = append(found, models.Suggestion{Date: dateStr, Time: slot.Time})
			if len(found) >= maxResults {
				return found
			}
		}
	}
	return found
}
