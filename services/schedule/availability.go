package schedule

import (
	"context"
	"time"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// Resolve cross-references candidate slots against committed bookings for
// the doctor and date. The primary path is one batched read of all booked
// times; if that fails, it degrades to per-slot checks so one storage
// hiccup does not blank out the whole date. A failed individual check
// counts the slot as unavailable, never aborts its siblings. Every
// candidate lands in exactly one partition.
func (s *DefaultScheduleService) Resolve(ctx context.Context, doctorID, date string, candidates []models.CandidateSlot) models.Availability {
	logger := utils.GetLogger()

	batchCtx, cancel := context.WithTimeout(ctx, s.timeout(s.StorageLimit.BatchCheck, 5*time.Second))
	booked, err := s.Bookings.ListBookedTimes(batchCtx, doctorID, date)
	cancel()
	if err == nil {
		taken := make(map[string]bool, len(booked))
		for _, t := range booked {
			taken[t] = true
		}
		return partition(candidates, func(slot models.CandidateSlot) bool {
			return !taken[slot.Time]
		})
	}

	logger.Warn("batch availability check failed, falling back to per-slot checks",
		zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))

	return partition(candidates, func(slot models.CandidateSlot) bool {
		slotCtx, cancel := context.WithTimeout(ctx, s.timeout(s.StorageLimit.SingleCheck, 2*time.Second))
		defer cancel()
		taken, err := s.Bookings.IsSlotBooked(slotCtx, doctorID, date, slot.Time)
		if err != nil {
			// Unknown availability fails closed for display purposes.
			logger.Warn("single slot check failed, treating slot as unavailable",
				zap.String("doctorID", doctorID), zap.String("date", date),
				zap.String("time", slot.Time), zap.Error(err))
			return false
		}
		return !taken
	})
}

func partition(candidates []models.CandidateSlot, free func(models.CandidateSlot) bool) models.Availability {
	var avail models.Availability
	for _, slot := range candidates {
		if free(slot) {
			avail.Available = append(avail.Available, slot)
		} else {
			avail.Unavailable = append(avail.Unavailable, slot)
		}
	}
	return avail
}

func (s *DefaultScheduleService) timeout(configured, fallback time.Duration) time.Duration {
	if configured > 0 {
		return configured
	}
	return fallback
}
