package schedule

import (
	"time"

	"medibook/models"
)

// NoticePolicy filters candidate slots by how much advance notice they
// give the doctor. Same-day bookings need SameDayLead of notice; bookings
// for tomorrow morning are effectively same-day-adjacent and need
// NextDayMorningLead. Everything further out passes unfiltered.
type NoticePolicy struct {
	SameDayLead        time.Duration
	NextDayMorningLead time.Duration
	MorningEndHour     int
}

// DefaultNoticePolicy mirrors the clinic's standing rules: 12 hours for
// same-day slots, 24 hours for slots before noon tomorrow.
func DefaultNoticePolicy() NoticePolicy {
	return NoticePolicy{
		SameDayLead:        12 * time.Hour,
		NextDayMorningLead: 24 * time.Hour,
		MorningEndHour:     12,
	}
}

// FilterByNotice returns the slots that satisfy the advance-notice rules
// relative to now. The input is not mutated and order is preserved.
func (p NoticePolicy) FilterByNotice(slots []models.CandidateSlot, date string, now time.Time) []models.CandidateSlot {
	day, err := time.ParseInLocation(WireDate, date, now.Location())
	if err != nil {
		return nil
	}

	today := now.Format(WireDate)
	tomorrow := now.AddDate(0, 0, 1).Format(WireDate)

	var kept []models.CandidateSlot
	for _, slot := range slots {
		start := slotStart(day, slot.Time)
		if start.IsZero() {
			continue
		}
		switch date {
		case today:
			if start.Sub(now) < p.SameDayLead {
				continue
			}
		case tomorrow:
			if start.Hour() < p.MorningEndHour && start.Sub(now) < p.NextDayMorningLead {
				continue
			}
		}
		kept = append(kept, slot)
	}
	return kept
}

// slotStart combines a calendar day with an "HH:mm" start time.
func slotStart(day time.Time, hhmm string) time.Time {
	m := t2m(hhmm)
	if m < 0 {
		return time.Time{}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, day.Location())
}
