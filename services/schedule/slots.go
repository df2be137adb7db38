package schedule

import (
	"fmt"

	"medibook/models"
)

// maxSlotsPerDay bounds generation at a full 24-hour window in 30-minute
// steps, so a malformed window that never reaches its end time cannot loop.
const maxSlotsPerDay = 48

// DefaultSlotMinutes is the fixed appointment length.
const DefaultSlotMinutes = 30

// GenerateSlots expands a consulting window into candidate slots for a
// date. Slots step every durationMinutes from the window start; a slot is
// generated only while its start time is strictly before the window end.
// Output is deterministic for identical inputs.
func GenerateSlots(doctorID string, window models.ConsultingWindow, date string, durationMinutes int) []models.CandidateSlot {
	if durationMinutes <= 0 {
		durationMinutes = DefaultSlotMinutes
	}
	start := t2m(window.Start)
	end := t2m(window.End)
	if start < 0 || end < 0 {
		return nil
	}

	var slots []models.CandidateSlot
	for i := 0; i < maxSlotsPerDay; i++ {
		cur := start + i*durationMinutes
		if cur >= end {
			break
		}
		slots = append(slots, models.CandidateSlot{
			DoctorID:        doctorID,
			Date:            date,
			Time:            m2t(cur),
			DurationMinutes: durationMinutes,
		})
	}
	return slots
}

// t2m converts a strict "HH:mm" string to minutes from midnight, or -1.
func t2m(s string) int {
	if !hhmmRe.MatchString(s) {
		return -1
	}
	var hours, minutes int
	fmt.Sscanf(s, "%d:%d", &hours, &minutes)
	return hours*60 + minutes
}

// m2t converts minutes from midnight to "HH:mm".
func m2t(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
