package schedule

import (
	"reflect"
	"testing"
	"time"

	"medibook/models"
)

func candidates(date string, times ...string) []models.CandidateSlot {
	var out []models.CandidateSlot
	for _, tm := range times {
		out = append(out, models.CandidateSlot{DoctorID: "d", Date: date, Time: tm, DurationMinutes: 30})
	}
	return out
}

func times(slots []models.CandidateSlot) []string {
	var out []string
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestFilterByNoticeSameDay(t *testing.T) {
	policy := DefaultNoticePolicy()
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	today := now.Format(WireDate)

	// 12 hours after 08:00 is 20:00: 19:00 misses the cut, 20:00 makes it.
	kept := policy.FilterByNotice(candidates(today, "09:00", "19:00", "20:00", "20:30"), today, now)
	want := []string{"20:00", "20:30"}
	if !reflect.DeepEqual(times(kept), want) {
		t.Fatalf("expected %v, got %v", want, times(kept))
	}
}

func TestFilterByNoticeNextDayMorning(t *testing.T) {
	policy := DefaultNoticePolicy()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.Local)
	tomorrow := now.AddDate(0, 0, 1).Format(WireDate)

	// Tomorrow 09:00 is 23h away: morning slots need 24h, afternoon passes.
	kept := policy.FilterByNotice(candidates(tomorrow, "09:00", "11:00", "14:00"), tomorrow, now)
	want := []string{"11:00", "14:00"}
	if !reflect.DeepEqual(times(kept), want) {
		t.Fatalf("expected %v, got %v", want, times(kept))
	}
}

func TestFilterByNoticeNextDayMorningWithEnoughLead(t *testing.T) {
	policy := DefaultNoticePolicy()
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	tomorrow := now.AddDate(0, 0, 1).Format(WireDate)

	// Tomorrow 09:00 is 25h away, clears the 24h morning rule.
	kept := policy.FilterByNotice(candidates(tomorrow, "09:00"), tomorrow, now)
	if len(kept) != 1 {
		t.Fatalf("expected slot to pass, got %v", times(kept))
	}
}

func TestFilterByNoticeFutureDatesPass(t *testing.T) {
	policy := DefaultNoticePolicy()
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	future := now.AddDate(0, 0, 5).Format(WireDate)

	input := candidates(future, "09:00", "09:30", "10:00")
	kept := policy.FilterByNotice(input, future, now)
	if !reflect.DeepEqual(times(kept), times(input)) {
		t.Fatalf("future date slots should pass unfiltered, got %v", times(kept))
	}
}

func TestFilterByNoticeMonotonic(t *testing.T) {
	// A slot that clears the same-day rule when checked at time T also
	// clears it at any earlier check time.
	policy := DefaultNoticePolicy()
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)
	today := day.Format(WireDate)
	slot := candidates(today, "21:00")

	later := time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local)
	if len(policy.FilterByNotice(slot, today, later)) != 1 {
		t.Fatalf("slot should pass at the later check time")
	}
	for hour := 0; hour < 9; hour++ {
		earlier := time.Date(2026, 6, 1, hour, 0, 0, 0, time.Local)
		if len(policy.FilterByNotice(slot, today, earlier)) != 1 {
			t.Fatalf("slot passed at 09:00 but failed at %02d:00", hour)
		}
	}
}

func TestFilterByNoticeDoesNotMutateInput(t *testing.T) {
	policy := DefaultNoticePolicy()
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	today := now.Format(WireDate)

	input := candidates(today, "09:00", "20:00", "21:00")
	snapshot := make([]models.CandidateSlot, len(input))
	copy(snapshot, input)

	kept := policy.FilterByNotice(input, today, now)
	if !reflect.DeepEqual(input, snapshot) {
		t.Fatalf("input slice was mutated")
	}
	// Order of survivors matches input order.
	if !reflect.DeepEqual(times(kept), []string{"20:00", "21:00"}) {
		t.Fatalf("unexpected order: %v", times(kept))
	}
}
