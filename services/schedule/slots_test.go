package schedule

import (
	"reflect"
	"testing"

	"medibook/models"
)

func window(start, end string) models.ConsultingWindow {
	return models.ConsultingWindow{Start: start, End: end}
}

func TestGenerateSlots(t *testing.T) {
	cases := []struct {
		name   string
		window models.ConsultingWindow
		want   []string
	}{
		{
			name:   "two hour window",
			window: window("09:00", "11:00"),
			want:   []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:   "end not on grid",
			window: window("09:00", "10:45"),
			want:   []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:   "half hour window",
			window: window("14:00", "14:30"),
			want:   []string{"14:00"},
		},
		{
			name:   "off-grid start",
			window: window("09:15", "10:30"),
			want:   []string{"09:15", "09:45", "10:15"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slots := GenerateSlots("doc-1", c.window, "01-06-2026", 30)
			if len(slots) != len(c.want) {
				t.Fatalf("expected %d slots, got %d", len(c.want), len(slots))
			}
			for i, slot := range slots {
				if slot.Time != c.want[i] {
					t.Fatalf("slot %d: expected %s, got %s", i, c.want[i], slot.Time)
				}
				if slot.DoctorID != "doc-1" || slot.Date != "01-06-2026" || slot.DurationMinutes != 30 {
					t.Fatalf("slot fields wrong: %+v", slot)
				}
			}
		})
	}
}

func TestGenerateSlotsCount(t *testing.T) {
	// Slot starts land on the half-hour grid strictly before the window
	// end, so aligned windows produce exactly span/30 slots.
	cases := []struct {
		start, end string
		want       int
	}{
		{"09:00", "17:00", 16},
		{"00:00", "23:30", 47},
		{"00:00", "23:59", 48},
		{"08:00", "08:29", 1},
		{"22:00", "23:00", 2},
	}
	for _, c := range cases {
		slots := GenerateSlots("d", window(c.start, c.end), "01-06-2026", 30)
		if len(slots) != c.want {
			t.Fatalf("window %s-%s: expected %d slots, got %d", c.start, c.end, c.want, len(slots))
		}
		if len(slots) > maxSlotsPerDay {
			t.Fatalf("window %s-%s: exceeded generation bound", c.start, c.end)
		}
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	w := window("09:00", "17:00")
	first := GenerateSlots("d", w, "01-06-2026", 30)
	second := GenerateSlots("d", w, "01-06-2026", 30)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("generation not deterministic")
	}
}

func TestGenerateSlotsMalformedWindow(t *testing.T) {
	cases := []models.ConsultingWindow{
		window("17:00", "09:00"), // inverted
		window("09:00", "09:00"), // empty
		window("banana", "17:00"),
		window("09:00", ""),
	}
	for _, w := range cases {
		if slots := GenerateSlots("d", w, "01-06-2026", 30); len(slots) != 0 {
			t.Fatalf("window %+v: expected no slots, got %d", w, len(slots))
		}
	}
}
