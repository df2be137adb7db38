package schedule

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestResolveBatchPartition(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.preBook("doc-1", "15-06-2026", "09:30")
	repo.preBook("doc-1", "15-06-2026", "10:30")

	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	svc, _ := newTestService(nil, repo, now)

	input := candidates("15-06-2026", "09:00", "09:30", "10:00", "10:30")
	avail := svc.Resolve(context.Background(), "doc-1", "15-06-2026", input)

	if got := times(avail.Available); !reflect.DeepEqual(got, []string{"09:00", "10:00"}) {
		t.Fatalf("unexpected available: %v", got)
	}
	if got := times(avail.Unavailable); !reflect.DeepEqual(got, []string{"09:30", "10:30"}) {
		t.Fatalf("unexpected unavailable: %v", got)
	}
	if repo.batchCalls != 1 || repo.singleCalls != 0 {
		t.Fatalf("expected single batch call, got batch=%d single=%d", repo.batchCalls, repo.singleCalls)
	}
}

func TestResolvePartitionCompleteness(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.preBook("doc-1", "15-06-2026", "09:00")

	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	svc, _ := newTestService(nil, repo, now)

	input := candidates("15-06-2026", "09:00", "09:30", "10:00", "10:30", "11:00")
	avail := svc.Resolve(context.Background(), "doc-1", "15-06-2026", input)

	if len(avail.Available)+len(avail.Unavailable) != len(input) {
		t.Fatalf("partition incomplete: %d + %d != %d",
			len(avail.Available), len(avail.Unavailable), len(input))
	}
	seen := make(map[string]bool)
	for _, s := range avail.Available {
		seen[s.Time] = true
	}
	for _, s := range avail.Unavailable {
		if seen[s.Time] {
			t.Fatalf("slot %s in both partitions", s.Time)
		}
	}
}

func TestResolveFallbackOnBatchFailure(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.batchErr = errors.New("connection reset")
	repo.preBook("doc-1", "15-06-2026", "09:30")

	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	svc, _ := newTestService(nil, repo, now)

	input := candidates("15-06-2026", "09:00", "09:30", "10:00")
	avail := svc.Resolve(context.Background(), "doc-1", "15-06-2026", input)

	if repo.singleCalls != len(input) {
		t.Fatalf("expected %d single checks, got %d", len(input), repo.singleCalls)
	}
	if got := times(avail.Available); !reflect.DeepEqual(got, []string{"09:00", "10:00"}) {
		t.Fatalf("unexpected available after fallback: %v", got)
	}
}

func TestResolveFallbackSingleFailureDegrades(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.batchErr = errors.New("connection reset")
	repo.singleFails["09:30"] = errors.New("timeout")

	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	svc, _ := newTestService(nil, repo, now)

	input := candidates("15-06-2026", "09:00", "09:30", "10:00")
	avail := svc.Resolve(context.Background(), "doc-1", "15-06-2026", input)

	// The failed check degrades that one slot to unavailable; the siblings
	// are still resolved.
	if got := times(avail.Unavailable); !reflect.DeepEqual(got, []string{"09:30"}) {
		t.Fatalf("expected only 09:30 unavailable, got %v", got)
	}
	if got := times(avail.Available); !reflect.DeepEqual(got, []string{"09:00", "10:00"}) {
		t.Fatalf("unexpected available: %v", got)
	}
}
