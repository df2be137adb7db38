package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"medibook/models"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type fakeDoctorRepo struct {
	hours    interface{}
	hoursErr error
}

func (r *fakeDoctorRepo) GetByID(doctorID string) (*models.Doctor, error) {
	return &models.Doctor{ID: doctorID, ConsultingHours: r.hours}, nil
}

func (r *fakeDoctorRepo) GetConsultingHours(doctorID string) (interface{}, error) {
	if r.hoursErr != nil {
		return nil, r.hoursErr
	}
	return r.hours, nil
}

// fakeBookingRepo models the store, including the conditional insert: the
// mutex-guarded check-then-insert stands in for the partial unique index.
type fakeBookingRepo struct {
	mu          sync.Mutex
	booked      map[string]*models.Booking
	batchErr    error
	singleFails map[string]error
	batchCalls  int
	singleCalls int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		booked:      make(map[string]*models.Booking),
		singleFails: make(map[string]error),
	}
}

func slotKey(doctorID, date, timeStr string) string {
	return doctorID + "|" + date + "|" + timeStr
}

func (r *fakeBookingRepo) preBook(doctorID, date, timeStr string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.booked[slotKey(doctorID, date, timeStr)] = &models.Booking{
		ID: fmt.Sprintf("pre-%s", timeStr), DoctorID: doctorID,
		Date: date, Time: timeStr, Status: models.StatusPending,
	}
}

func (r *fakeBookingRepo) ListBookedTimes(ctx context.Context, doctorID, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batchCalls++
	if r.batchErr != nil {
		return nil, r.batchErr
	}
	var times []string
	for _, b := range r.booked {
		if b.DoctorID == doctorID && b.Date == date && b.IsActive() {
			times = append(times, b.Time)
		}
	}
	return times, nil
}

func (r *fakeBookingRepo) IsSlotBooked(ctx context.Context, doctorID, date, timeStr string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.singleCalls++
	if err, ok := r.singleFails[timeStr]; ok {
		return false, err
	}
	b, ok := r.booked[slotKey(doctorID, date, timeStr)]
	return ok && b.IsActive(), nil
}

func (r *fakeBookingRepo) InsertBookingIfAbsent(ctx context.Context, booking *models.Booking) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := slotKey(booking.DoctorID, booking.Date, booking.Time)
	if existing, ok := r.booked[key]; ok && existing.IsActive() {
		return false, nil
	}
	cp := *booking
	r.booked[key] = &cp
	return true, nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.booked {
		if b.ID == bookingID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, errors.New("booking not found")
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.booked {
		if b.ID == bookingID {
			b.Status = status
			return nil
		}
	}
	return errors.New("booking not found")
}

func (r *fakeBookingRepo) ListByDoctorDate(ctx context.Context, doctorID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.booked {
		if b.DoctorID == doctorID && b.Date == date && b.IsActive() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (n *fakeNotifier) Notify(userID, message string, metadata map[string]string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.calls = append(n.calls, userID+": "+message)
	return nil
}

func newTestService(hours interface{}, repo *fakeBookingRepo, now time.Time) (*DefaultScheduleService, *fakeNotifier) {
	notifier := &fakeNotifier{}
	svc := &DefaultScheduleService{
		Doctors:      &fakeDoctorRepo{hours: hours},
		Bookings:     repo,
		Notifier:     notifier,
		Clock:        fixedClock{t: now},
		Policy:       DefaultNoticePolicy(),
		SlotMinutes:  DefaultSlotMinutes,
		Search:       DefaultSearchConfig(),
		StorageLimit: DefaultTimeouts(),
	}
	return svc, notifier
}
