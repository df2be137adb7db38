package schedule

import "time"

// Clock supplies the current time to the advance-notice policy. Injected so
// the 12h/24h boundary conditions are deterministic under test.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewRealClock returns a Clock backed by the system time.
func NewRealClock() Clock { return realClock{} }
