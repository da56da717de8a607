package utils

import "time"

// Clock supplies server-assigned write timestamps. All instants are UTC.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock is a settable clock for tests and replays.
type FixedClock struct {
	T time.Time
}

func (f *FixedClock) Now() time.Time { return f.T.UTC() }

func (f *FixedClock) Advance(d time.Duration) { f.T = f.T.Add(d) }
