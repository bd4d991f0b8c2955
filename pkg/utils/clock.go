package utils

import "time"

// Clock abstracts time.Now so retry-delay and timestamp behavior can be
// pinned down in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	T time.Time
}

func (f FixedClock) Now() time.Time { return f.T }
