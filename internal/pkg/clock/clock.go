// Package clock provides an injectable time source for repositories.
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns a Clock backed by the system time
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock that always returns the same instant. Useful in tests
// that assert on stored timestamps.
type Fixed struct {
	T time.Time
}

// NewFixed creates a Fixed clock at the given instant
func NewFixed(t time.Time) *Fixed {
	return &Fixed{T: t}
}

// Now returns the fixed instant
func (f *Fixed) Now() time.Time {
	return f.T
}
