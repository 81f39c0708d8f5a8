package service

import "time"

// Clock abstracts wall-clock time so cooldown, quiet-hours and expiry logic
// can be tested deterministically. Cooldown comparisons use wall-clock time;
// DST and manual clock adjustments are an accepted limitation.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
}

type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
