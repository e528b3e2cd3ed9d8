package utils

import "time"

// TimeProvider supplies the current time to components which expire state, e.g. form submissions.
// It is an interface so tests can pin the clock
type TimeProvider interface {
	Now() time.Time
}

// NewTimeProvider creates a TimeProvider reading the system clock in UTC
func NewTimeProvider() TimeProvider {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
