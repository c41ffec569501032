package clock

import "time"

// TimeProvider supplies the current time to services that stamp records
type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
