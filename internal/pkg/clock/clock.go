// Package clock abstracts the wall clock so request handling can derive
// "today" deterministically in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// DateString formats t as a calendar date in YYYY-MM-DD form.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// TimeString formats t as a 24-hour HH:MM:SS clock time.
func TimeString(t time.Time) string {
	return t.Format("15:04:05")
}
