// Package clock provides the wall clock and calendar-day arithmetic used for scheduling.
package clock

import (
	"sync"
	"time"
)

// Clock is the source of time for the engine.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
	// Today returns the current day-stamp (midnight UTC).
	Today() time.Time
}

// DayStamp truncates t to the start of its calendar day in UTC.
func DayStamp(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays projects day forward by n calendar days.
// The result is always a day-stamp, whatever the time of day of the input.
func AddDays(day time.Time, n int) time.Time {
	return DayStamp(day).AddDate(0, 0, n)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DayStamp(b).Sub(DayStamp(a)).Hours() / 24)
}

type systemClock struct{}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Today() time.Time {
	return DayStamp(time.Now())
}

// Fixed is a manually driven Clock. Safe for concurrent use.
type Fixed struct {
	now time.Time
	mu  sync.Mutex
}

// NewFixed creates a Fixed clock set to now.
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now.UTC()}
}

// Now returns the configured time.
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// Today returns the day-stamp of the configured time.
func (f *Fixed) Today() time.Time {
	return DayStamp(f.Now())
}

// Set moves the clock to now.
func (f *Fixed) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now.UTC()
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}
