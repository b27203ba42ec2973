package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayStamp(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "midday UTC",
			input:    time.Date(2026, 5, 17, 13, 45, 12, 500, time.UTC),
			expected: time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "already midnight",
			input:    time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			// 01:30 MSK is still the previous day in UTC
			name:     "other zone converted to UTC first",
			input:    time.Date(2026, 5, 17, 1, 30, 0, 0, moscow),
			expected: time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(DayStamp(tt.input)))
		})
	}
}

func TestAddDays(t *testing.T) {
	day := time.Date(2026, 2, 27, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), AddDays(day, 1))
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), AddDays(day, 6))
	assert.Equal(t, time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), AddDays(day, 0))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 1, 7, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 6, DaysBetween(a, b))
	assert.Equal(t, -6, DaysBetween(b, a))
}

func TestFixed(t *testing.T) {
	start := time.Date(2026, 4, 1, 22, 0, 0, 0, time.UTC)
	c := NewFixed(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), c.Today())

	c.Advance(3 * time.Hour)
	assert.Equal(t, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), c.Today())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestFixed_ConcurrentAccess(t *testing.T) {
	c := NewFixed(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance(time.Minute)
			_ = c.Today()
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2026, 4, 1, 0, 50, 0, 0, time.UTC), c.Now())
}

func TestSystem(t *testing.T) {
	c := System()
	today := c.Today()

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, time.UTC, today.Location())
	assert.WithinDuration(t, time.Now(), c.Now(), time.Minute)
}
