package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

func TestSchedule_Examples(t *testing.T) {
	tests := []struct {
		name             string
		in               Input
		expectedReps     int
		expectedInterval int
		expectedEF       float64
	}{
		{
			name:             "first perfect answer",
			in:               Input{Quality: 5, RepetitionCount: 0, EaseFactor: 2.5, Today: today},
			expectedReps:     1,
			expectedInterval: 1,
			expectedEF:       2.6,
		},
		{
			name:             "second perfect answer",
			in:               Input{Quality: 5, RepetitionCount: 1, EaseFactor: 2.5, Today: today},
			expectedReps:     2,
			expectedInterval: 6,
			expectedEF:       2.6,
		},
		{
			name:             "third perfect answer multiplies previous interval",
			in:               Input{Quality: 5, RepetitionCount: 2, EaseFactor: 2.5, Today: today},
			expectedReps:     3,
			expectedInterval: 16, // round(6 * 2.6)
			expectedEF:       2.6,
		},
		{
			name:             "blackout keeps counting repetitions",
			in:               Input{Quality: 0, RepetitionCount: 3, EaseFactor: 2.5, Today: today},
			expectedReps:     4,
			expectedInterval: 17, // 1, 6, round(6*1.7)=10, round(10*1.7)=17
			expectedEF:       1.7,
		},
		{
			name:             "quality 4 keeps ease factor",
			in:               Input{Quality: 4, RepetitionCount: 0, EaseFactor: 2.5, Today: today},
			expectedReps:     1,
			expectedInterval: 1,
			expectedEF:       2.5,
		},
		{
			name:             "new question uses default ease factor",
			in:               Input{Quality: 3, RepetitionCount: 0, EaseFactor: 0, Today: today},
			expectedReps:     1,
			expectedInterval: 1,
			expectedEF:       2.36,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Schedule(tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedReps, res.RepetitionCount)
			assert.Equal(t, tt.expectedInterval, res.Interval)
			assert.InDelta(t, tt.expectedEF, res.EaseFactor, 1e-9)
			assert.Equal(t, today.AddDate(0, 0, tt.expectedInterval), res.NextReviewAt)
		})
	}
}

func TestSchedule_Deterministic(t *testing.T) {
	for q := MinQuality; q <= MaxQuality; q++ {
		for n := 0; n < 12; n++ {
			for _, ef := range []float64{0, 1.3, 1.7, 2.5, 3.1} {
				in := Input{Quality: q, RepetitionCount: n, EaseFactor: ef, Today: today}

				first, err := Schedule(in)
				require.NoError(t, err)
				second, err := Schedule(in)
				require.NoError(t, err)

				assert.Equal(t, first, second)
			}
		}
	}
}

func TestSchedule_RepetitionAlwaysIncrements(t *testing.T) {
	for q := MinQuality; q <= MaxQuality; q++ {
		for n := 0; n < 20; n++ {
			res, err := Schedule(Input{Quality: q, RepetitionCount: n, EaseFactor: 2.5, Today: today})
			require.NoError(t, err)
			assert.Equal(t, n+1, res.RepetitionCount, "quality=%d n=%d", q, n)
		}
	}
}

func TestSchedule_EaseFactorFloor(t *testing.T) {
	ef := DefaultEaseFactor
	for i := 0; i < 10; i++ {
		res, err := Schedule(Input{Quality: 0, RepetitionCount: i, EaseFactor: ef, Today: today})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.EaseFactor, MinEaseFactor)
		ef = res.EaseFactor
	}
	assert.Equal(t, MinEaseFactor, ef)

	for q := MinQuality; q <= MaxQuality; q++ {
		res, err := Schedule(Input{Quality: q, RepetitionCount: 1, EaseFactor: MinEaseFactor, Today: today})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.EaseFactor, MinEaseFactor)
	}
}

func TestSchedule_DoesNotMutateInput(t *testing.T) {
	in := Input{Quality: 2, RepetitionCount: 4, EaseFactor: 2.1, Today: today}
	copied := in

	_, err := Schedule(in)
	require.NoError(t, err)
	assert.Equal(t, copied, in)
}

func TestSchedule_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		err  error
	}{
		{name: "quality too low", in: Input{Quality: -1, EaseFactor: 2.5}, err: ErrInvalidQuality},
		{name: "quality too high", in: Input{Quality: 6, EaseFactor: 2.5}, err: ErrInvalidQuality},
		{name: "negative repetitions", in: Input{Quality: 3, RepetitionCount: -1, EaseFactor: 2.5}, err: ErrInvalidRepetition},
		{name: "negative ease factor", in: Input{Quality: 3, EaseFactor: -2}, err: ErrInvalidEaseFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Schedule(tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSchedule_TodayIsNormalized(t *testing.T) {
	res, err := Schedule(Input{Quality: 5, EaseFactor: 2.5, Today: today.Add(17 * time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, 1), res.NextReviewAt)
}

func TestInterval(t *testing.T) {
	assert.Equal(t, 1, Interval(0, 2.5))
	assert.Equal(t, 1, Interval(1, 2.5))
	assert.Equal(t, 6, Interval(2, 2.5))
	assert.Equal(t, 15, Interval(3, 2.5))
	assert.Equal(t, 38, Interval(4, 2.5)) // round(15 * 2.5) = round(37.5)
	assert.Equal(t, MaxInterval, Interval(1000, 2.5))
}

func TestInterval_GrowsWithRepetitions(t *testing.T) {
	prev := 0
	for n := 1; n < 15; n++ {
		cur := Interval(n, 1.3)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestNextEaseFactor(t *testing.T) {
	assert.InDelta(t, 2.6, NextEaseFactor(2.5, 5), 1e-9)
	assert.InDelta(t, 2.5, NextEaseFactor(2.5, 4), 1e-9)
	assert.InDelta(t, 2.36, NextEaseFactor(2.5, 3), 1e-9)
	assert.InDelta(t, 2.18, NextEaseFactor(2.5, 2), 1e-9)
	assert.InDelta(t, 1.96, NextEaseFactor(2.5, 1), 1e-9)
	assert.InDelta(t, 1.7, NextEaseFactor(2.5, 0), 1e-9)
	assert.Equal(t, MinEaseFactor, NextEaseFactor(1.4, 0))
}
