// Package scheduler implements the SM-2 variant used to plan the next review of a question.
//
// Unlike canonical SM-2 the repetition count is never reset on a failed answer:
// every answer increments it. Low quality still pulls the ease factor down.
package scheduler

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/iudanet/sm2sync/internal/clock"
)

const (
	// MinQuality is the lowest accepted answer quality (complete blackout).
	MinQuality = 0
	// MaxQuality is the highest accepted answer quality (perfect recall).
	MaxQuality = 5

	// DefaultEaseFactor is used for questions that were never answered.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor for the ease factor.
	MinEaseFactor = 1.3

	// FirstInterval is the interval in days after the first repetition.
	FirstInterval = 1
	// SecondInterval is the interval in days after the second repetition.
	SecondInterval = 6
	// MaxInterval caps the projected interval (100 years).
	MaxInterval = 36500
)

var (
	// ErrInvalidQuality is returned when quality is outside [MinQuality, MaxQuality].
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")

	// ErrInvalidRepetition is returned for a negative repetition count.
	ErrInvalidRepetition = errors.New("repetition count cannot be negative")

	// ErrInvalidEaseFactor is returned for a negative or non-finite ease factor.
	ErrInvalidEaseFactor = errors.New("ease factor must be a positive finite number")
)

// Input is the scheduling state before an answer.
type Input struct {
	Today           time.Time // Today current day-stamp
	EaseFactor      float64   // EaseFactor ease factor before the answer, 0 for a new question
	Quality         int       // Quality answer quality 0..5
	RepetitionCount int       // RepetitionCount repetitions before the answer
}

// Result is the scheduling state after an answer.
type Result struct {
	NextReviewAt    time.Time
	EaseFactor      float64
	RepetitionCount int
	Interval        int
}

// Schedule computes the next scheduling state. It does no I/O and is deterministic for the same input.
func Schedule(in Input) (Result, error) {
	if in.Quality < MinQuality || in.Quality > MaxQuality {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidQuality, in.Quality)
	}
	if in.RepetitionCount < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidRepetition, in.RepetitionCount)
	}
	if in.EaseFactor < 0 || math.IsNaN(in.EaseFactor) || math.IsInf(in.EaseFactor, 0) {
		return Result{}, fmt.Errorf("%w: got %v", ErrInvalidEaseFactor, in.EaseFactor)
	}

	ef := in.EaseFactor
	if ef == 0 {
		ef = DefaultEaseFactor
	}

	newEF := NextEaseFactor(ef, in.Quality)
	n := in.RepetitionCount + 1
	interval := Interval(n, newEF)

	return Result{
		EaseFactor:      newEF,
		RepetitionCount: n,
		Interval:        interval,
		NextReviewAt:    clock.AddDays(in.Today, interval),
	}, nil
}

// NextEaseFactor applies the SM-2 ease factor update for quality q:
// EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)), never below MinEaseFactor.
func NextEaseFactor(ef float64, q int) float64 {
	d := float64(MaxQuality - q)
	next := ef + (0.1 - d*(0.08+d*0.02))
	if next < MinEaseFactor {
		return MinEaseFactor
	}
	return next
}

// Interval returns the review interval in days for the n-th repetition.
// I(1) = 1, I(2) = 6, I(n) = round(I(n-1) * ef), capped at MaxInterval.
func Interval(n int, ef float64) int {
	switch {
	case n <= 1:
		return FirstInterval
	case n == 2:
		return SecondInterval
	}

	interval := float64(SecondInterval)
	for i := 3; i <= n; i++ {
		interval = math.Round(interval * ef)
		if interval >= MaxInterval {
			return MaxInterval
		}
	}
	return int(interval)
}
