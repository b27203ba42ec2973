package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/sm2sync/internal/clock"
)

func (c *Cli) runAnswer(ctx context.Context, questionID, quality string) error {
	q, err := strconv.Atoi(quality)
	if err != nil {
		return fmt.Errorf("quality must be a number from 0 to 5, got %q", quality)
	}

	rec, err := c.recorder.Record(ctx, questionID, q)
	if err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}

	days := clock.DaysBetween(c.clock.Today(), rec.Progress.NextReviewAt)
	c.io.Printf("✓ Answer recorded (repetition %d, ease factor %.2f)\n",
		rec.Progress.RepetitionCount, rec.Progress.EaseFactor)
	c.io.Printf("Next review: %s (in %d day(s))\n",
		rec.Progress.NextReviewAt.Format("2006-01-02"), days)

	if !rec.Durable {
		c.warnNotDurable()
	}
	return nil
}
