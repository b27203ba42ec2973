package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/sm2sync/internal/clock"
)

func (c *Cli) runDue(ctx context.Context) error {
	due, err := c.recorder.Due(ctx)
	if err != nil {
		return fmt.Errorf("failed to list due questions: %w", err)
	}

	if len(due) == 0 {
		c.io.Println("Nothing to review today.")
		return nil
	}

	today := c.clock.Today()
	c.io.Printf("%d question(s) to review:\n", len(due))
	for _, entry := range due {
		overdue := clock.DaysBetween(entry.NextReviewAt, today)
		c.io.Printf("  %-32s due %s", entry.QuestionID, entry.NextReviewAt.Format("2006-01-02"))
		if overdue > 0 {
			c.io.Printf(" (overdue %d day(s))", overdue)
		}
		c.io.Println()
	}
	return nil
}
