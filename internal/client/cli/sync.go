package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/sm2sync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	result := c.syncService.SyncAll(ctx)
	c.printRound("Answers", result.Analytics)
	c.printRound("Progress", result.Progress)

	if !result.OK() {
		return fmt.Errorf("synchronization failed, unsent data is kept for the next attempt: %w", result.Err())
	}

	c.io.Println("✓ Synchronization completed successfully!")
	return nil
}

func (c *Cli) printRound(name string, r sync.RoundResult) {
	if !r.OK() {
		c.io.Printf("%-9s failed: %v\n", name+":", r.Err)
		return
	}
	c.io.Printf("%-9s %d uploaded", name+":", r.Uploaded)
	if r.Created > 0 {
		c.io.Printf(", %d created", r.Created)
	}
	if r.Skipped > 0 {
		c.io.Printf(", %d skipped", r.Skipped)
	}
	c.io.Println()
}

// runSyncEvery synchronizes in the background until ctx is cancelled
func (c *Cli) runSyncEvery(ctx context.Context, every time.Duration) error {
	runner, err := sync.NewRunner(c.syncService, every, c.logger)
	if err != nil {
		return err
	}
	if err := runner.Start(ctx); err != nil {
		return err
	}

	c.io.Printf("Synchronizing every %s, press Ctrl+C to stop.\n", every)
	<-ctx.Done()
	runner.Stop()

	c.io.Println("Stopped.")
	return nil
}
