package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/sm2sync/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context, force bool) error {
	c.io.Println("=== Logout ===")

	answers, progress, err := storage.PendingCounts(ctx, c.store)
	if err != nil {
		return fmt.Errorf("failed to count pending records: %w", err)
	}
	if answers+progress > 0 && !force {
		return fmt.Errorf("%d answer(s) and %d progress record(s) are not synchronized; run 'sm2sync sync' or use --force", answers, progress)
	}

	if err := c.store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")
	if answers+progress > 0 {
		c.io.Printf("⚠️  %d answer(s) and %d progress record(s) are kept and will be uploaded after the next login of the same user.\n",
			answers, progress)
	}

	return nil
}
