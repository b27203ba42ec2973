package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/sm2sync/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context, remote bool) error {
	c.io.Println("=== Status ===")
	c.io.Println()
	c.warnNotDurable()

	// Проверяем наличие сохраненной сессии
	authData, err := c.store.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Status: Not logged in")
		c.io.Println("Run 'sm2sync login' to store your access token.")
	case err != nil:
		return fmt.Errorf("failed to get auth data: %w", err)
	default:
		c.io.Printf("User ID: %s\n", authData.UserID)
		if authData.ExpiresAt != 0 {
			expiresAt := time.Unix(authData.ExpiresAt, 0).UTC()
			if c.clock.Now().After(expiresAt) {
				c.io.Println("⚠️  Token has expired. Please login again.")
			} else {
				c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
			}
		}
	}

	c.io.Println()

	// Получаем количество записей, ожидающих синхронизации
	answers, progress, err := c.syncService.GetPendingSyncCount(ctx)
	if err != nil {
		// Не прерываем выполнение, просто сообщаем
		c.io.Printf("Warning: Failed to get pending sync count: %v\n", err)
	} else if answers+progress > 0 {
		c.io.Printf("⚠️  Pending sync: %d answer(s), %d progress record(s)\n", answers, progress)
		c.io.Println("Run 'sm2sync sync' to synchronize with server.")
	} else {
		c.io.Println("✓ All answers synchronized with server")
	}

	lastSync, err := c.store.GetLastSyncTimestamp(ctx)
	if err == nil {
		if lastSync == 0 {
			c.io.Println("Last sync: never")
		} else {
			c.io.Printf("Last sync: %s\n", time.Unix(lastSync, 0).UTC().Format(time.RFC3339))
		}
	}

	if remote && authData != nil {
		resp, err := c.remote.ListProgress(ctx, authData.AccessToken, authData.UserID)
		if err != nil {
			return fmt.Errorf("failed to list remote progress: %w", err)
		}
		c.io.Printf("Questions tracked on server: %d\n", len(resp.Progress))
	}

	return nil
}
