package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/sm2sync/internal/client/storage"
	"github.com/iudanet/sm2sync/internal/validation"
)

type loginOptions struct {
	Tokens
	UserID  string
	Offline bool
	Force   bool
}

// tokenClaims reads subject and expiry of a token without verifying it.
// Only the server can verify the signature.
func tokenClaims(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("malformed access token: %w", err)
	}
	return claims, nil
}

func (c *Cli) runLogin(ctx context.Context, opts loginOptions) error {
	c.io.Println("=== Login ===")

	token, err := c.getAccessToken(opts.Tokens)
	if err != nil {
		return err
	}

	claims, err := tokenClaims(token)
	if err != nil {
		return err
	}

	userID := opts.UserID
	switch {
	case userID == "":
		userID = claims.Subject
	case claims.Subject != "" && claims.Subject != userID:
		return fmt.Errorf("token belongs to user %s, not %s", claims.Subject, userID)
	}
	if userID == "" {
		return fmt.Errorf("token has no subject, pass the user id with --user")
	}
	if err := validation.ValidateID("user id", userID); err != nil {
		return err
	}

	var expiresAt int64
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
		if !claims.ExpiresAt.After(c.clock.Now()) {
			return fmt.Errorf("access token expired at %s", claims.ExpiresAt.Format(time.RFC3339))
		}
	}

	if err := c.checkDataOwner(ctx, userID, opts.Force); err != nil {
		return err
	}

	if !opts.Offline {
		if _, err := c.remote.Health(ctx); err != nil {
			// Работаем offline-first: сохраняем токен, синхронизация будет позже
			c.io.Printf("⚠️  Server is not reachable (%v); answers will be synchronized later.\n", err)
		}
	}

	if err := c.store.SaveAuth(ctx, &storage.AuthData{
		UserID:      userID,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}
	if err := storage.SetDataOwner(ctx, c.store, userID); err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("User ID: %s\n", userID)
	if expiresAt != 0 {
		c.io.Printf("Token expires: %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
	}
	c.warnNotDurable()

	return nil
}

// checkDataOwner не даёт отправить ответы и прогресс одного пользователя от имени другого.
// Данные прежнего владельца удаляются; несинхронизированные - только с force.
func (c *Cli) checkDataOwner(ctx context.Context, userID string, force bool) error {
	owner, err := storage.DataOwner(ctx, c.store)
	if err != nil {
		return err
	}
	if owner == "" {
		// Данные без отметки принадлежат последнему вошедшему пользователю
		prev, err := c.store.GetAuth(ctx)
		switch {
		case err == nil:
			owner = prev.UserID
		case !errors.Is(err, storage.ErrAuthNotFound):
			return fmt.Errorf("failed to read auth data: %w", err)
		}
	}
	if owner == "" || owner == userID {
		return nil
	}

	answers, progress, err := storage.PendingCounts(ctx, c.store)
	if err != nil {
		return fmt.Errorf("failed to count pending records: %w", err)
	}
	if answers+progress > 0 && !force {
		return fmt.Errorf("%d answer(s) and %d progress record(s) of user %s are not synchronized; "+
			"log in as %s and run 'sm2sync sync', or use --force to discard them", answers, progress, owner, owner)
	}

	discarded, known, err := storage.DiscardUserData(ctx, c.store)
	if err != nil {
		return fmt.Errorf("failed to discard data of user %s: %w", owner, err)
	}
	if answers+progress > 0 {
		c.io.Printf("⚠️  Discarded %d unsynchronized answer(s) of user %s.\n", discarded, owner)
	}
	if known > 0 {
		c.io.Printf("Local progress of user %s removed (%d question(s)).\n", owner, known)
	}
	return nil
}
