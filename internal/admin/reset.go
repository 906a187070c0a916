// Package admin provides administrative operations for database management.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/foodseed/internal/store"
)

// ResetTimeout is the maximum duration for database reset operations.
const ResetTimeout = 30 * time.Second

// Resetter clears the catalog.
type Resetter struct {
	DB *store.DB
}

type dbResetFn func(ctx context.Context) error

// ResetAll deletes favorites, users and foods, in that order, inside one
// transaction. This is a destructive operation - use with caution.
func (r *Resetter) ResetAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ResetTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	q := r.DB.Queries().WithTx(tx)

	if err := r.runResets(ctx, []dbResetFn{
		q.ResetFavorites,
		q.ResetUsers,
		q.ResetFoods,
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

func (r *Resetter) runResets(ctx context.Context, resets []dbResetFn) error {
	for _, reset := range resets {
		if err := reset(ctx); err != nil {
			return err
		}
	}
	return nil
}
