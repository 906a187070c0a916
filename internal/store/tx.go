package store

import (
	"context"
	"errors"
	"fmt"
)

// WithSavepoint runs fn inside a named savepoint on tx. When fn fails the
// savepoint is rolled back so the enclosing transaction stays usable; on
// success it is released. Both SQLite and PostgreSQL accept the syntax.
func WithSavepoint(ctx context.Context, tx DBTX, name string, fn func() error) error {
	if _, err := tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("create savepoint: %w", err)
	}

	if err := fn(); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback savepoint: %w", rbErr))
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}
