package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/internal/logging"
	"github.com/JonMunkholm/foodseed/internal/store"
	"github.com/JonMunkholm/foodseed/models"
)

// newTestDB opens a migrated SQLite catalog in a temp dir.
func newTestDB(t *testing.T) *store.DB {
	t.Helper()
	ctx := context.Background()

	db, err := store.Open(ctx, config.DatabaseConfig{
		Driver:         config.DriverSQLite,
		URL:            filepath.Join(t.TempDir(), "catalog.db"),
		ConnectTimeout: 5 * time.Second,
	}, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func listFoods(t *testing.T, db *store.DB) []models.FoodRecord {
	t.Helper()
	foods, err := db.Queries().ListFoods(context.Background(), 1_000_000)
	require.NoError(t, err)
	return foods
}

// midpointSource always returns the middle of the requested range.
type midpointSource struct{}

func (midpointSource) Uniform(min, max float64) float64 { return (min + max) / 2 }
