package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/models"
)

func newMockQueries(t *testing.T, dialect string) (*Queries, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, dialect), mock
}

func TestInsertFood_PostgresPlaceholders(t *testing.T) {
	q, mock := newMockQueries(t, config.DriverPostgres)

	args := make([]driver.Value, len(FoodColumns))
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}

	mock.ExpectExec(`INSERT INTO foods .* VALUES \(\$1,\$2`).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := q.InsertFood(context.Background(), models.FoodRecord{BrandName: "Acme"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFavoriteIgnore_PostgresConflict(t *testing.T) {
	q, mock := newMockQueries(t, config.DriverPostgres)

	mock.ExpectExec(`INSERT INTO favorites \(user_id,food_id\) VALUES \(\$1,\$2\) ON CONFLICT DO NOTHING`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := q.InsertFavoriteIgnore(context.Background(), models.Favorite{UserID: 7, FoodID: 42})
	require.NoError(t, err)
	assert.False(t, inserted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFood_SQLitePlaceholders(t *testing.T) {
	q, mock := newMockQueries(t, config.DriverSQLite)

	args := make([]driver.Value, len(FoodColumns))
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}

	mock.ExpectExec(`INSERT INTO foods .* VALUES \(\?,\?`).
		WithArgs(args...).
		WillReturnError(errors.New("disk full"))

	err := q.InsertFood(context.Background(), models.FoodRecord{BrandName: "Acme"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert food")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertUserIgnore(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		want         bool
	}{
		{"new user", 1, true},
		{"existing user", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, mock := newMockQueries(t, config.DriverPostgres)

			mock.ExpectExec(`INSERT INTO users .* ON CONFLICT DO NOTHING`).
				WithArgs("demo_user", "demo@example.com", "hash").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			got, err := q.InsertUserIgnore(context.Background(), models.User{
				Username:     "demo_user",
				Email:        "demo@example.com",
				PasswordHash: "hash",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserIDByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		q, mock := newMockQueries(t, config.DriverPostgres)
		mock.ExpectQuery(`SELECT id FROM users WHERE username = \$1`).
			WithArgs("demo_user").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		id, err := q.UserIDByUsername(context.Background(), "demo_user")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("not found", func(t *testing.T) {
		q, mock := newMockQueries(t, config.DriverPostgres)
		mock.ExpectQuery(`SELECT id FROM users`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		_, err := q.UserIDByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		q, mock := newMockQueries(t, config.DriverPostgres)
		mock.ExpectQuery(`SELECT id FROM users`).
			WithArgs("demo_user").
			WillReturnError(errors.New("connection reset"))

		_, err := q.UserIDByUsername(context.Background(), "demo_user")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestFoodIDs(t *testing.T) {
	q, mock := newMockQueries(t, config.DriverSQLite)

	mock.ExpectQuery(`SELECT id FROM foods ORDER BY id ASC LIMIT 5`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3))

	ids, err := q.FoodIDs(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestFoodIDs_ZeroLimitSkipsQuery(t *testing.T) {
	q, mock := newMockQueries(t, config.DriverSQLite)

	ids, err := q.FoodIDs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResets(t *testing.T) {
	q, mock := newMockQueries(t, config.DriverPostgres)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM favorites`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM foods`).WillReturnError(errors.New("locked"))

	require.NoError(t, q.ResetFavorites(ctx))
	require.NoError(t, q.ResetUsers(ctx))

	err := q.ResetFoods(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset foods")
}
