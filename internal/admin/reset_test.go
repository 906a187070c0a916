package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/internal/store"
)

func newMockResetter(t *testing.T) (*Resetter, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return &Resetter{DB: store.Wrap(conn, config.DriverSQLite, nil)}, mock
}

func TestResetAll_DeletesInDependencyOrder(t *testing.T) {
	r, mock := newMockResetter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE FROM favorites$`).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`^DELETE FROM users$`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE FROM foods$`).WillReturnResult(sqlmock.NewResult(0, 16))
	mock.ExpectCommit()

	require.NoError(t, r.ResetAll(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResetAll_StopsAtFirstFailure(t *testing.T) {
	r, mock := newMockResetter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE FROM favorites$`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`^DELETE FROM users$`).WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := r.ResetAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset users")
	require.NoError(t, mock.ExpectationsWereMet())
}
