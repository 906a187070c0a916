package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{"nil", nil, ClassUnknown},
		{"plain error", errors.New("boom"), ClassUnknown},
		{"pg unique", pgError(pgerrcode.UniqueViolation), ClassUnique},
		{"pg foreign key", pgError(pgerrcode.ForeignKeyViolation), ClassForeignKey},
		{"pg not null", pgError(pgerrcode.NotNullViolation), ClassNotNull},
		{"pg check", pgError(pgerrcode.CheckViolation), ClassCheck},
		{"pg connection failure", pgError(pgerrcode.ConnectionFailure), ClassConnection},
		{"pg cannot connect now", pgError(pgerrcode.CannotConnectNow), ClassConnection},
		{"pg syntax", pgError(pgerrcode.SyntaxError), ClassUnknown},
		{"pg wrapped", fmt.Errorf("insert food: %w", pgError(pgerrcode.UniqueViolation)), ClassUnique},
		{
			"sqlite unique",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			ClassUnique,
		},
		{
			"sqlite primary key",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			ClassUnique,
		},
		{
			"sqlite foreign key",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey},
			ClassForeignKey,
		},
		{
			"sqlite not null",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			ClassNotNull,
		},
		{
			"sqlite check",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck},
			ClassCheck,
		},
		{"sqlite cant open", sqlite3.Error{Code: sqlite3.ErrCantOpen}, ClassConnection},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "unique", ClassUnique.String())
	assert.Equal(t, "foreign_key", ClassForeignKey.String())
	assert.Equal(t, "unknown", Class(99).String())
}
