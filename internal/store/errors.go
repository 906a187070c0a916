package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Class is the driver-independent category of a failed statement.
type Class int

const (
	// ClassUnknown is returned for nil errors and anything not recognised.
	ClassUnknown Class = iota
	ClassUnique
	ClassForeignKey
	ClassNotNull
	ClassCheck
	ClassConnection
)

func (c Class) String() string {
	switch c {
	case ClassUnique:
		return "unique"
	case ClassForeignKey:
		return "foreign_key"
	case ClassNotNull:
		return "not_null"
	case ClassCheck:
		return "check"
	case ClassConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// Classify inspects err for a PostgreSQL or SQLite driver error and maps it
// to a Class. Errors from other sources are ClassUnknown.
func Classify(err error) Class {
	if err == nil {
		return ClassUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgError(pgErr)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return classifySQLiteError(liteErr)
	}

	return ClassUnknown
}

func classifyPgError(pgErr *pgconn.PgError) Class {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUnique
	case pgerrcode.ForeignKeyViolation:
		return ClassForeignKey
	case pgerrcode.NotNullViolation:
		return ClassNotNull
	case pgerrcode.CheckViolation:
		return ClassCheck
	case pgerrcode.CannotConnectNow, pgerrcode.AdminShutdown:
		return ClassConnection
	}

	if pgerrcode.IsConnectionException(pgErr.Code) {
		return ClassConnection
	}
	return ClassUnknown
}

func classifySQLiteError(e sqlite3.Error) Class {
	switch e.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ClassUnique
	case sqlite3.ErrConstraintForeignKey:
		return ClassForeignKey
	case sqlite3.ErrConstraintNotNull:
		return ClassNotNull
	case sqlite3.ErrConstraintCheck:
		return ClassCheck
	}

	switch e.Code {
	case sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrNotADB:
		return ClassConnection
	}
	return ClassUnknown
}
