package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/foodseed/internal/store"
)

var (
	// ErrUnreadableSource marks a candidate file that could not be opened,
	// decoded or parsed. The bootstrap skips such files.
	ErrUnreadableSource = errors.New("unreadable source")

	// ErrMissingColumn is wrapped when the header lacks brand_name.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyFile is wrapped when a file has no header row at all.
	ErrEmptyFile = errors.New("empty file")

	// ErrFileTooLarge is wrapped when a file exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrStorage is returned when a transaction cannot be opened or committed.
	ErrStorage = errors.New("storage failure")

	// ErrNoData is the only fatal bootstrap error: no file and no fallback
	// row made it into the catalog.
	ErrNoData = errors.New("no data source produced any rows")
)

// UserMessage describes a row failure kind for log output.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Stable code for grepping logs
}

// kindPattern maps a lowercase fragment of an error string to a kind. It is
// consulted only when the driver error type has been lost, for instance when
// a driver returns a plain error string.
type kindPattern struct {
	pattern string
	kind    ErrorKind
}

// Order matters: the first match wins.
var kindPatterns = []kindPattern{
	{"duplicate key", KindDuplicate},
	{"unique constraint", KindDuplicate},
	{"violates unique", KindDuplicate},
	{"foreign key constraint", KindForeignKey},
	{"violates foreign key", KindForeignKey},
	{"not null constraint", KindNotNull},
	{"violates not-null", KindNotNull},
	{"check constraint", KindCheck},
	{"connection refused", KindConnection},
	{"connection reset", KindConnection},
	{"broken pipe", KindConnection},
	{"bad connection", KindConnection},
	{"database is closed", KindConnection},
}

var kindMessages = map[ErrorKind]UserMessage{
	KindDuplicate: {
		Message: "A record with this key already exists",
		Action:  "Check the file for duplicate rows",
		Code:    "DB001",
	},
	KindForeignKey: {
		Message: "Referenced record does not exist",
		Action:  "Ensure parent records are loaded first",
		Code:    "DB003",
	},
	KindConnection: {
		Message: "Database connection was interrupted",
		Action:  "Check the database and run the bootstrap again",
		Code:    "DB004",
	},
	KindCommit: {
		Message: "A batch could not be committed",
		Action:  "Rows in the batch were not stored; run the bootstrap again",
		Code:    "DB008",
	},
	KindNotNull: {
		Message: "Required field is empty",
		Action:  "Ensure all required columns have values",
		Code:    "VAL003",
	},
	KindCheck: {
		Message: "Value violates a column constraint",
		Action:  "Review the value against the column definition",
		Code:    "VAL007",
	},
}

// defaultMessage is used for KindUnknown (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for the original error",
	Code:    "ERR000",
}

// ClassifyRowError maps an insert failure to an ErrorKind. Typed driver
// errors are inspected first; the error text is matched second.
// Returns "" for a nil error.
func ClassifyRowError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	switch store.Classify(err) {
	case store.ClassUnique:
		return KindDuplicate
	case store.ClassForeignKey:
		return KindForeignKey
	case store.ClassNotNull:
		return KindNotNull
	case store.ClassCheck:
		return KindCheck
	case store.ClassConnection:
		return KindConnection
	}

	errStr := strings.ToLower(err.Error())
	for _, kp := range kindPatterns {
		if strings.Contains(errStr, kp.pattern) {
			return kp.kind
		}
	}

	return KindUnknown
}

// DescribeKind returns the message registered for kind.
func DescribeKind(kind ErrorKind) UserMessage {
	if msg, ok := kindMessages[kind]; ok {
		return msg
	}
	return defaultMessage
}

// FormatRowError renders a failure as "Message (Code: XXX). Action".
func FormatRowError(kind ErrorKind) string {
	msg := DescribeKind(kind)
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
