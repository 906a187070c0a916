package core

import "time"

// Stage is a state of the bootstrap state machine.
type Stage string

const (
	StageLocate   Stage = "LOCATE"
	StageIngest   Stage = "INGEST"
	StageSuccess  Stage = "SUCCESS"
	StageFallback Stage = "FALLBACK"
	StageSeedDemo Stage = "SEED_DEMO"
	StageDone     Stage = "DONE"
)

// ErrorKind groups row failures in a FileOutcome.
type ErrorKind string

const (
	KindDuplicate  ErrorKind = "duplicate"
	KindForeignKey ErrorKind = "foreign_key"
	KindNotNull    ErrorKind = "not_null"
	KindCheck      ErrorKind = "check"
	KindConnection ErrorKind = "connection"
	KindCommit     ErrorKind = "commit"
	KindUnknown    ErrorKind = "unknown"
)

// SourceFallback is the Report.Source value when the built-in catalog was used.
const SourceFallback = "fallback"

// FailedRow contains information about a row that failed to insert.
type FailedRow struct {
	FileName   string
	LineNumber int
	Kind       ErrorKind
	Reason     string
	Data       []string
}

// FileOutcome is the per-file result of an ingestion attempt.
type FileOutcome struct {
	Path      string
	Bytes     int64 // bytes read from disk
	TotalRows int   // non-blank data rows read
	Dropped   int   // rows without a brand name
	Truncated int   // rows beyond the row cap, never processed
	Inserted  int   // rows durably committed
	Errors    map[ErrorKind]int

	// FailedRows holds only the first few failures; Errors counts all of them.
	FailedRows []FailedRow
	Duration   time.Duration
}

// ErrorCount returns the number of rows that failed for any reason.
func (o FileOutcome) ErrorCount() int {
	n := 0
	for _, c := range o.Errors {
		n += c
	}
	return n
}

// Attempt records one candidate tried during INGEST.
type Attempt struct {
	Path    string
	Outcome FileOutcome
	Err     error
}

// DemoOutcome summarises demo user seeding.
type DemoOutcome struct {
	UserID           int64
	UserCreated      bool
	FavoritesLinked  int
	FavoritesSkipped int
	FavoriteErrors   int
}

// Report is everything a bootstrap run did.
type Report struct {
	RunID      string
	Candidates []string
	Attempts   []Attempt

	// Source is the ingested path, SourceFallback, or empty if the run failed.
	Source           string
	FallbackInserted int

	Demo    DemoOutcome
	DemoErr error

	FoodCount int64
	Stages    []Stage
	Duration  time.Duration
}

// Inserted returns the number of foods added by this run.
func (r Report) Inserted() int {
	if r.Source == SourceFallback {
		return r.FallbackInserted
	}
	for _, a := range r.Attempts {
		if a.Err == nil && a.Path == r.Source {
			return a.Outcome.Inserted
		}
	}
	return 0
}
