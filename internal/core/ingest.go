package core

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/internal/logging"
	"github.com/JonMunkholm/foodseed/internal/store"
)

// Defaults applied when an IngestConfig field is zero.
const (
	DefaultRowCap            = 100000
	DefaultBatchSize         = 500
	DefaultMaxReportedErrors = 5
	DefaultMaxFileSize int64 = 1 << 30
)

// ContextCheckInterval is how often (in rows) cancellation is checked.
var ContextCheckInterval = 100

// rowSavepoint names the savepoint wrapping each single-row insert.
const rowSavepoint = "sp_row"

// Engine loads candidate CSV files into the catalog.
type Engine struct {
	db     *store.DB
	cfg    config.IngestConfig
	values ValueSource
	log    *logging.Logger
}

// NewEngine returns an Engine writing through db. values supplies the
// nutrition stand-ins; nil selects an auto-seeded RandSource.
func NewEngine(db *store.DB, cfg config.IngestConfig, values ValueSource, log *logging.Logger) *Engine {
	if cfg.RowCap <= 0 {
		cfg.RowCap = DefaultRowCap
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.MaxReportedErrors < 0 {
		cfg.MaxReportedErrors = DefaultMaxReportedErrors
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if values == nil {
		values = RandSource{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{db: db, cfg: cfg, values: values, log: log}
}

// IngestFile performs a full load of one file.
//
// The returned error is nil whenever the file was readable, no matter how
// many rows failed; per-row results are in the FileOutcome. An unreadable
// file yields an error wrapping ErrUnreadableSource, and a transaction that
// cannot be opened yields one wrapping ErrStorage.
func (e *Engine) IngestFile(ctx context.Context, path string) (FileOutcome, error) {
	start := time.Now()
	out := FileOutcome{Path: path, Errors: make(map[ErrorKind]int)}
	log := e.log.FromContext(ctx).WithFields("file", path)

	rows, err := e.load(log, path, &out)
	if err != nil {
		out.Duration = time.Since(start)
		log.Warn().Err(err).Msg("source unreadable")
		return out, fmt.Errorf("%w: %s: %w", ErrUnreadableSource, path, err)
	}

	log.Info().
		Int("rows", out.TotalRows).
		Int("dropped", out.Dropped).
		Int("truncated", out.Truncated).
		Msg("source loaded")

	err = e.insertRows(ctx, log, rows, &out)
	out.Duration = time.Since(start)

	log.Info().
		Int("inserted", out.Inserted).
		Int("dropped", out.Dropped).
		Int("truncated", out.Truncated).
		Int("errors", out.ErrorCount()).
		Dur("duration", out.Duration).
		Msg("ingestion finished")

	return out, err
}

// load reads every record of path, keeping at most RowCap rows that carry a
// brand name.
func (e *Engine) load(log *logging.Logger, path string, out *FileOutcome) ([]Row, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New("not a regular file")
	}
	if info.Size() > e.cfg.MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, info.Size(), e.cfg.MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	counter := &countingReader{reader: f}
	defer func() { out.Bytes = counter.BytesRead }()

	r := csv.NewReader(newSourceReader(counter))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	idx := MakeHeaderIndex(header)
	if !idx.Has(ColumnBrandName) {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, ColumnBrandName)
	}
	if ignored := unrecognizedColumns(header); len(ignored) > 0 {
		log.Debug().Strs("columns", ignored).Msg("ignoring unrecognized columns")
	}

	var rows []Row
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}

		// encoding/csv already skips blank lines; a record of empty fields
		// is a row without a brand and is dropped below.
		out.TotalRows++

		line, _ := r.FieldPos(0)
		row := NewRow(idx, rec, line)

		if strings.TrimSpace(row.Text(ColumnBrandName)) == "" {
			out.Dropped++
			continue
		}
		if len(rows) >= e.cfg.RowCap {
			out.Truncated++
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// insertRows writes rows in file order. Each row runs under its own
// savepoint; the transaction is committed every BatchSize successes and once
// at the end.
func (e *Engine) insertRows(ctx context.Context, log *logging.Logger, rows []Row, out *FileOutcome) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", ErrStorage, err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	q := e.db.Queries().WithTx(tx)
	pending := 0
	fileName := filepath.Base(out.Path)

	for i, row := range rows {
		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				out.Inserted -= pending
				return fmt.Errorf("ingestion cancelled: %w", err)
			}
		}

		food := FoodFromRow(row)
		food.Nutrition = SampleNutrition(e.values)

		err := store.WithSavepoint(ctx, tx, rowSavepoint, func() error {
			return q.InsertFood(ctx, food)
		})
		if err != nil {
			e.recordFailure(log, out, FailedRow{
				FileName:   fileName,
				LineNumber: row.Line,
				Kind:       ClassifyRowError(err),
				Reason:     err.Error(),
				Data:       row.Fields(),
			})
			continue
		}

		out.Inserted++
		pending++

		if pending < e.cfg.BatchSize {
			continue
		}

		e.commitBatch(log, tx, pending, out)
		pending = 0
		tx = nil

		if i == len(rows)-1 {
			break
		}

		tx, err = e.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: begin transaction: %w", ErrStorage, err)
		}
		q = q.WithTx(tx)
	}

	if tx != nil {
		e.commitBatch(log, tx, pending, out)
		tx = nil
	}

	return nil
}

// commitBatch commits tx. On failure the batch's rows are moved from
// Inserted to the commit error kind.
func (e *Engine) commitBatch(log *logging.Logger, tx *sql.Tx, pending int, out *FileOutcome) {
	err := tx.Commit()
	if err == nil {
		log.Debug().Int("rows", pending).Int("inserted", out.Inserted).Msg("batch committed")
		return
	}

	_ = tx.Rollback()
	out.Inserted -= pending
	out.Errors[KindCommit] += pending
	log.Error().Err(err).Int("rows", pending).Msg(FormatRowError(KindCommit))
}

// recordFailure counts every failure and keeps the first few for reporting.
func (e *Engine) recordFailure(log *logging.Logger, out *FileOutcome, fr FailedRow) {
	out.Errors[fr.Kind]++

	if len(out.FailedRows) >= e.cfg.MaxReportedErrors {
		return
	}
	out.FailedRows = append(out.FailedRows, fr)

	log.Warn().
		Int("line", fr.LineNumber).
		Str("kind", string(fr.Kind)).
		Str("reason", fr.Reason).
		Msg(FormatRowError(fr.Kind))
}
