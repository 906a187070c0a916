// Package core loads the branded food catalog.
//
// The package holds the ingestion pipeline and everything it decides:
//
//   - Sanitizing: [SanitizeText] and [SanitizeNumber] normalise raw CSV
//     cells, absorbing missing-value markers and malformed numbers.
//   - Locating: [Locator] orders candidate CSV files by directory priority
//     and filename keywords.
//   - Ingesting: [Engine] reads one file, drops rows without a brand name,
//     caps the row count and inserts rows under per-row savepoints,
//     committing in fixed-size batches.
//   - Seeding: [Seeder] inserts the built-in [SampleFoods] when no file is
//     usable and links a demo user to a handful of foods.
//   - Orchestrating: [Bootstrap] walks LOCATE, INGEST, SUCCESS or FALLBACK,
//     SEED_DEMO and DONE, and returns a [Report].
//
// # Errors
//
// A file that cannot be opened, decoded or parsed, or whose header lacks
// brand_name, yields an error wrapping [ErrUnreadableSource]; the bootstrap
// moves on to the next candidate. Row failures never surface as errors.
// They are classified into an [ErrorKind] and counted in the [FileOutcome].
// The only fatal condition is [ErrNoData]: neither a file nor the fallback
// catalog produced a single row.
package core
