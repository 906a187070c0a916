package core

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/core_mock.go -package=mock

// SourceLocator produces the ordered list of candidate files.
type SourceLocator interface {
	Locate() ([]string, error)
}

// FileIngester loads a single candidate file. A non-nil error means the file
// was not usable and the next candidate should be tried.
type FileIngester interface {
	IngestFile(ctx context.Context, path string) (FileOutcome, error)
}

// FallbackSeeder inserts the built-in catalog and returns the rows written.
type FallbackSeeder interface {
	SeedFallback(ctx context.Context) (int, error)
}

// DemoSeeder creates the demo user and favorites.
type DemoSeeder interface {
	SeedDemo(ctx context.Context) (DemoOutcome, error)
}

// SourceFetcher mirrors remote CSV exports into dir and returns the local
// paths it wrote.
type SourceFetcher interface {
	Fetch(ctx context.Context, dir string) ([]string, error)
}

// FoodCounter reports the catalog size at the end of a run.
type FoodCounter interface {
	CountFoods(ctx context.Context) (int64, error)
}
