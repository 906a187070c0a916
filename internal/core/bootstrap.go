package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JonMunkholm/foodseed/internal/logging"
)

// Bootstrap sequences one load of the catalog:
//
//	LOCATE -> INGEST -> SUCCESS  -> SEED_DEMO -> DONE
//	       \        \-> FALLBACK -^
//	        \---------> FALLBACK
//
// Locator, Ingester and Fallback are required. Fetcher, Demo and Counter are
// optional and skipped when nil.
type Bootstrap struct {
	Locator  SourceLocator
	Ingester FileIngester
	Fallback FallbackSeeder

	// Fetcher mirrors remote files into FetchDir before LOCATE.
	Fetcher  SourceFetcher
	FetchDir string

	Demo    DemoSeeder
	Counter FoodCounter

	Log *logging.Logger
}

// Run executes the state machine. The only error returned for a completed
// run is one wrapping ErrNoData; context cancellation is also returned.
func (b *Bootstrap) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	rep := Report{RunID: logging.RunID(ctx)}

	log := b.Log
	if log == nil {
		log = logging.Nop()
	}
	log = log.FromContext(ctx)

	stage := StageLocate
	for {
		rep.Stages = append(rep.Stages, stage)
		log.Debug().Str("stage", string(stage)).Msg("entering stage")

		switch stage {
		case StageLocate:
			b.mirror(ctx, log)

			candidates, err := b.Locator.Locate()
			if err != nil {
				log.Error().Err(err).Msg("source discovery failed")
			}
			rep.Candidates = candidates
			log.Info().Strs("candidates", candidates).Msg("sources located")

			stage = StageIngest
			if len(candidates) == 0 {
				stage = StageFallback
			}

		case StageIngest:
			stage = StageFallback
			for _, path := range rep.Candidates {
				out, err := b.Ingester.IngestFile(ctx, path)
				rep.Attempts = append(rep.Attempts, Attempt{Path: path, Outcome: out, Err: err})

				if err != nil {
					if ctxErr := ctx.Err(); ctxErr != nil {
						return rep, ctxErr
					}
					log.Warn().Err(err).Str("file", path).Msg("candidate skipped")
					continue
				}

				rep.Source = path
				stage = StageSuccess
				break
			}

		case StageSuccess:
			log.Info().Str("source", rep.Source).Int("inserted", rep.Inserted()).Msg("source ingested")
			stage = StageSeedDemo

		case StageFallback:
			n, err := b.Fallback.SeedFallback(ctx)
			rep.FallbackInserted = n
			if err != nil {
				return rep, fmt.Errorf("%w: fallback seeding: %w", ErrNoData, err)
			}
			if n == 0 {
				return rep, ErrNoData
			}
			rep.Source = SourceFallback
			stage = StageSeedDemo

		case StageSeedDemo:
			if b.Demo != nil {
				out, err := b.Demo.SeedDemo(ctx)
				rep.Demo = out
				if err != nil {
					rep.DemoErr = err
					log.Error().Err(err).Msg("demo seeding failed")
				}
			}
			stage = StageDone

		case StageDone:
			if b.Counter != nil {
				n, err := b.Counter.CountFoods(ctx)
				if err != nil {
					log.Warn().Err(err).Msg("counting foods failed")
				}
				rep.FoodCount = n
			}
			rep.Duration = time.Since(start)

			log.Info().
				Str("source", rep.Source).
				Int("inserted", rep.Inserted()).
				Int64("foods", rep.FoodCount).
				Dur("duration", rep.Duration).
				Msg("bootstrap complete")
			return rep, nil

		default:
			return rep, errors.New("unknown bootstrap stage " + string(stage))
		}
	}
}

// mirror runs the optional remote fetch. Failures only cost the remote files.
func (b *Bootstrap) mirror(ctx context.Context, log *logging.Logger) {
	if b.Fetcher == nil {
		return
	}

	paths, err := b.Fetcher.Fetch(ctx, b.FetchDir)
	if err != nil {
		log.Warn().Err(err).Msg("remote mirror failed, continuing with local files")
		return
	}
	log.Info().Int("files", len(paths)).Msg("remote sources mirrored")
}
