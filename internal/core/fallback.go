package core

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/foodseed/internal/config"
	"github.com/JonMunkholm/foodseed/internal/logging"
	"github.com/JonMunkholm/foodseed/internal/store"
	"github.com/JonMunkholm/foodseed/models"
)

// SampleFood is one entry of the built-in catalog.
type SampleFood struct {
	Name      string
	Nutrition models.Nutrition
}

func sample(name string, cal, protein, fat, carbs, fiber, sugars, sodium float64) SampleFood {
	return SampleFood{
		Name: name,
		Nutrition: models.Nutrition{
			Calories:      cal,
			Protein:       protein,
			TotalFat:      fat,
			Carbohydrates: carbs,
			Fiber:         fiber,
			Sugars:        sugars,
			Sodium:        sodium,
		},
	}
}

// SampleFoods is inserted when no source file could be ingested.
var SampleFoods = []SampleFood{
	//     name                  cal  protein fat  carbs fiber sugars sodium
	sample("Generic Oatmeal", 150, 5, 3, 27, 4, 1, 0),
	sample("Protein Bar Plus", 220, 20, 9, 23, 3, 5, 140),
	sample("Plain Greek Yogurt", 120, 15, 0, 9, 0, 9, 80),
	sample("Chicken Breast", 165, 31, 3.6, 0, 0, 0, 74),
	sample("Mixed Vegetables", 50, 2, 0, 10, 4, 4, 50),
	sample("Whole Wheat Bread", 80, 4, 1, 15, 3, 2, 160),
	sample("Atlantic Salmon", 206, 22, 13, 0, 0, 0, 60),
	sample("Brown Rice", 215, 5, 1.8, 45, 3.5, 0, 10),
	sample("Avocado", 240, 3, 22, 12, 10, 1, 10),
	sample("Almond Milk", 40, 1, 3, 2, 0, 0, 150),
	sample("Banana", 105, 1.3, 0.4, 27, 3.1, 14, 1),
	sample("Large Egg", 72, 6.3, 4.8, 0.4, 0, 0.2, 71),
	sample("Cheddar Cheese", 113, 7, 9.3, 0.4, 0, 0.1, 174),
	sample("Black Beans", 227, 15, 0.9, 41, 15, 0.6, 2),
	sample("Apple", 95, 0.5, 0.3, 25, 4.4, 19, 2),
	sample("Peanut Butter", 190, 7, 16, 7, 2, 3, 140),
}

// Seeder writes the fallback catalog and the demo user.
type Seeder struct {
	db   *store.DB
	demo config.DemoConfig
	log  *logging.Logger

	// Foods overrides SampleFoods when non-nil.
	Foods []SampleFood
}

// NewSeeder returns a Seeder writing through db.
func NewSeeder(db *store.DB, demo config.DemoConfig, log *logging.Logger) *Seeder {
	if log == nil {
		log = logging.Nop()
	}
	return &Seeder{db: db, demo: demo, log: log}
}

// SeedFallback inserts the built-in catalog, each row under its own
// savepoint, and returns how many rows were committed.
func (s *Seeder) SeedFallback(ctx context.Context) (int, error) {
	log := s.log.FromContext(ctx)

	foods := s.Foods
	if foods == nil {
		foods = SampleFoods
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin transaction: %w", ErrStorage, err)
	}
	defer tx.Rollback()

	q := s.db.Queries().WithTx(tx)
	inserted := 0

	for _, sf := range foods {
		food := models.FoodRecord{BrandName: sf.Name, Nutrition: sf.Nutrition}

		err := store.WithSavepoint(ctx, tx, rowSavepoint, func() error {
			return q.InsertFood(ctx, food)
		})
		if err != nil {
			kind := ClassifyRowError(err)
			log.Warn().Err(err).Str("food", sf.Name).Str("kind", string(kind)).Msg(FormatRowError(kind))
			continue
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit fallback catalog: %w", ErrStorage, err)
	}

	log.Info().Int("inserted", inserted).Int("total", len(foods)).Msg("fallback catalog seeded")
	return inserted, nil
}
