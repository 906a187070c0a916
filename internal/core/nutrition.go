package core

import (
	"math/rand/v2"

	"github.com/JonMunkholm/foodseed/models"
)

// ValueSource supplies the stand-in nutrition values. Implementations return
// a value in [min, max].
type ValueSource interface {
	Uniform(min, max float64) float64
}

// RandSource samples with math/rand/v2. A nil Rand uses the auto-seeded
// package generator.
type RandSource struct {
	Rand *rand.Rand
}

// NewSeededSource returns a reproducible RandSource.
func NewSeededSource(seed uint64) RandSource {
	return RandSource{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform implements ValueSource.
func (s RandSource) Uniform(min, max float64) float64 {
	f := rand.Float64
	if s.Rand != nil {
		f = s.Rand.Float64
	}
	return min + f()*(max-min)
}

// Range is a closed sampling interval.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies in r.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// NutritionRanges are the sampling domains per nutrient.
var NutritionRanges = struct {
	Calories, Protein, TotalFat, Carbohydrates, Fiber, Sugars, Sodium Range
}{
	Calories:      Range{50, 500},
	Protein:       Range{0, 30},
	TotalFat:      Range{0, 25},
	Carbohydrates: Range{0, 50},
	Fiber:         Range{0, 10},
	Sugars:        Range{0, 20},
	Sodium:        Range{0, 1000},
}

// SampleNutrition draws each nutrient independently from its range.
func SampleNutrition(src ValueSource) models.Nutrition {
	nr := NutritionRanges
	return models.Nutrition{
		Calories:      src.Uniform(nr.Calories.Min, nr.Calories.Max),
		Protein:       src.Uniform(nr.Protein.Min, nr.Protein.Max),
		TotalFat:      src.Uniform(nr.TotalFat.Min, nr.TotalFat.Max),
		Carbohydrates: src.Uniform(nr.Carbohydrates.Min, nr.Carbohydrates.Max),
		Fiber:         src.Uniform(nr.Fiber.Min, nr.Fiber.Max),
		Sugars:        src.Uniform(nr.Sugars.Min, nr.Sugars.Max),
		Sodium:        src.Uniform(nr.Sodium.Min, nr.Sodium.Max),
	}
}
