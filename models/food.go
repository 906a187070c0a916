// Package models holds the records persisted by foodseed.
package models

// Nutrition is the per-serving nutrient block stored with every food.
type Nutrition struct {
	Calories      float64
	Protein       float64
	TotalFat      float64
	Carbohydrates float64
	Fiber         float64
	Sugars        float64
	Sodium        float64
}

// FoodRecord is one row of the branded food catalog.
//
// Date fields are kept as the text found in the source file. BrandName is
// never empty for a stored record.
type FoodRecord struct {
	ID                       int64
	FdcID                    string
	BrandOwner               string
	BrandName                string
	SubbrandName             string
	GtinUpc                  string
	Ingredients              string
	NotASignificantSourceOf  string
	ServingSize              float64
	ServingSizeUnit          string
	HouseholdServingFulltext string
	BrandedFoodCategory      string
	DataSource               string
	PackageWeight            string
	ModifiedDate             string
	AvailableDate            string
	MarketCountry            string
	DiscontinuedDate         string
	PreparationStateCode     string
	TradeChannel             string
	ShortDescription         string
	MaterialCode             string

	Nutrition
}
