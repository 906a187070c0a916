package core

import (
	"strings"

	"github.com/JonMunkholm/foodseed/models"
)

// ColumnBrandName is the only column a source file must carry.
const ColumnBrandName = "brand_name"

// Columns lists the CSV columns mapped onto a FoodRecord. Any other header is
// ignored.
var Columns = []string{
	"fdc_id",
	"brand_owner",
	ColumnBrandName,
	"subbrand_name",
	"gtin_upc",
	"ingredients",
	"not_a_significant_source_of",
	"serving_size",
	"serving_size_unit",
	"household_serving_fulltext",
	"branded_food_category",
	"data_source",
	"package_weight",
	"modified_date",
	"available_date",
	"market_country",
	"discontinued_date",
	"preparation_state_code",
	"trade_channel",
	"short_description",
	"material_code",
}

// HeaderIndex maps column names (lowercase) to their position in the CSV row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Keys are trimmed and lowercased; when a name repeats, the first column wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

// Has reports whether the header contains name.
func (h HeaderIndex) Has(name string) bool {
	_, ok := h[strings.ToLower(name)]
	return ok
}

// unrecognizedColumns returns header names that do not map to a FoodRecord
// field, in header order.
func unrecognizedColumns(header []string) []string {
	known := make(map[string]struct{}, len(Columns))
	for _, c := range Columns {
		known[c] = struct{}{}
	}

	var out []string
	for _, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := known[key]; !ok && key != "" {
			out = append(out, name)
		}
	}
	return out
}

// Row is a typed view over one CSV record. Every accessor goes through the
// sanitizer, so a missing column and a missing value look the same.
type Row struct {
	header HeaderIndex
	fields []string

	// Line is the 1-based line number in the source file.
	Line int
}

// NewRow wraps fields using header for lookups.
func NewRow(header HeaderIndex, fields []string, line int) Row {
	return Row{header: header, fields: fields, Line: line}
}

// Raw returns the unsanitized cell for name.
func (r Row) Raw(name string) (string, bool) {
	pos, ok := r.header[strings.ToLower(name)]
	if !ok || pos >= len(r.fields) {
		return "", false
	}
	return r.fields[pos], true
}

// Has reports whether the row carries a cell for name.
func (r Row) Has(name string) bool {
	_, ok := r.Raw(name)
	return ok
}

// Text returns the sanitized text of name, or "".
func (r Row) Text(name string) string {
	raw, ok := r.Raw(name)
	if !ok {
		return ""
	}
	return SanitizeText(raw)
}

// Number returns the sanitized number in name, or 0.
func (r Row) Number(name string) float64 {
	raw, ok := r.Raw(name)
	if !ok {
		return 0
	}
	return SanitizeNumber(raw)
}

// Fields returns the underlying record.
func (r Row) Fields() []string {
	return r.fields
}

// FoodFromRow builds the descriptive part of a FoodRecord. Nutrition is left
// zero for the caller to fill.
func FoodFromRow(r Row) models.FoodRecord {
	return models.FoodRecord{
		FdcID:                    r.Text("fdc_id"),
		BrandOwner:               r.Text("brand_owner"),
		BrandName:                r.Text(ColumnBrandName),
		SubbrandName:             r.Text("subbrand_name"),
		GtinUpc:                  r.Text("gtin_upc"),
		Ingredients:              r.Text("ingredients"),
		NotASignificantSourceOf:  r.Text("not_a_significant_source_of"),
		ServingSize:              r.Number("serving_size"),
		ServingSizeUnit:          r.Text("serving_size_unit"),
		HouseholdServingFulltext: r.Text("household_serving_fulltext"),
		BrandedFoodCategory:      r.Text("branded_food_category"),
		DataSource:               r.Text("data_source"),
		PackageWeight:            r.Text("package_weight"),
		ModifiedDate:             r.Text("modified_date"),
		AvailableDate:            r.Text("available_date"),
		MarketCountry:            r.Text("market_country"),
		DiscontinuedDate:         r.Text("discontinued_date"),
		PreparationStateCode:     r.Text("preparation_state_code"),
		TradeChannel:             r.Text("trade_channel"),
		ShortDescription:         r.Text("short_description"),
		MaterialCode:             r.Text("material_code"),
	}
}
