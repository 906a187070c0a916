package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{" FDC_ID", "Brand_Name ", "", "brand_name"})

	assert.Equal(t, 0, idx["fdc_id"])
	assert.Equal(t, 1, idx["brand_name"], "first duplicate wins")
	assert.True(t, idx.Has("BRAND_NAME"))
	assert.False(t, idx.Has("ingredients"))
	assert.Len(t, idx, 2)
}

func TestRowAccessors(t *testing.T) {
	idx := MakeHeaderIndex([]string{"brand_name", "serving_size", "ingredients"})

	t.Run("present values", func(t *testing.T) {
		r := NewRow(idx, []string{"Acme", "30.5", "oats"}, 2)
		assert.Equal(t, "Acme", r.Text("brand_name"))
		assert.Equal(t, 30.5, r.Number("serving_size"))
		assert.True(t, r.Has("ingredients"))
		assert.Equal(t, 2, r.Line)
	})

	t.Run("short record", func(t *testing.T) {
		r := NewRow(idx, []string{"Acme"}, 3)
		assert.False(t, r.Has("serving_size"))
		assert.Equal(t, 0.0, r.Number("serving_size"))
		assert.Equal(t, "", r.Text("ingredients"))
	})

	t.Run("unknown column", func(t *testing.T) {
		r := NewRow(idx, []string{"Acme", "1", "x"}, 4)
		_, ok := r.Raw("gtin_upc")
		assert.False(t, ok)
		assert.Equal(t, "", r.Text("gtin_upc"))
	})

	t.Run("missing markers", func(t *testing.T) {
		r := NewRow(idx, []string{"Acme", "NaN", "None"}, 5)
		assert.Equal(t, 0.0, r.Number("serving_size"))
		assert.Equal(t, "", r.Text("ingredients"))
	})
}

func TestFoodFromRow_PartialRecord(t *testing.T) {
	idx := MakeHeaderIndex([]string{"brand_name", "brand_owner", "serving_size", "serving_size_unit"})
	r := NewRow(idx, []string{"Acme Oats", "Acme Inc", "40", "g"}, 2)

	food := FoodFromRow(r)

	assert.Equal(t, "Acme Oats", food.BrandName)
	assert.Equal(t, "Acme Inc", food.BrandOwner)
	assert.Equal(t, 40.0, food.ServingSize)
	assert.Equal(t, "g", food.ServingSizeUnit)
	assert.Empty(t, food.FdcID)
	assert.Empty(t, food.Ingredients)
	assert.Zero(t, food.Calories)
}

func TestUnrecognizedColumns(t *testing.T) {
	got := unrecognizedColumns([]string{"brand_name", "Energy_KCAL", "fdc_id", "", "notes"})
	assert.Equal(t, []string{"Energy_KCAL", "notes"}, got)
}
