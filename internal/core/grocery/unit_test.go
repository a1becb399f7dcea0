package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnit(t *testing.T) {
	assert.Equal(t, UnitDefault, ParseUnit(""))
	assert.Equal(t, UnitCup, ParseUnit("cup"))
	assert.True(t, ParseUnit("").IsDefault())
	assert.False(t, UnitG.IsDefault())
}

func TestUnitLabel(t *testing.T) {
	for _, unit := range KnownUnits {
		assert.NotEmpty(t, unit.Label(), "expected %s to have a label", unit)
	}
	assert.Equal(t, "with love", UnitWithLove.Label())
	assert.Equal(t, "tbsp", UnitTbsp.Label())
}

func TestParseCategory(t *testing.T) {
	t.Run("blank becomes other", func(t *testing.T) {
		assert.Equal(t, CategoryOther, ParseCategory(""))
		assert.Equal(t, CategoryOther, ParseCategory("   "))
	})

	t.Run("known categories pass through", func(t *testing.T) {
		for _, category := range append(IngredientCategories, HouseholdCategories...) {
			assert.Equal(t, category, ParseCategory(string(category)))
		}
	})
}

func TestDeriveKey(t *testing.T) {
	assert.Equal(t, "rice", DeriveKey(SourceMeal, "  Rice "))
	assert.Equal(t, "household:rice", DeriveKey(SourceHousehold, "Rice"))
	assert.Equal(t, "", DeriveKey(SourceMeal, "   "))
	assert.Equal(t, "household:", DeriveKey(SourceHousehold, ""))
}

func TestNormalizeCheckKey(t *testing.T) {
	assert.Equal(t, "household:paper towels", NormalizeCheckKey(" Household:Paper Towels "))
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name     string
		servings *int
		base     int
		want     string
	}{
		{name: "no override", servings: nil, base: 2, want: "1"},
		{name: "double", servings: ptr(4), base: 2, want: "2"},
		{name: "half", servings: ptr(1), base: 2, want: "0.5"},
		{name: "zero base treated as one", servings: ptr(3), base: 0, want: "3"},
		{name: "negative base treated as one", servings: ptr(2), base: -4, want: "2"},
		{name: "third is exact", servings: ptr(1), base: 3, want: "1/3"},
		{name: "two thirds", servings: ptr(4), base: 6, want: "2/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleFactor(tt.servings, tt.base)
			assert.Equal(t, tt.want, got.RatString())
		})
	}
}
