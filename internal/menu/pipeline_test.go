package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightmenu/menu-ocr-service/internal/catalog"
	"github.com/flightmenu/menu-ocr-service/internal/models"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	return NewParser(loadCatalog(t))
}

func TestParseUnknownItemAcrossSections(t *testing.T) {
	items := newParser(t).ParseLines([]string{
		"Starters",
		"Grilled Chicken Breast",
		"with lemon sauce",
		"Before landing",
		"Grilled Chicken Breast",
	})
	require.Len(t, items, 2)

	assert.Equal(t, "Grilled Chicken Breast", items[0].Name)
	assert.Equal(t, models.TimingRegular, items[0].Timing)
	assert.Contains(t, items[0].Description, "with lemon sauce")

	assert.Equal(t, "Grilled Chicken Breast", items[1].Name)
	assert.Equal(t, models.TimingPreLanding, items[1].Timing)
	assert.Empty(t, items[1].Description)
}

func TestParseUnmatchedItemHasNoCategory(t *testing.T) {
	items := newParser(t).ParseLines([]string{"Xyzzy Plonk 123"})
	require.Len(t, items, 1)
	assert.Equal(t, "Xyzzy Plonk 123", items[0].Name)
	assert.Empty(t, items[0].Category)
	assert.Empty(t, items[0].DietaryInfo)
	assert.NotNil(t, items[0].DietaryInfo)
}

func TestParseCatalogHitEmitsBilingualItem(t *testing.T) {
	items := newParser(t).ParseLines([]string{"Sebze Salatası"})
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Sebze Salatası", item.Name)
	assert.Equal(t, "Salads", item.Category)
	require.NotNil(t, item.Translations)
	assert.Equal(t, "Vegetable Salad", item.Translations[catalog.LangEN].Name)
	assert.Contains(t, item.DietaryInfo, "vegetarian")
	assert.ElementsMatch(t, catalog.SupportedLanguages, item.Languages)
}

func TestParseDeduplicatesWithinSection(t *testing.T) {
	items := newParser(t).ParseLines([]string{
		"Steamed Rice",
		"Steamed Rice",
	})
	assert.Len(t, items, 1)
}

func TestParseAllowsSameDishInBothSections(t *testing.T) {
	items := newParser(t).ParseLines([]string{
		"Steamed Rice",
		"Before landing",
		"Steamed Rice",
	})
	require.Len(t, items, 2)
	assert.Equal(t, models.TimingRegular, items[0].Timing)
	assert.Equal(t, models.TimingPreLanding, items[1].Timing)
}

func TestParseTimingMonotonicity(t *testing.T) {
	items := newParser(t).ParseLines([]string{
		"Main Courses",
		"Basa Fish",
		"Penne with Tomato Sauce",
		"Before landing",
		"Scrambled Eggs",
		"Cheese Plate",
	})
	require.Len(t, items, 4)
	marked := false
	for _, item := range items {
		if item.Timing == models.TimingPreLanding {
			marked = true
		}
		if marked {
			assert.Equal(t, models.TimingPreLanding, item.Timing, "item %q", item.Name)
		} else {
			assert.Equal(t, models.TimingRegular, item.Timing, "item %q", item.Name)
		}
	}
	assert.True(t, marked)
}

func TestParseTextSplitsOnNewlines(t *testing.T) {
	items := newParser(t).ParseText("Desserts\nMango Mousse\nwith cream\n")
	require.Len(t, items, 1)
	assert.Equal(t, "Mango Mousse", items[0].Name)
	assert.Equal(t, "Desserts", items[0].Category)
}

func TestParseEmptyInputYieldsEmptyResult(t *testing.T) {
	items := newParser(t).ParseText("")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
