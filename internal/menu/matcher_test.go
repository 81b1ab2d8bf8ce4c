package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightmenu/menu-ocr-service/internal/catalog"
	"github.com/flightmenu/menu-ocr-service/internal/models"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

// Every catalog entry must match its own exact name, in either language,
// with the correct category and the full bilingual pair.
func TestMatchSoundness(t *testing.T) {
	cat := loadCatalog(t)
	m := NewMatcher(cat, HeuristicDetector{})

	for _, entry := range cat.Entries() {
		for _, name := range []string{entry.EN.Name, entry.TR.Name} {
			item, ok := m.Match(models.RawCandidateItem{Name: name, Timing: models.TimingRegular})
			require.True(t, ok, "name %q", name)
			assert.Equal(t, entry.Category, item.Category, "name %q", name)
			require.NotNil(t, item.Translations, "name %q", name)
			assert.Equal(t, entry.EN, item.Translations[catalog.LangEN], "name %q", name)
			assert.Equal(t, entry.TR, item.Translations[catalog.LangTR], "name %q", name)
			assert.ElementsMatch(t, catalog.SupportedLanguages, item.Languages, "name %q", name)
		}
	}
}

func TestMatchTurkishCandidatePicksTurkishSide(t *testing.T) {
	m := NewMatcher(loadCatalog(t), HeuristicDetector{})

	item, ok := m.Match(models.RawCandidateItem{Name: "Sebze Salatası"})
	require.True(t, ok)
	assert.Equal(t, "Sebze Salatası", item.Name)
	assert.Equal(t, "Vegetable Salad", item.Translations[catalog.LangEN].Name)
	assert.Contains(t, item.DietaryInfo, "vegetarian")
}

func TestMatchMissKeepsRawText(t *testing.T) {
	m := NewMatcher(loadCatalog(t), HeuristicDetector{})

	item, ok := m.Match(models.RawCandidateItem{
		Name:        "Grilled Chicken Breast",
		Description: "with lemon sauce",
		Timing:      models.TimingPreLanding,
	})
	require.True(t, ok)
	assert.Equal(t, "Grilled Chicken Breast", item.Name)
	assert.Equal(t, "with lemon sauce", item.Description)
	assert.Empty(t, item.Category)
	assert.Nil(t, item.Translations)
	assert.Contains(t, item.DietaryInfo, "poultry")
	assert.Equal(t, models.TimingPreLanding, item.Timing)
}

func TestMatchDropsEmptyNormalizedName(t *testing.T) {
	m := NewMatcher(loadCatalog(t), HeuristicDetector{})

	_, ok := m.Match(models.RawCandidateItem{Name: "!!!???"})
	assert.False(t, ok)
}

func TestMatchTieBreakKeepsCatalogOrder(t *testing.T) {
	cat, err := catalog.New([]byte(`[
		{"category": "First", "items": [
			{"en": {"name": "Abcd"}, "tr": {"name": "Abcd"}}
		]},
		{"category": "Second", "items": [
			{"en": {"name": "Abce"}, "tr": {"name": "Abce"}}
		]}
	]`))
	require.NoError(t, err)

	m := NewMatcher(cat, HeuristicDetector{})
	item, ok := m.Match(models.RawCandidateItem{Name: "Abcx"})
	require.True(t, ok)
	assert.Equal(t, "First", item.Category)
}
