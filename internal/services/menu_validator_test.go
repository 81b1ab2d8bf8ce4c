package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

func bilingualItem() models.MenuItem {
	return models.MenuItem{
		Name:        "Sebze Salatası",
		Description: "Mevsim yeşillikleri",
		Category:    "Salads",
		Translations: map[string]models.LocalizedText{
			"en": {Name: "Vegetable Salad", Description: "Seasonal greens"},
			"tr": {Name: "Sebze Salatası", Description: "Mevsim yeşillikleri"},
		},
		Languages:   []string{"en", "tr"},
		DietaryInfo: []string{"vegetarian"},
		Timing:      models.TimingRegular,
	}
}

func TestValidateAcceptsWellFormedItems(t *testing.T) {
	unmatched := models.MenuItem{
		Name:        "Grilled Chicken Breast",
		Description: "with lemon sauce",
		DietaryInfo: []string{"poultry"},
		Timing:      models.TimingPreLanding,
	}

	result := NewMenuValidator().Validate([]models.MenuItem{bilingualItem(), unmatched})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateRejectsIncompleteTranslations(t *testing.T) {
	item := bilingualItem()
	delete(item.Translations, "tr")
	item.Name = "Vegetable Salad"

	result := NewMenuValidator().Validate([]models.MenuItem{item})
	require.False(t, result.Valid)
	assert.Equal(t, "MISSING_TRANSLATION", result.Errors[0].Code)
}

func TestValidateRejectsNameTranslationMismatch(t *testing.T) {
	item := bilingualItem()
	item.Name = "Something Else"

	result := NewMenuValidator().Validate([]models.MenuItem{item})
	require.False(t, result.Valid)
	assert.Equal(t, "NAME_TRANSLATION_MISMATCH", result.Errors[0].Code)
}

func TestValidateRejectsBadTiming(t *testing.T) {
	item := bilingualItem()
	item.Timing = models.Timing("brunch")

	result := NewMenuValidator().Validate([]models.MenuItem{item})
	assert.False(t, result.Valid)
}

func TestValidateWarnsOnUnknownTag(t *testing.T) {
	item := bilingualItem()
	item.DietaryInfo = []string{"vegetarian", "radioactive"}

	result := NewMenuValidator().Validate([]models.MenuItem{item})
	assert.True(t, result.Valid)
	assert.True(t, result.NeedsReview)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "UNKNOWN_TAG", result.Warnings[0].Code)
}
