package services

import (
	"fmt"

	"github.com/flightmenu/menu-ocr-service/internal/catalog"
	"github.com/flightmenu/menu-ocr-service/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Item    int    `json:"item"`
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// ValidationWarning represents a non-critical issue
type ValidationWarning struct {
	Item    int    `json:"item"`
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult is the response from validation
type ValidationResult struct {
	Valid       bool                `json:"valid"`
	NeedsReview bool                `json:"needs_review"`
	Errors      []ValidationError   `json:"errors"`
	Warnings    []ValidationWarning `json:"warnings"`
}

var knownDietaryTags = map[string]bool{
	"vegetarian":  true,
	"vegan":       true,
	"seafood":     true,
	"poultry":     true,
	"meat":        true,
	"dairy":       true,
	"gluten-free": true,
	"halal":       true,
}

// MenuValidator checks parsed menu items against the output contract before
// they are persisted or handed to the chat assistant.
type MenuValidator struct{}

// NewMenuValidator creates a new validator
func NewMenuValidator() *MenuValidator {
	return &MenuValidator{}
}

// Validate checks every item: legal timing, complete bilingual translations
// when present, name/description agreeing with one translation side, and
// recognized dietary tags.
func (v *MenuValidator) Validate(items []models.MenuItem) *ValidationResult {
	result := &ValidationResult{
		Valid:       true,
		NeedsReview: false,
		Errors:      []ValidationError{},
		Warnings:    []ValidationWarning{},
	}

	for i, item := range items {
		v.validateItem(i, item, result)
	}

	result.Valid = len(result.Errors) == 0
	result.NeedsReview = len(result.Warnings) > 0

	return result
}

func (v *MenuValidator) validateItem(i int, item models.MenuItem, result *ValidationResult) {
	if item.Name == "" {
		result.Errors = append(result.Errors, ValidationError{
			Item: i, Field: "name", Code: "EMPTY_NAME",
			Message: "menu item has no name",
		})
	}

	if item.Timing != models.TimingRegular && item.Timing != models.TimingPreLanding {
		result.Errors = append(result.Errors, ValidationError{
			Item: i, Field: "timing", Code: "INVALID_TIMING",
			Message: fmt.Sprintf("unknown timing %q", item.Timing),
		})
	}

	if item.Translations != nil {
		// all supported languages must be present
		for _, lang := range catalog.SupportedLanguages {
			if _, ok := item.Translations[lang]; !ok {
				result.Errors = append(result.Errors, ValidationError{
					Item: i, Field: "translations", Code: "MISSING_TRANSLATION",
					Message: fmt.Sprintf("no %s translation", lang),
				})
			}
		}
		// name must agree with one translation side
		matches := false
		for _, lt := range item.Translations {
			if lt.Name == item.Name {
				matches = true
				break
			}
		}
		if !matches {
			result.Errors = append(result.Errors, ValidationError{
				Item: i, Field: "name", Code: "NAME_TRANSLATION_MISMATCH",
				Message: "name does not match any translation",
			})
		}
	} else if item.Category != "" {
		// categorized items come from the catalog and must be bilingual
		result.Warnings = append(result.Warnings, ValidationWarning{
			Item: i, Field: "translations", Code: "CATEGORIZED_WITHOUT_TRANSLATIONS",
			Message: "categorized item carries no translations",
		})
	}

	for _, tag := range item.DietaryInfo {
		if !knownDietaryTags[tag] {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Item: i, Field: "dietaryInfo", Code: "UNKNOWN_TAG",
				Message: fmt.Sprintf("unrecognized dietary tag %q", tag),
			})
		}
	}

	if item.Description == "" && item.Translations == nil {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Item: i, Field: "description", Code: "EMPTY_DESCRIPTION",
			Message: "unmatched item has no description",
		})
	}
}
