package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySectionMarkers(t *testing.T) {
	markers := []string{
		"Before landing",
		"Served before landing",
		"Pre-landing service",
		"İnişten Önce",
		"İniş öncesi servis",
		"Inmeden önce",
	}
	for _, line := range markers {
		assert.Equal(t, LineSectionMarker, Classify(line), "line %q", line)
	}
}

func TestClassifyCategoryHeaders(t *testing.T) {
	headers := []string{
		"Starters",
		"Desserts",
		"Main Courses",
		"Breakfast",
		"Ana Yemekler",
		"Tatlılar",
		"Sıcak İçecekler:",
		"----",
		"Menü",
	}
	for _, line := range headers {
		assert.Equal(t, LineCategoryHeader, Classify(line), "line %q", line)
	}
}

func TestClassifyItemNames(t *testing.T) {
	items := []string{
		"Grilled Chicken Breast",
		"Mütebbel",
		"Basa Fish (oven baked)",
		"Penne with Tomato Sauce",
		"Domates Soslu Penne Makarna",
		`"Sunrise Special"`,
	}
	for _, line := range items {
		assert.Equal(t, LineItemName, Classify(line), "line %q", line)
	}
}

func TestClassifyContinuations(t *testing.T) {
	continuations := []string{
		"with lemon sauce",
		"in tomato basil sauce",
		"of the day",
	}
	for _, line := range continuations {
		assert.Equal(t, LineContinuation, Classify(line), "line %q", line)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// marker outranks category and item patterns
	assert.Equal(t, LineSectionMarker, Classify("Before landing menu"))
	// category outranks item even for item-looking lines
	assert.Equal(t, LineCategoryHeader, Classify("Starters: Grilled Chicken"))
}
