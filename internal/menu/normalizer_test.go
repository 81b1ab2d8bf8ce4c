package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFoldsTurkishLetters(t *testing.T) {
	assert.Equal(t, "cgiosu cgiosu", Normalize("ÇĞİÖŞÜ çğıöşü"))
	assert.Equal(t, "sebze salatasi", Normalize("Sebze Salatası"))
	assert.Equal(t, "cirpilmis yumurta", Normalize("Çırpılmış Yumurta"))
}

func TestNormalizeRepairsCombiningMarks(t *testing.T) {
	// OCR sometimes emits the diacritic as a separate combining codepoint
	assert.Equal(t, "yogurt", Normalize("Yoğurt"))
	assert.Equal(t, "tereyagi", Normalize("Tereyağı"))
	assert.Equal(t, "corba", Normalize("Çorba"))
}

func TestNormalizeCollapsesWhitespaceAndNoise(t *testing.T) {
	assert.Equal(t, "grilled chicken breast", Normalize("  Grilled   Chicken\tBreast  "))
	assert.Equal(t, "cacik", Normalize("Cacık!"))
	assert.Equal(t, "basa fish 2", Normalize("Basa Fish (2)"))
	assert.Equal(t, "", Normalize("***???"))
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Sebze Salatası",
		"İnişten Önce",
		"  Grilled   Chicken  ",
		"Yoğurt & Peynir",
		"Domates Soslu Penne Makarna",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
