package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, EditDistance("salata", "salata"))
	assert.Equal(t, 3, EditDistance("kitten", "sitting"))
	assert.Equal(t, 5, EditDistance("", "pilav"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 1.0, Similarity("cacik", "cacik"))
	assert.Equal(t, 0.75, Similarity("abcd", "abce"))

	pairs := [][2]string{
		{"grilled chicken", "grilld chiken"},
		{"sebze salatasi", "karidesli salata"},
		{"", "salad"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]))
	}
}

func TestTextsMatch(t *testing.T) {
	// identical after normalization
	assert.True(t, TextsMatch("Sebze Salatası", "sebze salatasi"))
	// containment
	assert.True(t, TextsMatch("Salad", "Vegetable Salad"))
	// word overlap with OCR noise within edit distance 2
	assert.True(t, TextsMatch("Grilld Chiken", "Grilled Chicken Breast"))

	// one shared word out of two is below the 60% bar
	assert.False(t, TextsMatch("Sebze Salatası", "Karidesli Salata"))
	assert.False(t, TextsMatch("grilled chicken breast", "bread and butter"))
	assert.False(t, TextsMatch("", "Salad"))
	assert.True(t, TextsMatch("", ""))
}
