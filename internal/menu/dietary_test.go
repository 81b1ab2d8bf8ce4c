package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferDietary(t *testing.T) {
	assert.Equal(t, []string{"poultry"}, InferDietary("Grilled Chicken", ""))
	assert.Equal(t, []string{"meat"}, InferDietary("Köfte", ""))
	assert.Equal(t, []string{"meat"}, InferDietary("Et Sote", ""))
	assert.Equal(t, []string{"dairy"}, InferDietary("Cheese Plate", ""))
	assert.Equal(t, []string{"seafood", "dairy"}, InferDietary("Balık", "with cream sauce"))
	assert.Equal(t, []string{"gluten-free"}, InferDietary("Glutensiz Ekmek", ""))
}

func TestInferDietaryUsesDescription(t *testing.T) {
	assert.Contains(t, InferDietary("Chef Special", "slow cooked lamb shank"), "meat")
}

func TestInferDietaryShortKeywordsAreBounded(t *testing.T) {
	// "et" inside "vegetable" must not read as Turkish meat
	assert.Equal(t, []string{"vegetarian"}, InferDietary("Vegetable Soup", ""))
	assert.NotContains(t, InferDietary("Tereyağı", ""), "meat")
}

func TestInferDietaryNoKeywords(t *testing.T) {
	tags := InferDietary("Xyzzy Plonk 123", "")
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}
