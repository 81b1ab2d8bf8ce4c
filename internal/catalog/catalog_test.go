package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, c.Entries())

	for _, e := range c.Entries() {
		assert.NotEmpty(t, e.Category)
		assert.NotEmpty(t, e.EN.Name)
		assert.NotEmpty(t, e.TR.Name)
		assert.NotNil(t, e.DietaryInfo)
	}
}

func TestEntriesKeepDocumentOrder(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	// order is a documented contract: it decides similarity tie-breaks
	assert.Equal(t, "Salads", c.Categories()[0])
	assert.Equal(t, "Vegetable Salad", c.Entries()[0].EN.Name)
}

func TestNewRejectsMalformedData(t *testing.T) {
	cases := map[string]string{
		"invalid json":   `{not json`,
		"empty catalog":  `[]`,
		"nameless cat":   `[{"category": "", "items": []}]`,
		"missing tr":     `[{"category": "Salads", "items": [{"en": {"name": "Salad"}}]}]`,
	}
	for name, data := range cases {
		_, err := New([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestInitSetsDefault(t *testing.T) {
	require.NoError(t, Init())
	assert.NotNil(t, Default)
}
