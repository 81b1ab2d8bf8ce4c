package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

type stubProvider struct {
	response string
}

func (s stubProvider) ExtractData(prompt, imageBase64 string) (string, error) {
	return s.response, nil
}

func (s stubProvider) Name() string { return "stub" }

const sampleResponse = "```json\n" + `{
  "menuItems": [
    {
      "category": "Main Courses",
      "items": [
        {
          "en": {"name": "Basa Fish", "description": "With tomato and herbs"},
          "tr": {"name": "Basa Balığı", "description": "Domates ve baharatlarla"},
          "dietaryInfo": ["seafood"],
          "timing": "regular"
        }
      ]
    },
    {
      "category": "Breakfast",
      "items": [
        {
          "en": {"name": "Scrambled Eggs", "description": ""},
          "tr": {"name": "Çırpılmış Yumurta", "description": ""},
          "timing": "pre-landing"
        }
      ]
    }
  ]
}` + "\n```"

func TestExtractParsesFencedResponse(t *testing.T) {
	e := NewExtractor(stubProvider{response: sampleResponse})

	items, _, err := e.Extract("some ocr text", "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Basa Fish", items[0].Name)
	assert.Equal(t, "Main Courses", items[0].Category)
	assert.Equal(t, "Basa Balığı", items[0].Translations["tr"].Name)
	assert.Equal(t, []string{"seafood"}, items[0].DietaryInfo)
	assert.Equal(t, models.TimingRegular, items[0].Timing)

	assert.Equal(t, models.TimingPreLanding, items[1].Timing)
	assert.NotNil(t, items[1].DietaryInfo)
	assert.Empty(t, items[1].DietaryInfo)
}

func TestExtractRejectsMalformedJSON(t *testing.T) {
	e := NewExtractor(stubProvider{response: "sorry, I cannot read this menu"})

	_, _, err := e.Extract("text", "")
	assert.Error(t, err)
}

func TestExtractSkipsNamelessEntries(t *testing.T) {
	e := NewExtractor(stubProvider{response: `{
		"menuItems": [
			{"category": "Desserts", "items": [
				{"en": {"name": ""}, "tr": {"name": ""}},
				{"en": {"name": "Mango Mousse"}, "tr": {"name": "Mango Mus"}}
			]}
		]
	}`})

	items, _, err := e.Extract("text", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mango Mousse", items[0].Name)
}
