package ai

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

// Extractor turns OCR text or a menu photo into structured menu items by
// prompting an AI provider. It is the alternative to the heuristic text
// pipeline: vision models read the bilingual layout directly.
type Extractor struct {
	provider Provider
}

// NewExtractor creates a new AI extractor
func NewExtractor(provider Provider) *Extractor {
	return &Extractor{
		provider: provider,
	}
}

// Extract processes OCR text or an image and returns structured menu items
// plus the AI call duration in seconds.
func (e *Extractor) Extract(ocrText string, imageBase64 string) ([]models.MenuItem, float64, error) {
	startTime := time.Now()

	isVisionMode := imageBase64 != "" && strings.TrimSpace(ocrText) == ""

	var prompt string
	if isVisionMode {
		prompt = e.buildPromptVision()
	} else {
		prompt = e.buildPromptText(ocrText)
	}

	response, err := e.provider.ExtractData(prompt, imageBase64)
	if err != nil {
		return nil, 0, fmt.Errorf("AI extraction failed: %w", err)
	}

	duration := time.Since(startTime).Seconds()
	log.Printf("[AI Response] Vision mode: %v, Response length: %d", isVisionMode, len(response))

	items, err := e.parseResponse(response)
	if err != nil {
		return nil, duration, fmt.Errorf("failed to parse AI response: %w", err)
	}

	return items, duration, nil
}

const responseSchema = `{
  "menuItems": [
    {
      "category": "Salads",
      "items": [
        {
          "en": {"name": "Vegetable Salad", "description": "Fresh greens with olive oil"},
          "tr": {"name": "Sebze Salatası", "description": "Zeytinyağlı mevsim yeşillikleri"},
          "dietaryInfo": ["vegetarian"],
          "timing": "regular"
        }
      ]
    }
  ]
}`

// buildPromptVision creates the prompt for direct image analysis.
func (e *Extractor) buildPromptVision() string {
	return `You are an expert reader of airline in-flight menus. The photo shows a printed flight menu, usually bilingual Turkish/English, sometimes photographed at an angle under cabin lighting.

## READING INSTRUCTIONS
1. Read the ENTIRE menu card: headers, dish names, descriptions, footnotes.
2. Menus list the same dish in both languages, either side by side or in two columns. Pair them up.
3. Watch for a "Before landing" / "İnişten önce" section: every dish after that marker has "timing": "pre-landing"; everything before it is "regular".
4. Category headers are short lines like "Starters", "Main Courses", "Desserts", "Ana Yemekler", "Tatlılar".
5. Description lines continue the dish above them ("with lemon sauce", "domates soslu").

## RULES
- NEVER invent dishes that are not on the menu.
- If only one language is printed, translate the name and description to the other language yourself.
- dietaryInfo tags, when derivable from the dish: vegetarian, vegan, seafood, poultry, meat, dairy, gluten-free, halal. Empty array if unknown.
- Keep diacritics intact in Turkish text (ç, ğ, ı, ö, ş, ü).

Return ONLY valid JSON (no markdown, no comments) in exactly this shape:
` + responseSchema + `

NOW READ THE MENU IMAGE CAREFULLY AND EXTRACT EVERY DISH.`
}

// buildPromptText creates the prompt for OCR text mode.
func (e *Extractor) buildPromptText(ocrText string) string {
	return fmt.Sprintf(`You are an expert reader of airline in-flight menus. Below is noisy OCR text from a printed flight menu, usually bilingual Turkish/English. OCR often mangles Turkish diacritics (ğ read as g, ı as i) - repair them from context.

## RULES
- Group lines into dishes: a dish name followed by description lines.
- Category headers: "Starters", "Main Courses", "Desserts", "Ana Yemekler", "Tatlılar" and similar.
- A "Before landing" / "İnişten önce" line starts the pre-landing section: dishes after it get "timing": "pre-landing", dishes before it "regular".
- Pair Turkish and English renditions of the same dish into one entry; translate yourself if only one language is present.
- dietaryInfo tags, when derivable: vegetarian, vegan, seafood, poultry, meat, dairy, gluten-free, halal. Empty array if unknown.
- NEVER invent dishes that are not in the text.

Return ONLY valid JSON (no markdown, no comments) in exactly this shape:
%s

Menu text:
%s`, responseSchema, ocrText)
}

type aiMenuResponse struct {
	MenuItems []struct {
		Category string `json:"category"`
		Items    []struct {
			EN          models.LocalizedText `json:"en"`
			TR          models.LocalizedText `json:"tr"`
			DietaryInfo []string             `json:"dietaryInfo"`
			Timing      string               `json:"timing"`
		} `json:"items"`
	} `json:"menuItems"`
}

// parseResponse converts the AI JSON response into menu items. English is
// emitted as the primary side, with the full bilingual pair in Translations.
func (e *Extractor) parseResponse(response string) ([]models.MenuItem, error) {
	// Clean response (remove markdown code blocks if present)
	cleaned := strings.TrimSpace(response)
	backticks := string([]byte{96, 96, 96})
	cleaned = strings.ReplaceAll(cleaned, backticks+"json", "")
	cleaned = strings.ReplaceAll(cleaned, backticks, "")
	cleaned = strings.TrimSpace(cleaned)

	var raw aiMenuResponse
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w - Response: %s", err, cleaned)
	}

	items := []models.MenuItem{}
	for _, group := range raw.MenuItems {
		for _, it := range group.Items {
			if it.EN.Name == "" && it.TR.Name == "" {
				continue
			}

			timing := models.TimingRegular
			if it.Timing == string(models.TimingPreLanding) {
				timing = models.TimingPreLanding
			}

			tags := it.DietaryInfo
			if tags == nil {
				tags = []string{}
			}

			src := it.EN
			if src.Name == "" {
				src = it.TR
			}

			items = append(items, models.MenuItem{
				Name:        src.Name,
				Description: src.Description,
				Category:    group.Category,
				Translations: map[string]models.LocalizedText{
					"en": it.EN,
					"tr": it.TR,
				},
				Languages:   []string{"en", "tr"},
				DietaryInfo: tags,
				Timing:      timing,
			})
		}
	}

	return items, nil
}
