package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

// Assistant answers passenger questions about a parsed menu. The menu items
// are serialized into the prompt as context; the assistant never invents
// dishes that are not on the menu.
type Assistant struct {
	provider Provider
}

// NewAssistant creates a menu chat assistant
func NewAssistant(provider Provider) *Assistant {
	return &Assistant{
		provider: provider,
	}
}

// Ask answers a free-form question about the given menu items.
func (a *Assistant) Ask(question string, items []models.MenuItem) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("question is empty")
	}

	menuJSON, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize menu: %w", err)
	}

	prompt := fmt.Sprintf(`You are a helpful cabin-crew assistant answering a passenger's question about the in-flight menu below. The menu is bilingual (English and Turkish); answer in the language of the question.

## RULES
- Only talk about dishes present in the menu JSON. Never invent dishes.
- Use the dietaryInfo tags when asked about vegetarian, seafood, dairy or similar restrictions; if a dish has no tags, say you are not certain.
- "timing": "pre-landing" dishes are served before landing, "regular" during the main service.
- Keep answers short and friendly.

Menu:
%s

Passenger's question: %s`, string(menuJSON), question)

	answer, err := a.provider.ExtractData(prompt, "")
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}

	return strings.TrimSpace(answer), nil
}
