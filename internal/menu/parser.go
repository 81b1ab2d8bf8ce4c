package menu

import (
	"strings"
	"unicode/utf8"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

// DefaultCategory is assigned to items that appear before any category header.
const DefaultCategory = "Main Course"

// parseCandidates runs the line state machine over raw OCR lines and returns
// candidate items in reading order. Lines shorter than 4 characters after
// trimming are OCR debris and skipped. The pre-landing marker flushes the open
// item first, then flips the timing; the menu layout guarantees at most one
// regular → pre-landing transition, so the timing never flips back.
func parseCandidates(lines []string) []models.RawCandidateItem {
	var items []models.RawCandidateItem
	var current *models.RawCandidateItem
	category := DefaultCategory
	timing := models.TimingRegular

	flush := func() {
		if current != nil {
			items = append(items, *current)
			current = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if utf8.RuneCountInString(line) < 4 {
			continue
		}

		switch Classify(line) {
		case LineSectionMarker:
			flush()
			timing = models.TimingPreLanding
		case LineCategoryHeader:
			flush()
			category = strings.TrimSuffix(line, ":")
		case LineItemName:
			flush()
			current = &models.RawCandidateItem{
				Name:     line,
				Category: category,
				Timing:   timing,
			}
		case LineContinuation:
			if current != nil && utf8.RuneCountInString(line) > 2 {
				if current.Description != "" {
					current.Description += " "
				}
				current.Description += line
			}
		}
	}

	flush()
	return items
}
