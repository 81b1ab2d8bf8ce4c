package menu

import (
	"strings"

	"github.com/flightmenu/menu-ocr-service/internal/catalog"
	"github.com/flightmenu/menu-ocr-service/internal/models"
)

// Parser turns raw OCR text into structured, deduplicated menu items.
type Parser struct {
	matcher *Matcher
}

// NewParser builds the parsing pipeline over a loaded catalog.
func NewParser(cat *catalog.Catalog) *Parser {
	return &Parser{matcher: NewMatcher(cat, HeuristicDetector{})}
}

// ParseText splits OCR output into lines and parses them.
func (p *Parser) ParseText(text string) []models.MenuItem {
	return p.ParseLines(strings.Split(text, "\n"))
}

// ParseLines runs the full pipeline: line classification, candidate assembly,
// catalog matching and deduplication. Duplicates are keyed on the emitted
// item's normalized name plus its timing, so two OCR variants that resolve to
// the same catalog entry collapse into one item. The seen set resets when the
// timing flips to pre-landing: the same dish may legitimately be served in
// both sections. First occurrence wins.
func (p *Parser) ParseLines(lines []string) []models.MenuItem {
	candidates := parseCandidates(lines)

	items := []models.MenuItem{}
	seen := map[string]bool{}
	lastTiming := models.TimingRegular
	for _, cand := range candidates {
		item, ok := p.matcher.Match(cand)
		if !ok {
			continue
		}
		if item.Timing != lastTiming {
			seen = map[string]bool{}
			lastTiming = item.Timing
		}
		key := Normalize(item.Name) + "|" + string(item.Timing)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	return items
}
