package menu

import (
	"regexp"
	"strings"
)

// LineKind classifies a single OCR line.
type LineKind int

const (
	// LineContinuation is the default: part of the open item's description.
	LineContinuation LineKind = iota
	// LineSectionMarker flips the parser into the pre-landing section.
	LineSectionMarker
	// LineCategoryHeader names the category for subsequent items.
	LineCategoryHeader
	// LineItemName opens a new candidate item.
	LineItemName
)

// preLandingIndicators mark the start of the pre-landing service, in both
// supported languages. Matched as substrings of the lower-cased line and of
// its normalized form (OCR often mangles the Turkish diacritics).
var preLandingIndicators = []string{
	"before landing",
	"pre-landing",
	"prior to landing",
	"inişten önce",
	"iniş öncesi",
	"inmeden önce",
}

var normalizedIndicators = func() []string {
	out := make([]string, len(preLandingIndicators))
	for i, ind := range preLandingIndicators {
		out[i] = Normalize(ind)
	}
	return out
}()

// categoryPatterns detect category headers: course names in either language,
// meal-time words, trailing colons, divider lines and generic section
// vocabulary. Ordered, but any hit wins equally.
var categoryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(appetizers?|starters?|mains?|desserts?|beverages?|sides?)`),
	regexp.MustCompile(`(?i)^(hot|cold|breakfast|lunch|dinner)`),
	regexp.MustCompile(`(?i)^(başlangıçlar?|mezeler?|ana yemekler?|tatlılar?|içecekler?|kahvaltı)`),
	regexp.MustCompile(`(?i)^(menu|menü)$`),
	regexp.MustCompile(`^[\wçğıöşüÇĞİÖŞÜ\s]{3,20}:$`),
	regexp.MustCompile(`^-{3,}$`),
	regexp.MustCompile(`(?i)section|course|selection|category|type`),
}

// itemPatterns detect lines that likely open a menu item: capitalized names,
// food-descriptor connectives, common dish nouns, parenthetical or quoted
// content, and price-like capital+digit lines.
var itemPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-ZÇĞİÖŞÜ][\wçğıöşü\s]{2,}`),
	regexp.MustCompile(`(?i)^[\wçğıöşü\s]+(with|served|and)`),
	regexp.MustCompile(`(?i)^[\wçğıöşü\s]+ ile( |$)`),
	regexp.MustCompile(`(?i)^[\wçğıöşü\s]+(chicken|fish|beef|pork|salad|soup|tavuk|balık|köfte|salata|çorba)`),
	regexp.MustCompile(`^[\wçğıöşüÇĞİÖŞÜ\s]+\(.+\)`),
	regexp.MustCompile(`(?i)^[\wçğıöşü\s]+(topped|garnished|accompanied)`),
	regexp.MustCompile(`^[A-ZÇĞİÖŞÜ].*\d+`),
	regexp.MustCompile(`^["'][\wçğıöşüÇĞİÖŞÜ\s]+["']`),
}

// Classify assigns a single OCR line to exactly one kind. The checks are an
// ordered disjunction — SectionMarker, then CategoryHeader, then ItemName —
// because the patterns overlap; first match wins. Anything else is a
// continuation of the open item.
func Classify(line string) LineKind {
	if isPreLandingMarker(line) {
		return LineSectionMarker
	}
	for _, p := range categoryPatterns {
		if p.MatchString(line) {
			return LineCategoryHeader
		}
	}
	for _, p := range itemPatterns {
		if p.MatchString(line) {
			return LineItemName
		}
	}
	return LineContinuation
}

func isPreLandingMarker(line string) bool {
	lower := strings.ToLower(line)
	normalized := Normalize(line)
	for i, ind := range preLandingIndicators {
		if strings.Contains(lower, ind) || strings.Contains(normalized, normalizedIndicators[i]) {
			return true
		}
	}
	return false
}
