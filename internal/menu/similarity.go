package menu

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// wordMatchRatio is the fraction of the shorter word list that must have a
// counterpart in the other list for TextsMatch to report a fuzzy match.
const wordMatchRatio = 0.6

// EditDistance returns the unit-cost Levenshtein distance between a and b.
func EditDistance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// Similarity scores two strings in [0,1] as 1 - distance/maxLen.
// Two empty strings are identical, hence 1.
func Similarity(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(EditDistance(a, b))/float64(maxLen)
}

// TextsMatch reports whether two texts refer to the same dish despite OCR
// noise. Normalized forms match when identical, when one contains the other,
// or when at least 60% of the shorter word list (words longer than 2 runes)
// has a counterpart in the other list, where a counterpart either contains /
// is contained by the word or sits within edit distance 2.
func TextsMatch(a, b string) bool {
	na := Normalize(a)
	nb := Normalize(b)

	if na == nb {
		return true
	}
	if na == "" || nb == "" {
		return false
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	wa := significantWords(na)
	wb := significantWords(nb)
	shorter, longer := wa, wb
	if len(wb) < len(wa) {
		shorter, longer = wb, wa
	}
	if len(shorter) == 0 {
		return false
	}

	matched := 0
	for _, w := range shorter {
		for _, other := range longer {
			if strings.Contains(other, w) || strings.Contains(w, other) || EditDistance(w, other) <= 2 {
				matched++
				break
			}
		}
	}

	return float64(matched) >= float64(len(shorter))*wordMatchRatio
}

// significantWords splits a normalized text into words longer than 2 runes.
func significantWords(normalized string) []string {
	fields := strings.Fields(normalized)
	words := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 2 {
			words = append(words, f)
		}
	}
	return words
}
