package menu

import (
	"strings"
	"unicode"
)

// combiningFixes repairs OCR output where a Turkish diacritic was emitted as
// a separate combining codepoint next to its base letter (e.g. "g" + U+0306
// instead of "ğ"). Applied after lower-casing, before the allow-list
// strip. The first pair also covers the dotted-i artifact that stdlib
// lower-casing produces for the Turkish capital İ.
var combiningFixes = strings.NewReplacer(
	"i̇", "i",
	"ç", "ç",
	"ğ", "ğ",
	"ö", "ö",
	"ş", "ş",
	"ü", "ü",
)

// foldTable maps each Turkish accented letter to its closest unaccented
// Latin equivalent. One-to-one by contract.
var foldTable = map[rune]rune{
	'ç': 'c',
	'ğ': 'g',
	'ı': 'i',
	'ö': 'o',
	'ş': 's',
	'ü': 'u',
}

// Normalize folds a menu text fragment into a comparable ASCII form:
// lower-cased, stripped to letters/digits/whitespace (Turkish accented
// letters retained until the final fold), whitespace collapsed, then each
// accented letter folded via foldTable. Idempotent and side-effect free.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	lower = combiningFixes.Replace(lower)

	var b strings.Builder
	b.Grow(len(lower))
	space := true // swallow leading whitespace
	for _, r := range lower {
		switch {
		case unicode.IsSpace(r):
			if !space {
				b.WriteRune(' ')
				space = true
			}
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			space = false
		default:
			if folded, ok := foldTable[r]; ok {
				b.WriteRune(folded)
				space = false
			}
			// anything else is OCR noise, dropped
		}
	}

	return strings.TrimRight(b.String(), " ")
}
