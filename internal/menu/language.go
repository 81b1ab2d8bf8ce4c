package menu

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// LangUndetermined is returned when neither heuristic can place the text.
const LangUndetermined = "und"

// LanguageDetector identifies the language of a short menu text. Returns the
// ISO 639-1 code ("tr", "en") or LangUndetermined.
type LanguageDetector interface {
	Detect(text string) string
}

// HeuristicDetector is the default detector: any Turkish-specific letter is
// decisive (statistical detection is unreliable on two-word dish names),
// otherwise whatlanggo gets a vote.
type HeuristicDetector struct{}

const turkishLetters = "çğıöşüÇĞİÖŞÜ"

func (HeuristicDetector) Detect(text string) string {
	if strings.ContainsAny(text, turkishLetters) {
		return "tr"
	}
	switch whatlanggo.Detect(text).Lang {
	case whatlanggo.Tur:
		return "tr"
	case whatlanggo.Eng:
		return "en"
	}
	return LangUndetermined
}
