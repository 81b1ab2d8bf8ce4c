package menu

import (
	"github.com/flightmenu/menu-ocr-service/internal/catalog"
	"github.com/flightmenu/menu-ocr-service/internal/models"
)

// Matcher resolves raw candidate items against the reference catalog.
type Matcher struct {
	cat      *catalog.Catalog
	detector LanguageDetector
}

// NewMatcher builds a matcher over a loaded catalog.
func NewMatcher(cat *catalog.Catalog, detector LanguageDetector) *Matcher {
	if detector == nil {
		detector = HeuristicDetector{}
	}
	return &Matcher{cat: cat, detector: detector}
}

// Match resolves one candidate. A candidate whose normalized name is empty is
// pure OCR noise and dropped (ok=false). A catalog hit emits the full
// bilingual entry with the candidate's detected language picking the primary
// side; a miss passes the raw text through with inferred dietary tags and no
// category.
func (m *Matcher) Match(cand models.RawCandidateItem) (models.MenuItem, bool) {
	norm := Normalize(cand.Name)
	if norm == "" {
		return models.MenuItem{}, false
	}

	var best *catalog.Entry
	bestScore := -1.0
	for i, entry := range m.cat.Entries() {
		if !TextsMatch(cand.Name, entry.EN.Name) && !TextsMatch(cand.Name, entry.TR.Name) {
			continue
		}
		score := Similarity(norm, Normalize(entry.EN.Name))
		if s := Similarity(norm, Normalize(entry.TR.Name)); s > score {
			score = s
		}
		// strict > keeps the first entry in catalog order on a tie
		if score > bestScore {
			bestScore = score
			best = &m.cat.Entries()[i]
		}
	}

	lang := m.detector.Detect(cand.Name)
	if lang == LangUndetermined {
		lang = catalog.PrimaryLanguage
	}

	if best == nil {
		return models.MenuItem{
			Name:        cand.Name,
			Description: cand.Description,
			DietaryInfo: InferDietary(cand.Name, cand.Description),
			Languages:   []string{lang},
			Timing:      cand.Timing,
		}, true
	}

	src := best.EN
	if lang == catalog.LangTR {
		src = best.TR
	}
	tags := best.DietaryInfo
	if len(tags) == 0 {
		tags = InferDietary(best.EN.Name+" "+best.TR.Name, best.EN.Description+" "+best.TR.Description)
	}

	return models.MenuItem{
		Name:        src.Name,
		Description: src.Description,
		Category:    best.Category,
		Translations: map[string]models.LocalizedText{
			catalog.LangEN: best.EN,
			catalog.LangTR: best.TR,
		},
		Languages:   append([]string{}, catalog.SupportedLanguages...),
		DietaryInfo: tags,
		Timing:      cand.Timing,
	}, true
}
