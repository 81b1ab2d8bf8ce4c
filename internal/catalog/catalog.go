// Package catalog holds the bilingual reference menu the matcher scans.
//
// The catalog is loaded once at startup from an embedded JSON document and is
// read-only afterwards. Entry order follows the JSON arrays (categories in
// file order, items in array order within each category); that order is the
// tie-break contract for matching, so reordering the data file changes which
// entry wins a similarity tie.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

const (
	LangEN = "en"
	LangTR = "tr"

	// PrimaryLanguage is emitted for items whose language could not be
	// determined.
	PrimaryLanguage = LangEN
)

// SupportedLanguages lists the languages every catalog entry carries.
var SupportedLanguages = []string{LangEN, LangTR}

//go:embed data/menu.json
var menuData []byte

// Entry is one reference dish with both language sides and curated tags.
type Entry struct {
	Category    string
	EN          models.LocalizedText
	TR          models.LocalizedText
	DietaryInfo []string
}

// Catalog is the loaded, immutable reference menu.
type Catalog struct {
	entries    []Entry
	categories []string
}

type rawCategory struct {
	Category string    `json:"category"`
	Items    []rawItem `json:"items"`
}

type rawItem struct {
	EN          models.LocalizedText `json:"en"`
	TR          models.LocalizedText `json:"tr"`
	DietaryInfo []string             `json:"dietaryInfo"`
}

// New parses and validates catalog JSON. Any structural problem is an error;
// the service refuses to start on a bad catalog rather than matching against
// a partial one.
func New(data []byte) (*Catalog, error) {
	var raw []rawCategory
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := &Catalog{}
	for i, rc := range raw {
		if rc.Category == "" {
			return nil, fmt.Errorf("catalog category %d has no name", i)
		}
		c.categories = append(c.categories, rc.Category)
		for j, ri := range rc.Items {
			if ri.EN.Name == "" || ri.TR.Name == "" {
				return nil, fmt.Errorf("catalog item %d in %q is missing a localized name", j, rc.Category)
			}
			tags := ri.DietaryInfo
			if tags == nil {
				tags = []string{}
			}
			c.entries = append(c.entries, Entry{
				Category:    rc.Category,
				EN:          ri.EN,
				TR:          ri.TR,
				DietaryInfo: tags,
			})
		}
	}
	return c, nil
}

// Load builds a catalog from the embedded reference data.
func Load() (*Catalog, error) {
	return New(menuData)
}

// Entries returns all dishes in documented order. Callers must not mutate.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Categories returns the category names in file order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Default is the process-wide catalog, set by Init.
var Default *Catalog

// Init loads the embedded catalog into Default. Called once from main;
// a load failure is fatal there.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	Default = c
	return nil
}
