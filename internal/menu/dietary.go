package menu

import (
	"regexp"
	"strings"
)

// dietaryPatterns maps each dietary tag to a compiled keyword pattern covering
// both menu languages. Keywords short enough to be substrings of unrelated
// words ("et") are boundary-anchored.
var dietaryPatterns = []struct {
	tag     string
	pattern *regexp.Regexp
}{
	{"vegetarian", regexp.MustCompile(`vegetable|sebze|salad|salata|vejetaryen|vegetarian`)},
	{"vegan", regexp.MustCompile(`vegan|vejeteryan`)},
	{"seafood", regexp.MustCompile(`fish|balık|balik|basa|seafood|deniz`)},
	{"poultry", regexp.MustCompile(`chicken|tavuk|shrimp|karides|hindi`)},
	{"meat", regexp.MustCompile(`beef|lamb|pork|steak|dana|kuzu|köfte|kofte|(?:^|[^a-zçğıöşü])et(?:[^a-zçğıöşü]|$)`)},
	{"dairy", regexp.MustCompile(`cheese|peynir|butter|tereyağı|tereyagi|yoğurt|yogurt|milk|süt|krema|cream`)},
	{"gluten-free", regexp.MustCompile(`gluten[ -]?free|glutensiz`)},
	{"halal", regexp.MustCompile(`halal|helal`)},
}

// InferDietary scans a dish name and description for dietary keywords and
// returns the matching tags. Used for items the catalog does not know; a dish
// with no recognizable keyword gets an empty (non-nil) tag list.
func InferDietary(name, description string) []string {
	text := strings.ToLower(name + " " + description)
	tags := []string{}
	for _, dp := range dietaryPatterns {
		if dp.pattern.MatchString(text) {
			tags = append(tags, dp.tag)
		}
	}
	return tags
}
