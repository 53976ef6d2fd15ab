package model

import "strings"

// Category is one taxonomy leaf with its own keyword and exclusion lists.
// Categories are loaded once per run and never mutated afterwards.
type Category struct {
	Handle       string
	ProductType  string
	Title        string
	Priority     int
	MinProducts  int
	KeywordsEN   []string
	KeywordsFR   []string
	ExclusionsEN []string
	ExclusionsFR []string
}

// Keywords returns the inclusion keywords for the given language,
// preserving their declared order.
func (c Category) Keywords(lang Language) []string {
	if lang == LanguageFR {
		return c.KeywordsFR
	}
	return c.KeywordsEN
}

// Exclusions returns the disqualifying keywords for the given language.
func (c Category) Exclusions(lang Language) []string {
	if lang == LanguageFR {
		return c.ExclusionsFR
	}
	return c.ExclusionsEN
}

// DisplayTitle returns the declared title, falling back to the last
// segment of the product type path.
func (c Category) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	if i := strings.LastIndex(c.ProductType, ">"); i >= 0 {
		return strings.TrimSpace(c.ProductType[i+1:])
	}
	return c.ProductType
}
