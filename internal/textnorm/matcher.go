package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matcher evaluates ordered keyword lists against free text. Keyword
// order is preserved from the rule set: the first matching keyword wins.
type Matcher struct {
	norm *Normalizer
}

// NewMatcher creates a matcher that normalizes text with the given
// normalizer before every comparison.
func NewMatcher(n *Normalizer) *Matcher {
	return &Matcher{norm: n}
}

// Match reports whether any keyword matches the text, and which one.
// Multi-word keywords match as contained phrases; single words must sit
// on token boundaries. Comparison is case-insensitive and empty keyword
// entries are skipped.
func (m *Matcher) Match(text string, keywords []string) (bool, string) {
	if text == "" || len(keywords) == 0 {
		return false, ""
	}

	normalized := m.norm.Normalize(text)

	for _, keyword := range keywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k == "" {
			continue
		}
		if strings.Contains(k, " ") {
			if strings.Contains(normalized, k) {
				return true, keyword
			}
		} else if containsWord(normalized, k) {
			return true, keyword
		}
	}

	return false, ""
}

// HasExclusion is Match applied to a category's exclusion list. A nil or
// empty exclusion list never matches.
func (m *Matcher) HasExclusion(text string, exclusions []string) (bool, string) {
	if len(exclusions) == 0 {
		return false, ""
	}
	return m.Match(text, exclusions)
}

// containsWord reports whether word occurs in text on word boundaries.
func containsWord(text, word string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)
		if boundaryBefore(text, i) && boundaryAfter(text, end) {
			return true
		}
		start = i + 1
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
