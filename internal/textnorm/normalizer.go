// Package textnorm implements the text normalization pipeline and keyword
// matching used by the classification engine. Normalization lowercases,
// strips punctuation while preserving a configurable accented-letter
// range, removes SKU/model-number noise tokens, and collapses whitespace.
package textnorm

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultAccentRange covers the Latin-1 accented letters (à through ÿ),
// which is enough for the EN/FR vendor feeds.
const (
	DefaultAccentLow  = 'à'
	DefaultAccentHigh = 'ÿ'
)

// Normalizer holds the precompiled patterns for one normalization
// configuration. It is stateless after construction and safe for
// concurrent use.
type Normalizer struct {
	punct     *regexp.Regexp
	skuPrefix *regexp.Regexp
	skuDigits *regexp.Regexp
	skuSuffix *regexp.Regexp
	spaces    *regexp.Regexp
}

// NewNormalizer returns a normalizer preserving the default accented range.
func NewNormalizer() *Normalizer {
	n, err := NewNormalizerWithRange(DefaultAccentLow, DefaultAccentHigh)
	if err != nil {
		// The default range is static and always compiles.
		panic(err)
	}
	return n
}

// NewNormalizerWithRange returns a normalizer that preserves the given
// inclusive rune range in addition to ASCII word characters.
func NewNormalizerWithRange(low, high rune) (*Normalizer, error) {
	if low > high {
		return nil, fmt.Errorf("invalid accent range %q-%q", low, high)
	}
	punct, err := regexp.Compile(fmt.Sprintf(`[^\w\x{%04X}-\x{%04X}\s]`, low, high))
	if err != nil {
		return nil, fmt.Errorf("compiling punctuation pattern: %w", err)
	}

	// The SKU patterns match whole space-delimited tokens. By the time
	// they run, punctuation has been folded to spaces and whitespace
	// collapsed, so token edges are the only word boundaries left; an
	// accented letter inside a token is part of the token, never a
	// boundary. Go's \b is ASCII-only and would split "café2000" between
	// é and 2, so the patterns are anchored instead.
	accentedWord := fmt.Sprintf(`[\w\x{%04X}-\x{%04X}]`, low, high)

	return &Normalizer{
		punct: punct,
		// Vendor code style tokens: simpli-b224-0500, jv_b100
		skuPrefix: regexp.MustCompile(`^[a-z]{1,10}[_-][a-z0-9\-_]{2,}$`),
		// Short alpha prefix plus digit run: vc5000, jv202, 600
		skuDigits: regexp.MustCompile(`^[a-z]{0,4}\d{2,}$`),
		// Digit run plus word fragment: 600-pn
		skuSuffix: regexp.MustCompile(`^\d{2,}[-_]` + accentedWord + `+$`),
		spaces:    regexp.MustCompile(`\s+`),
	}, nil
}

// Normalize runs the full cleanup pipeline. Empty input yields an empty
// string, and the operation is idempotent: normalizing already-normalized
// text returns it unchanged.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := norm.NFC.String(text)
	t = strings.ToLower(t)
	t = n.punct.ReplaceAllString(t, " ")
	t = n.collapse(t)
	return n.stripSKUTokens(t)
}

// stripSKUTokens drops every token that is entirely SKU/model-number
// noise, keeping the rest in order.
func (n *Normalizer) stripSKUTokens(t string) string {
	if t == "" {
		return ""
	}
	tokens := strings.Fields(t)
	kept := tokens[:0]
	for _, token := range tokens {
		if n.skuPrefix.MatchString(token) ||
			n.skuDigits.MatchString(token) ||
			n.skuSuffix.MatchString(token) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func (n *Normalizer) collapse(t string) string {
	return strings.TrimSpace(n.spaces.ReplaceAllString(t, " "))
}
