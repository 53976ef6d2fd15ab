// Package classify implements the tiered product classification engine:
// direct source-category mapping, keyword matching with exclusions, a
// global parts fallback, and the terminal needs-review bucket, followed
// by a population-aware batch demotion pass.
package classify

import (
	"fmt"
	"strings"

	"github.com/northvac/taxon/internal/model"
	"github.com/northvac/taxon/internal/textnorm"
)

// Classifier evaluates one product at a time against an immutable rule
// set. It holds no per-call state and is safe for concurrent use.
type Classifier struct {
	rules   *model.RuleSet
	matcher *textnorm.Matcher
}

// NewClassifier creates a classifier over the given rule set.
func NewClassifier(rs *model.RuleSet) *Classifier {
	return &Classifier{
		rules:   rs,
		matcher: textnorm.NewMatcher(textnorm.NewNormalizer()),
	}
}

// Classify runs the tiered evaluation for one product. Every input
// yields a result; missing or empty fields degrade to the needs-review
// bucket instead of failing.
func (c *Classifier) Classify(product model.Product, lang model.Language) model.Result {
	sourceCode := strings.TrimSpace(product.SourceCategory)

	// Tier 1: direct source-category mapping. A non-null mapping always
	// outranks keyword matching; a null mapping means the code is known
	// but generic and falls through to the text tiers.
	if sourceCode != "" {
		if mapping, known := c.rules.Mappings[sourceCode]; known && mapping != nil {
			return model.Result{
				ProductType:    mapping.ProductType,
				Handle:         mapping.Handle,
				Confidence:     mapping.Confidence,
				Source:         model.SourceDirectMapping,
				SourceCategory: sourceCode,
				Priority:       model.DirectMappingPriority,
				Reason:         fmt.Sprintf("mapped from source category %q", sourceCode),
			}
		}
	}

	title := product.Title(lang)
	description := product.Description(lang)
	rawText := strings.TrimSpace(title + " " + description + " " + product.SKU)
	if rawText == "" {
		return model.NeedsReviewResult("no title or description available", sourceCode)
	}

	if c.rules.Settings.FallbackFirst {
		if result, ok := c.globalFallback(rawText, sourceCode); ok {
			return result
		}
	}

	if result, ok := c.keywordTier(rawText, title, description, sourceCode, lang); ok {
		return result
	}

	if !c.rules.Settings.FallbackFirst {
		if result, ok := c.globalFallback(rawText, sourceCode); ok {
			return result
		}
	}

	return model.NeedsReviewResult("no keyword matches found", sourceCode)
}

// keywordTier walks the categories in priority order and returns the
// first one whose inclusion keywords match and whose exclusions do not.
func (c *Classifier) keywordTier(rawText, title, description, sourceCode string, lang model.Language) (model.Result, bool) {
	cutoff := c.rules.Settings.FallbackPriorityCutoff

	for _, category := range c.rules.Categories {
		// Fallback-tier categories are only reachable via direct mapping
		// or the global fallback.
		if category.Priority <= cutoff {
			continue
		}

		if excluded, _ := c.matcher.HasExclusion(rawText, category.Exclusions(lang)); excluded {
			continue
		}

		matched, keyword := c.matcher.Match(rawText, category.Keywords(lang))
		if !matched {
			continue
		}

		return model.Result{
			ProductType:    category.ProductType,
			Handle:         category.Handle,
			Confidence:     keywordConfidence(keyword, title, description),
			MatchedKeyword: keyword,
			Source:         model.SourceKeywordMatch,
			SourceCategory: sourceCode,
			Priority:       category.Priority,
			Reason:         fmt.Sprintf("keyword %q matched (priority %d)", keyword, category.Priority),
		}, true
	}

	return model.Result{}, false
}

func (c *Classifier) globalFallback(rawText, sourceCode string) (model.Result, bool) {
	matched, keyword := c.matcher.Match(rawText, c.rules.Settings.GlobalPartKeywords)
	if !matched {
		return model.Result{}, false
	}
	return model.Result{
		ProductType:    model.GeneralPartsProductType,
		Handle:         model.GeneralPartsHandle,
		Confidence:     model.ConfidenceLow,
		MatchedKeyword: keyword,
		Source:         model.SourceGlobalFallback,
		SourceCategory: sourceCode,
		Priority:       c.rules.Settings.FallbackPriorityCutoff,
		Reason:         fmt.Sprintf("global part keyword %q matched (fallback)", keyword),
	}, true
}

// keywordConfidence scores a keyword match by where it appears in the
// raw, non-normalized text: the title is a stronger signal than the
// description.
func keywordConfidence(keyword, title, description string) model.Confidence {
	k := strings.ToLower(strings.TrimSpace(keyword))
	switch {
	case strings.Contains(strings.ToLower(title), k):
		return model.ConfidenceHigh
	case strings.Contains(strings.ToLower(description), k):
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}
