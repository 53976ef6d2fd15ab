// Package collections plans storefront smart-collection definitions from
// a rule set and the classified product population. The plan is a local
// artifact: each definition carries the automated rule that would bind a
// collection to its product type.
package collections

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/northvac/taxon/internal/model"
)

var handleSanitizeRe = regexp.MustCompile(`[^a-z0-9\-_]+`)

// Rule columns and relations for automated collections.
const (
	RuleColumnProductType = "PRODUCT_TYPE"
	RuleRelationEquals    = "EQUALS"
)

// Rule is a single membership condition on an automated collection.
type Rule struct {
	Column    string `json:"column"`
	Relation  string `json:"relation"`
	Condition string `json:"condition"`
}

// Definition describes one collection to be created.
type Definition struct {
	Handle          string `json:"handle"`
	Title           string `json:"title"`
	ProductType     string `json:"product_type"`
	DescriptionHTML string `json:"description_html"`
	Rule            Rule   `json:"rule"`
	Publish         bool   `json:"publish"`
	ProductCount    int    `json:"product_count"`
}

// Summary reports what the planner kept and dropped.
type Summary struct {
	Planned          int
	SkippedFallback  int
	SkippedThreshold int
}

// Plan builds collection definitions for every category whose product
// population meets its minimum. Fallback-tier categories never get
// collections of their own.
func Plan(rs *model.RuleSet, counts map[string]int, publish bool) ([]Definition, Summary) {
	var defs []Definition
	var sum Summary

	for _, cat := range rs.Categories {
		if cat.Priority <= rs.Settings.FallbackPriorityCutoff {
			sum.SkippedFallback++
			continue
		}

		count := counts[cat.ProductType]
		min := cat.MinProducts
		if min <= 0 {
			min = 1
		}
		if count < min {
			sum.SkippedThreshold++
			slog.Debug("collection below threshold",
				"product_type", cat.ProductType,
				"count", count,
				"min_products", min)
			continue
		}

		defs = append(defs, Definition{
			Handle:          SanitizeHandle(cat.Handle),
			Title:           cat.DisplayTitle(),
			ProductType:     cat.ProductType,
			DescriptionHTML: describeCollection(cat),
			Rule: Rule{
				Column:    RuleColumnProductType,
				Relation:  RuleRelationEquals,
				Condition: cat.ProductType,
			},
			Publish:      publish,
			ProductCount: count,
		})
	}

	sum.Planned = len(defs)
	slog.Info("collection plan built",
		"planned", sum.Planned,
		"skipped_fallback", sum.SkippedFallback,
		"skipped_threshold", sum.SkippedThreshold)
	return defs, sum
}

// SanitizeHandle converts free text into a storefront-safe handle slug
// of at most 80 characters. Rule-set handles are author-supplied, so
// the plan never trusts them verbatim.
func SanitizeHandle(s string) string {
	s = handleSanitizeRe.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if len(s) > 80 {
		s = s[:80]
	}
	return s
}

// describeCollection builds the storefront blurb from the taxonomy path.
func describeCollection(cat model.Category) string {
	parts := strings.Split(cat.ProductType, " > ")
	if len(parts) > 1 {
		leaf := strings.ToLower(parts[len(parts)-1])
		return fmt.Sprintf("<p>Browse our selection of %s.</p>", leaf)
	}
	return fmt.Sprintf("<p>All products in the %s category.</p>", cat.DisplayTitle())
}
