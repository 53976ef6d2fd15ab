package classify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/northvac/taxon/internal/model"
)

// ShouldSkip decides whether a product is a placeholder listing that
// should never reach the classifier: a positive price at or below the
// configured threshold, or a title matching a configured placeholder
// pattern. Returns the skip reason when skipping.
func (c *Classifier) ShouldSkip(product model.Product) (bool, string) {
	patterns := c.rules.Settings.SkipPatterns

	if price, err := strconv.ParseFloat(strings.TrimSpace(product.Price), 64); err == nil {
		if price > 0 && price <= patterns.MaxPriceThreshold {
			return true, fmt.Sprintf("price $%.2f at or below threshold $%.2f", price, patterns.MaxPriceThreshold)
		}
	}

	combinedTitle := strings.ToLower(product.TitleEN + " " + product.TitleFR)

	for _, pattern := range patterns.TitlePatternsEN {
		if pattern != "" && strings.Contains(combinedTitle, strings.ToLower(pattern)) {
			return true, fmt.Sprintf("matched skip pattern %q", pattern)
		}
	}
	for _, pattern := range patterns.TitlePatternsFR {
		if pattern != "" && strings.Contains(combinedTitle, strings.ToLower(pattern)) {
			return true, fmt.Sprintf("matched skip pattern (fr) %q", pattern)
		}
	}

	return false, ""
}
