package classify

import (
	"fmt"
	"log/slog"

	"github.com/northvac/taxon/internal/model"
)

// Demote reclassifies every product whose category ended up below its
// minimum population. It is a function of the entire batch: counts are
// taken across all results at once, so adding a product to a demoted
// batch requires re-running it. The input slice is not modified.
func Demote(rs *model.RuleSet, batch []Classified) []Classified {
	counts := make(map[string]int, len(batch))
	for _, item := range batch {
		if item.Result.NeedsReview() {
			continue
		}
		counts[item.Result.ProductType]++
	}

	out := make([]Classified, len(batch))
	copy(out, batch)

	demoted := 0
	for i, item := range out {
		if item.Result.NeedsReview() {
			continue
		}
		productType := item.Result.ProductType
		required := rs.MinProducts(productType)
		if counts[productType] >= required {
			continue
		}
		reason := fmt.Sprintf("category %q has %d products, minimum is %d",
			productType, counts[productType], required)
		out[i].Result = model.NeedsReviewResult(reason, item.Result.SourceCategory)
		demoted++
	}

	if demoted > 0 {
		slog.Info("Demoted under-populated categories", "products", demoted)
	}

	return out
}
