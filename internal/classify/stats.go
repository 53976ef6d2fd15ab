package classify

import "github.com/northvac/taxon/internal/model"

// Stats summarizes one batch of classification results. It is a pure
// fold over the results and carries no decision logic.
type Stats struct {
	ByCategory         map[string]int
	ByConfidence       map[model.Confidence]int
	BySource           map[model.Source]int
	Total              int
	NeedsReview        int
	NeedsReviewPercent float64
}

// Summarize aggregates counts by category, confidence, and source.
func Summarize(batch []Classified) Stats {
	stats := Stats{
		Total:        len(batch),
		ByCategory:   make(map[string]int),
		ByConfidence: make(map[model.Confidence]int),
		BySource:     make(map[model.Source]int),
	}

	for _, item := range batch {
		stats.ByCategory[item.Result.ProductType]++
		stats.ByConfidence[item.Result.Confidence]++
		stats.BySource[item.Result.Source]++
		if item.Result.NeedsReview() {
			stats.NeedsReview++
		}
	}

	if stats.Total > 0 {
		stats.NeedsReviewPercent = float64(stats.NeedsReview) / float64(stats.Total) * 100
	}

	return stats
}
