package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/northvac/taxon/internal/classify"
	"github.com/northvac/taxon/internal/model"
)

// RenderSummary formats batch statistics for terminal output. Categories
// are listed by descending count, then name, so the output is stable.
func RenderSummary(stats classify.Stats, skipped int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Classification summary"))
	b.WriteString("\n\n")

	b.WriteString(BoldStyle.Render(fmt.Sprintf("Products classified: %d", stats.Total)))
	b.WriteString("\n")
	if skipped > 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("Placeholders skipped: %d", skipped)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(BoldStyle.Render("By category"))
	b.WriteString("\n")
	for _, row := range sortedCounts(stats.ByCategory) {
		line := fmt.Sprintf("  %-55s %5d", row.key, row.count)
		if row.key == model.NeedsReviewProductType {
			line = WarningStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(BoldStyle.Render("By confidence"))
	b.WriteString("\n")
	for _, confidence := range []model.Confidence{model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceLow} {
		b.WriteString(fmt.Sprintf("  %-8s %5d\n", confidence, stats.ByConfidence[confidence]))
	}
	b.WriteString("\n")

	b.WriteString(BoldStyle.Render("By source"))
	b.WriteString("\n")
	for _, row := range sortedCounts(sourceCounts(stats)) {
		b.WriteString(fmt.Sprintf("  %-16s %5d\n", row.key, row.count))
	}
	b.WriteString("\n")

	review := fmt.Sprintf("Needs review: %d (%.1f%%)", stats.NeedsReview, stats.NeedsReviewPercent)
	if stats.NeedsReview > 0 {
		b.WriteString(WarningStyle.Render(review))
	} else {
		b.WriteString(TitleStyle.Render(review))
	}
	b.WriteString("\n")

	return b.String()
}

type countRow struct {
	key   string
	count int
}

func sortedCounts(m map[string]int) []countRow {
	rows := make([]countRow, 0, len(m))
	for k, v := range m {
		rows = append(rows, countRow{key: k, count: v})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].key < rows[j].key
	})
	return rows
}

func sourceCounts(stats classify.Stats) map[string]int {
	m := make(map[string]int, len(stats.BySource))
	for source, count := range stats.BySource {
		m[string(source)] = count
	}
	return m
}
