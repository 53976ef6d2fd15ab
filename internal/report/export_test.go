package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northvac/taxon/internal/classify"
	"github.com/northvac/taxon/internal/model"
)

func TestWriteNeedsReview(t *testing.T) {
	batch := []classify.Classified{
		{
			Product: model.Product{SKU: "JV100", TitleEN: "HEPA Filter"},
			Result:  model.Result{ProductType: "Parts & Replacement Parts > Filters"},
		},
		{
			Product: model.Product{SKU: "JV200", TitleEN: "Gizmo", TitleFR: "Bidule", SourceCategory: "All Parts"},
			Result:  model.NeedsReviewResult("no keyword matches found", "All Parts"),
		},
	}

	var buf bytes.Buffer
	n, err := WriteNeedsReview(&buf, batch)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"SKU", "ProductTitleEN", "ProductTitleFR", "SourceCategory", "Reason"}, rows[0])
	assert.Equal(t, []string{"JV200", "Gizmo", "Bidule", "All Parts", "no keyword matches found"}, rows[1])
}

func TestWriteSkipped(t *testing.T) {
	skipped := []classify.Skipped{
		{
			Product: model.Product{SKU: "JV300", TitleEN: "RARELY ORDERED", Price: "0.01"},
			Reason:  `matched skip pattern "rarely ordered"`,
		},
	}

	var buf bytes.Buffer
	n, err := WriteSkipped(&buf, skipped)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "JV300", rows[1][0])
	assert.Equal(t, "0.01", rows[1][2])
}

func TestRenderSummary(t *testing.T) {
	stats := classify.Summarize([]classify.Classified{
		{Result: model.Result{ProductType: "Parts & Replacement Parts > Filters", Confidence: model.ConfidenceHigh, Source: model.SourceKeywordMatch}},
		{Result: model.NeedsReviewResult("no keyword matches found", "")},
	})

	out := RenderSummary(stats, 3)

	assert.Contains(t, out, "Products classified: 2")
	assert.Contains(t, out, "Placeholders skipped: 3")
	assert.Contains(t, out, "Parts & Replacement Parts > Filters")
	assert.Contains(t, out, model.NeedsReviewProductType)
	assert.Contains(t, out, "Needs review: 1 (50.0%)")
	assert.True(t, strings.Contains(out, "keyword_match"))
}
