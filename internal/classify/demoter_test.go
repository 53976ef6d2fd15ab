package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northvac/taxon/internal/model"
)

func classifiedAs(productType, handle string, n int) []Classified {
	batch := make([]Classified, n)
	for i := range batch {
		batch[i] = Classified{
			Product: model.Product{SKU: fmt.Sprintf("%s-%d", handle, i)},
			Result: model.Result{
				ProductType: productType,
				Handle:      handle,
				Confidence:  model.ConfidenceHigh,
				Source:      model.SourceKeywordMatch,
			},
		}
	}
	return batch
}

func demoterRuleSet(minFilters int) *model.RuleSet {
	return model.NewRuleSet(
		model.Settings{FallbackPriorityCutoff: 10},
		[]model.Category{
			{Handle: "filters", ProductType: filtersType, Priority: 50, MinProducts: minFilters},
			{Handle: "vacuum-bags", ProductType: bagsType, Priority: 60, MinProducts: 2},
		},
		nil,
	)
}

func TestDemote_UnderPopulatedCategory(t *testing.T) {
	rs := demoterRuleSet(5)
	batch := classifiedAs(filtersType, "filters", 3)

	out := Demote(rs, batch)

	require.Len(t, out, 3)
	for _, item := range out {
		assert.Equal(t, model.NeedsReviewProductType, item.Result.ProductType)
		assert.Equal(t, model.NeedsReviewHandle, item.Result.Handle)
		assert.Equal(t, model.SourceNoMatch, item.Result.Source)
		assert.Contains(t, item.Result.Reason, filtersType)
		assert.Contains(t, item.Result.Reason, "has 3 products, minimum is 5")
	}

	// Input batch is untouched.
	for _, item := range batch {
		assert.Equal(t, filtersType, item.Result.ProductType)
	}
}

func TestDemote_PopulatedCategorySurvives(t *testing.T) {
	rs := demoterRuleSet(3)
	batch := classifiedAs(filtersType, "filters", 3)

	out := Demote(rs, batch)

	for _, item := range out {
		assert.Equal(t, filtersType, item.Result.ProductType)
	}
}

func TestDemote_MixedBatch(t *testing.T) {
	rs := demoterRuleSet(2)
	batch := classifiedAs(filtersType, "filters", 4)
	batch = append(batch, classifiedAs(bagsType, "vacuum-bags", 1)...)
	batch = append(batch, Classified{
		Product: model.Product{SKU: "REVIEW-1"},
		Result:  model.NeedsReviewResult("no keyword matches found", ""),
	})

	out := Demote(rs, batch)

	byType := make(map[string]int)
	for _, item := range out {
		byType[item.Result.ProductType]++
	}

	assert.Equal(t, 4, byType[filtersType])
	assert.Equal(t, 0, byType[bagsType])
	assert.Equal(t, 2, byType[model.NeedsReviewProductType])
}

func TestDemote_UnknownTypeDefaultsToOne(t *testing.T) {
	rs := demoterRuleSet(1)
	batch := classifiedAs("Somewhere > Else", "elsewhere", 1)

	out := Demote(rs, batch)

	assert.Equal(t, "Somewhere > Else", out[0].Result.ProductType)
}

func TestDemote_Invariant(t *testing.T) {
	// After demotion every surviving category count is either zero or at
	// least its minimum.
	rs := demoterRuleSet(3)
	batch := classifiedAs(filtersType, "filters", 2)
	batch = append(batch, classifiedAs(bagsType, "vacuum-bags", 2)...)

	out := Demote(rs, batch)

	counts := make(map[string]int)
	for _, item := range out {
		if !item.Result.NeedsReview() {
			counts[item.Result.ProductType]++
		}
	}
	for productType, count := range counts {
		assert.GreaterOrEqual(t, count, rs.MinProducts(productType),
			"category %q survived below its minimum", productType)
	}
	assert.Zero(t, counts[filtersType])
	assert.Equal(t, 2, counts[bagsType])
}

func TestDemote_OrderIndependent(t *testing.T) {
	rs := demoterRuleSet(3)
	batch := classifiedAs(filtersType, "filters", 2)
	batch = append(batch, classifiedAs(bagsType, "vacuum-bags", 2)...)

	forward := Demote(rs, batch)

	reversed := make([]Classified, len(batch))
	for i, item := range batch {
		reversed[len(batch)-1-i] = item
	}
	backward := Demote(rs, reversed)

	forwardTypes := make(map[string]string)
	for _, item := range forward {
		forwardTypes[item.Product.SKU] = item.Result.ProductType
	}
	for _, item := range backward {
		assert.Equal(t, forwardTypes[item.Product.SKU], item.Result.ProductType)
	}
}
