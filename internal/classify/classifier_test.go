package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northvac/taxon/internal/model"
)

const (
	filtersType = "Parts & Replacement Parts > Filters"
	bagsType    = "Parts & Replacement Parts > Vacuum Bags"
	motorsType  = "Parts & Replacement Parts > Motors & Electrical"
)

func testRuleSet(opts ...func(*model.Settings)) *model.RuleSet {
	settings := model.Settings{
		GlobalPartKeywords: []string{"part", "replacement", "filter"},
		SkipPatterns: model.SkipPatterns{
			MaxPriceThreshold: 0.05,
			TitlePatternsEN:   []string{"rarely ordered"},
			TitlePatternsFR:   []string{"rarement command"},
		},
		FallbackPriorityCutoff: 10,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	categories := []model.Category{
		{
			Handle:       "vacuum-bags",
			ProductType:  bagsType,
			Priority:     60,
			MinProducts:  1,
			KeywordsEN:   []string{"vacuum bag", "bag"},
			KeywordsFR:   []string{"sac"},
			ExclusionsEN: []string{"garbage"},
		},
		{
			Handle:      "filters",
			ProductType: filtersType,
			Priority:    50,
			MinProducts: 1,
			KeywordsEN:  []string{"hepa filter", "filter"},
			KeywordsFR:  []string{"filtre"},
		},
		{
			Handle:      "motors",
			ProductType: motorsType,
			Priority:    40,
			MinProducts: 1,
			KeywordsEN:  []string{"motor"},
		},
		{
			Handle:      "parts-general",
			ProductType: model.GeneralPartsProductType,
			Priority:    10,
			MinProducts: 1,
			KeywordsEN:  []string{"part"},
		},
	}

	mappings := map[string]*model.Mapping{
		"Filters":   {Handle: "filters", ProductType: filtersType, Confidence: model.ConfidenceHigh},
		"Motors":    {Handle: "motors", ProductType: motorsType, Confidence: model.ConfidenceMedium},
		"All Parts": nil,
	}

	return model.NewRuleSet(settings, categories, mappings)
}

func TestClassifier_DirectMapping(t *testing.T) {
	c := NewClassifier(testRuleSet())

	t.Run("non-null mapping bypasses text tiers", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN:        "Paper Vacuum Bag Pack of 6",
			SourceCategory: "Filters",
		}, model.LanguageEN)

		// Title screams vacuum bag, but the mapping wins.
		assert.Equal(t, filtersType, result.ProductType)
		assert.Equal(t, model.SourceDirectMapping, result.Source)
		assert.Equal(t, model.ConfidenceHigh, result.Confidence)
		assert.Equal(t, model.DirectMappingPriority, result.Priority)
		assert.Equal(t, "Filters", result.SourceCategory)
	})

	t.Run("mapping carries its declared confidence", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN:        "Motor Assembly",
			SourceCategory: "Motors",
		}, model.LanguageEN)

		assert.Equal(t, model.SourceDirectMapping, result.Source)
		assert.Equal(t, model.ConfidenceMedium, result.Confidence)
	})

	t.Run("null mapping defers to keyword tier", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN:        "Motor Assembly Complete",
			SourceCategory: "All Parts",
		}, model.LanguageEN)

		assert.Equal(t, motorsType, result.ProductType)
		assert.Equal(t, model.SourceKeywordMatch, result.Source)
		assert.Equal(t, "All Parts", result.SourceCategory)
	})

	t.Run("unknown source code defers to keyword tier", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN:        "Motor Assembly Complete",
			SourceCategory: "Mystery Category",
		}, model.LanguageEN)

		assert.Equal(t, model.SourceKeywordMatch, result.Source)
	})
}

func TestClassifier_KeywordTier(t *testing.T) {
	c := NewClassifier(testRuleSet())

	t.Run("keyword in title scores high", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN: "HEPA Filter Replacement for XV-10",
		}, model.LanguageEN)

		assert.Equal(t, filtersType, result.ProductType)
		assert.Equal(t, model.SourceKeywordMatch, result.Source)
		assert.Equal(t, model.ConfidenceHigh, result.Confidence)
		assert.Equal(t, "hepa filter", result.MatchedKeyword)
		assert.Equal(t, 50, result.Priority)
	})

	t.Run("keyword only in description scores medium", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN:       "Premium replacement element",
			DescriptionEN: "High quality HEPA filter for commercial vacuums",
		}, model.LanguageEN)

		assert.Equal(t, filtersType, result.ProductType)
		assert.Equal(t, model.ConfidenceMedium, result.Confidence)
	})

	t.Run("keyword only in sku scores low", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN: "Premium accessory",
			SKU:     "THE FILTER ONE",
		}, model.LanguageEN)

		assert.Equal(t, filtersType, result.ProductType)
		assert.Equal(t, model.ConfidenceLow, result.Confidence)
	})

	t.Run("higher priority category wins when both match", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN: "Filter bag for upright vacuums",
		}, model.LanguageEN)

		// Both vacuum-bags (60) and filters (50) match; priority decides.
		assert.Equal(t, bagsType, result.ProductType)
	})

	t.Run("exclusion skips the category entirely", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN: "Garbage bag with filter liner",
		}, model.LanguageEN)

		// vacuum-bags would match "bag" but is excluded by "garbage";
		// evaluation continues to filters.
		assert.Equal(t, filtersType, result.ProductType)
		assert.Empty(t, result.ExcludedBy)
	})

	t.Run("fallback-tier category never matches by keyword", func(t *testing.T) {
		rs := testRuleSet(func(s *model.Settings) {
			s.GlobalPartKeywords = nil
		})
		result := NewClassifier(rs).Classify(model.Product{
			TitleEN: "Spare part",
		}, model.LanguageEN)

		// parts-general sits at the cutoff priority and is skipped, and
		// the global list is empty, so nothing matches.
		assert.Equal(t, model.SourceNoMatch, result.Source)
	})

	t.Run("french run uses french keywords", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN: "HEPA Filter",
			TitleFR: "Sac en papier paquet de 6",
		}, model.LanguageFR)

		assert.Equal(t, bagsType, result.ProductType)
		assert.Equal(t, "sac", result.MatchedKeyword)
		assert.Equal(t, model.ConfidenceHigh, result.Confidence)
	})
}

func TestClassifier_PriorityMonotonicity(t *testing.T) {
	// Both categories match "filter"; whichever holds the higher
	// priority must win regardless of declaration order.
	build := func(firstHigh bool) *model.RuleSet {
		a := model.Category{Handle: "a", ProductType: "A > A", Priority: 80, KeywordsEN: []string{"filter"}}
		b := model.Category{Handle: "b", ProductType: "B > B", Priority: 30, KeywordsEN: []string{"filter"}}
		ordered := []model.Category{a, b}
		if !firstHigh {
			ordered = []model.Category{b, a}
		}
		// The loader sorts before constructing; mirror that here.
		if ordered[0].Priority < ordered[1].Priority {
			ordered[0], ordered[1] = ordered[1], ordered[0]
		}
		return model.NewRuleSet(model.Settings{FallbackPriorityCutoff: 10}, ordered, nil)
	}

	for _, firstHigh := range []bool{true, false} {
		result := NewClassifier(build(firstHigh)).Classify(model.Product{
			TitleEN: "filter element",
		}, model.LanguageEN)
		assert.Equal(t, "A > A", result.ProductType)
	}
}

func TestClassifier_GlobalFallback(t *testing.T) {
	t.Run("fallback fires when no category matches", func(t *testing.T) {
		c := NewClassifier(testRuleSet())
		result := c.Classify(model.Product{
			TitleEN: "Universal replacement element",
		}, model.LanguageEN)

		assert.Equal(t, model.GeneralPartsProductType, result.ProductType)
		assert.Equal(t, model.GeneralPartsHandle, result.Handle)
		assert.Equal(t, model.SourceGlobalFallback, result.Source)
		assert.Equal(t, model.ConfidenceLow, result.Confidence)
		assert.Equal(t, "replacement", result.MatchedKeyword)
	})

	t.Run("fallback fires when categories are excluded", func(t *testing.T) {
		rs := model.NewRuleSet(
			model.Settings{
				GlobalPartKeywords:     []string{"filter"},
				FallbackPriorityCutoff: 10,
			},
			[]model.Category{{
				Handle:       "filters",
				ProductType:  filtersType,
				Priority:     50,
				KeywordsEN:   []string{"filter"},
				ExclusionsEN: []string{"hepa"},
			}},
			nil,
		)
		result := NewClassifier(rs).Classify(model.Product{
			TitleEN: "HEPA Filter Replacement for XV-10",
		}, model.LanguageEN)

		assert.Equal(t, model.SourceGlobalFallback, result.Source)
		assert.Equal(t, model.ConfidenceLow, result.Confidence)
	})

	t.Run("fallback-first policy checks global keywords before categories", func(t *testing.T) {
		rs := testRuleSet(func(s *model.Settings) {
			s.FallbackFirst = true
		})
		result := NewClassifier(rs).Classify(model.Product{
			TitleEN: "HEPA Filter Replacement",
		}, model.LanguageEN)

		assert.Equal(t, model.SourceGlobalFallback, result.Source)
		assert.Equal(t, model.GeneralPartsProductType, result.ProductType)
	})
}

func TestClassifier_NeedsReview(t *testing.T) {
	c := NewClassifier(testRuleSet())

	t.Run("empty title and description", func(t *testing.T) {
		result := c.Classify(model.Product{}, model.LanguageEN)

		assert.Equal(t, model.NeedsReviewProductType, result.ProductType)
		assert.Equal(t, model.NeedsReviewHandle, result.Handle)
		assert.Equal(t, model.SourceNoMatch, result.Source)
		assert.Equal(t, "no title or description available", result.Reason)
	})

	t.Run("nothing matches anywhere", func(t *testing.T) {
		result := c.Classify(model.Product{
			TitleEN: "Completely unrelated gizmo",
		}, model.LanguageEN)

		assert.Equal(t, model.NeedsReviewProductType, result.ProductType)
		assert.Equal(t, "no keyword matches found", result.Reason)
	})
}

func TestClassifier_Totality(t *testing.T) {
	c := NewClassifier(testRuleSet())

	products := []model.Product{
		{},
		{SKU: "ONLY-SKU"},
		{TitleEN: "HEPA Filter"},
		{TitleFR: "Filtre"},
		{SourceCategory: "All Parts"},
		{SourceCategory: "Filters"},
		{DescriptionEN: "a motor inside"},
	}

	for _, product := range products {
		result := c.Classify(product, model.LanguageEN)
		require.NotEmpty(t, result.ProductType, "every input must yield a result: %+v", product)
		require.NotEmpty(t, result.Source)
	}
}

func TestClassifier_ShouldSkip(t *testing.T) {
	c := NewClassifier(testRuleSet())

	tests := []struct {
		name     string
		product  model.Product
		wantSkip bool
	}{
		{
			name:     "price at threshold",
			product:  model.Product{TitleEN: "Widget", Price: "0.05"},
			wantSkip: true,
		},
		{
			name:     "price below threshold",
			product:  model.Product{TitleEN: "Widget", Price: "0.01"},
			wantSkip: true,
		},
		{
			name:     "zero price is not a placeholder signal",
			product:  model.Product{TitleEN: "Widget", Price: "0"},
			wantSkip: false,
		},
		{
			name:     "normal price",
			product:  model.Product{TitleEN: "Widget", Price: "19.99"},
			wantSkip: false,
		},
		{
			name:     "unparsable price ignored",
			product:  model.Product{TitleEN: "Widget", Price: "n/a"},
			wantSkip: false,
		},
		{
			name:     "english placeholder pattern",
			product:  model.Product{TitleEN: "THIS PART IS RARELY ORDERED - price adjusted", Price: "9.99"},
			wantSkip: true,
		},
		{
			name:     "french placeholder pattern",
			product:  model.Product{TitleFR: "Pièce rarement commandée", Price: "9.99"},
			wantSkip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, reason := c.ShouldSkip(tt.product)
			assert.Equal(t, tt.wantSkip, skip)
			if tt.wantSkip {
				assert.NotEmpty(t, reason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}
