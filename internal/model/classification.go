package model

// Confidence is the qualitative strength of a classification match.
type Confidence string

// Confidence levels, derived from where the matched keyword was found.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Source identifies which classifier tier produced a result.
type Source string

// Classification sources.
const (
	SourceDirectMapping  Source = "direct_mapping"
	SourceKeywordMatch   Source = "keyword_match"
	SourceGlobalFallback Source = "global_fallback"
	SourceNoMatch        Source = "no_match"
)

// Reserved taxonomy buckets and the direct-mapping priority sentinel.
const (
	NeedsReviewProductType = "Other > Needs Review"
	NeedsReviewHandle      = "needs-review"

	GeneralPartsProductType = "Parts & Replacement Parts > General Parts"
	GeneralPartsHandle      = "parts-general"

	DirectMappingPriority = 999
)

// Result is the outcome of classifying one product. It is created once
// per product per run and is only ever replaced wholesale, never
// partially mutated.
type Result struct {
	ProductType    string     `json:"product_type"`
	Handle         string     `json:"handle"`
	Confidence     Confidence `json:"confidence"`
	MatchedKeyword string     `json:"matched_keyword,omitempty"`
	ExcludedBy     string     `json:"excluded_by,omitempty"`
	Source         Source     `json:"source"`
	SourceCategory string     `json:"source_category,omitempty"`
	Reason         string     `json:"reason"`
	Priority       int        `json:"priority"`
}

// NeedsReview reports whether the result landed in the reserved
// needs-review bucket.
func (r Result) NeedsReview() bool {
	return r.ProductType == NeedsReviewProductType
}

// NeedsReviewResult builds the terminal needs-review result.
func NeedsReviewResult(reason, sourceCategory string) Result {
	return Result{
		ProductType:    NeedsReviewProductType,
		Handle:         NeedsReviewHandle,
		Confidence:     ConfidenceLow,
		Source:         SourceNoMatch,
		SourceCategory: sourceCategory,
		Reason:         reason,
		Priority:       0,
	}
}
