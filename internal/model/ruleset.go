package model

// Mapping is a precomputed source-category association that bypasses
// keyword evaluation. A nil *Mapping value in RuleSet.Mappings marks the
// source code as known but generic, deferring to the keyword tier.
type Mapping struct {
	ProductType string
	Handle      string
	Confidence  Confidence
}

// SkipPatterns identifies placeholder listings that should never reach
// the classifier.
type SkipPatterns struct {
	MaxPriceThreshold float64
	TitlePatternsEN   []string
	TitlePatternsFR   []string
}

// Settings holds the rule-set-wide knobs that sit outside any single
// category.
type Settings struct {
	GlobalPartKeywords []string
	SkipPatterns       SkipPatterns

	// FallbackFirst runs the global part keywords before the per-category
	// keyword tier instead of after it.
	FallbackFirst bool

	// FallbackPriorityCutoff marks categories at or below this priority
	// as fallback-tier: they are skipped by the keyword tier and only
	// reachable via direct mapping or the global fallback.
	FallbackPriorityCutoff int
}

// RuleSet is the full, externally loaded classification rule table.
// It is constructed once at startup, validated, and read-only for the
// rest of the process, so it is safe to share across workers.
type RuleSet struct {
	Settings   Settings
	Categories []Category          // sorted descending by priority, stable
	Mappings   map[string]*Mapping // nil value = generic, defer to keywords
	byHandle   map[string]Category
	byType     map[string]Category
}

// NewRuleSet builds a RuleSet with its lookup indexes. Callers are
// expected to have validated the categories first.
func NewRuleSet(settings Settings, categories []Category, mappings map[string]*Mapping) *RuleSet {
	rs := &RuleSet{
		Settings:   settings,
		Categories: categories,
		Mappings:   mappings,
		byHandle:   make(map[string]Category, len(categories)),
		byType:     make(map[string]Category, len(categories)),
	}
	for _, c := range categories {
		rs.byHandle[c.Handle] = c
		rs.byType[c.ProductType] = c
	}
	return rs
}

// CategoryByHandle looks up a category by its handle.
func (rs *RuleSet) CategoryByHandle(handle string) (Category, bool) {
	c, ok := rs.byHandle[handle]
	return c, ok
}

// CategoryByProductType looks up a category by its taxonomy path.
func (rs *RuleSet) CategoryByProductType(productType string) (Category, bool) {
	c, ok := rs.byType[productType]
	return c, ok
}

// MinProducts returns the minimum population for a product type,
// defaulting to 1 for types the rule set does not declare.
func (rs *RuleSet) MinProducts(productType string) int {
	if c, ok := rs.byType[productType]; ok && c.MinProducts > 0 {
		return c.MinProducts
	}
	return 1
}
