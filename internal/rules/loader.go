// Package rules loads and validates the externally supplied classification
// rule set. The engine refuses to start on a malformed document rather
// than classify against partial or ambiguous rules.
package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/northvac/taxon/internal/common"
	"github.com/northvac/taxon/internal/model"
)

// Defaults applied to fields the document leaves unset.
const (
	DefaultMaxPriceThreshold      = 0.05
	DefaultFallbackPriorityCutoff = 10
	DefaultMinProducts            = 1
)

type document struct {
	Settings   settingsDoc            `json:"settings" yaml:"settings"`
	Categories []categoryDoc          `json:"categories" yaml:"categories"`
	Mappings   map[string]*mappingDoc `json:"jv_category_mappings" yaml:"jv_category_mappings"`
}

type settingsDoc struct {
	GlobalPartKeywords     []string        `json:"global_part_keywords" yaml:"global_part_keywords"`
	SkipPatterns           skipPatternsDoc `json:"skip_patterns" yaml:"skip_patterns"`
	FallbackFirst          bool            `json:"fallback_first" yaml:"fallback_first"`
	FallbackPriorityCutoff *int            `json:"fallback_priority_cutoff" yaml:"fallback_priority_cutoff"`
}

type skipPatternsDoc struct {
	MaxPriceThreshold *float64 `json:"max_price_threshold" yaml:"max_price_threshold"`
	TitlePatternsEN   []string `json:"title_patterns_en" yaml:"title_patterns_en"`
	TitlePatternsFR   []string `json:"title_patterns_fr" yaml:"title_patterns_fr"`
}

type categoryDoc struct {
	Handle       string   `json:"handle" yaml:"handle"`
	ProductType  string   `json:"productType" yaml:"productType"`
	Title        string   `json:"title" yaml:"title"`
	Priority     int      `json:"priority" yaml:"priority"`
	MinProducts  *int     `json:"min_products" yaml:"min_products"`
	KeywordsEN   []string `json:"keywords_en" yaml:"keywords_en"`
	KeywordsFR   []string `json:"keywords_fr" yaml:"keywords_fr"`
	ExclusionsEN []string `json:"exclusions_en" yaml:"exclusions_en"`
	ExclusionsFR []string `json:"exclusions_fr" yaml:"exclusions_fr"`
}

type mappingDoc struct {
	Handle      string `json:"handle" yaml:"handle"`
	ProductType string `json:"productType" yaml:"productType"`
	Confidence  string `json:"confidence" yaml:"confidence"`
}

// Load reads a rule-set document from disk. JSON and YAML are both
// accepted, switched on the file extension.
func Load(path string) (*model.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule set: %w", err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidRules, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidRules, err)
		}
	}

	return build(doc)
}

func build(doc document) (*model.RuleSet, error) {
	categories := make([]model.Category, 0, len(doc.Categories))
	seenHandles := make(map[string]struct{}, len(doc.Categories))
	seenTypes := make(map[string]struct{}, len(doc.Categories))

	for i, cd := range doc.Categories {
		if cd.Handle == "" {
			return nil, fmt.Errorf("%w: category %d missing handle", common.ErrInvalidRules, i)
		}
		if cd.ProductType == "" {
			return nil, fmt.Errorf("%w: category %q missing productType", common.ErrInvalidRules, cd.Handle)
		}
		if cd.Priority < 0 {
			return nil, fmt.Errorf("%w: category %q has negative priority", common.ErrInvalidRules, cd.Handle)
		}
		if _, dup := seenHandles[cd.Handle]; dup {
			return nil, fmt.Errorf("%w: %w: handle %q", common.ErrInvalidRules, common.ErrDuplicateEntry, cd.Handle)
		}
		if _, dup := seenTypes[cd.ProductType]; dup {
			return nil, fmt.Errorf("%w: %w: productType %q", common.ErrInvalidRules, common.ErrDuplicateEntry, cd.ProductType)
		}
		seenHandles[cd.Handle] = struct{}{}
		seenTypes[cd.ProductType] = struct{}{}

		minProducts := DefaultMinProducts
		if cd.MinProducts != nil {
			if *cd.MinProducts < 0 {
				return nil, fmt.Errorf("%w: category %q has negative min_products", common.ErrInvalidRules, cd.Handle)
			}
			minProducts = *cd.MinProducts
		}

		categories = append(categories, model.Category{
			Handle:       cd.Handle,
			ProductType:  cd.ProductType,
			Title:        cd.Title,
			Priority:     cd.Priority,
			MinProducts:  minProducts,
			KeywordsEN:   cd.KeywordsEN,
			KeywordsFR:   cd.KeywordsFR,
			ExclusionsEN: cd.ExclusionsEN,
			ExclusionsFR: cd.ExclusionsFR,
		})
	}

	// Higher priority evaluates first; ties keep declaration order.
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Priority > categories[j].Priority
	})

	mappings, err := buildMappings(doc.Mappings)
	if err != nil {
		return nil, err
	}

	settings := model.Settings{
		GlobalPartKeywords: doc.Settings.GlobalPartKeywords,
		SkipPatterns: model.SkipPatterns{
			MaxPriceThreshold: DefaultMaxPriceThreshold,
			TitlePatternsEN:   doc.Settings.SkipPatterns.TitlePatternsEN,
			TitlePatternsFR:   doc.Settings.SkipPatterns.TitlePatternsFR,
		},
		FallbackFirst:          doc.Settings.FallbackFirst,
		FallbackPriorityCutoff: DefaultFallbackPriorityCutoff,
	}
	if doc.Settings.SkipPatterns.MaxPriceThreshold != nil {
		settings.SkipPatterns.MaxPriceThreshold = *doc.Settings.SkipPatterns.MaxPriceThreshold
	}
	if doc.Settings.FallbackPriorityCutoff != nil {
		settings.FallbackPriorityCutoff = *doc.Settings.FallbackPriorityCutoff
	}

	return model.NewRuleSet(settings, categories, mappings), nil
}

func buildMappings(docs map[string]*mappingDoc) (map[string]*model.Mapping, error) {
	if docs == nil {
		return nil, nil
	}
	mappings := make(map[string]*model.Mapping, len(docs))
	for code, md := range docs {
		if md == nil {
			// Explicitly generic: the code is known but must be refined
			// by the keyword tier.
			mappings[code] = nil
			continue
		}
		if md.Handle == "" || md.ProductType == "" {
			return nil, fmt.Errorf("%w: mapping %q missing handle or productType", common.ErrInvalidRules, code)
		}
		confidence := model.ConfidenceHigh
		switch md.Confidence {
		case "":
		case string(model.ConfidenceHigh), string(model.ConfidenceMedium), string(model.ConfidenceLow):
			confidence = model.Confidence(md.Confidence)
		default:
			return nil, fmt.Errorf("%w: mapping %q has invalid confidence %q", common.ErrInvalidRules, code, md.Confidence)
		}
		mappings[code] = &model.Mapping{
			Handle:      md.Handle,
			ProductType: md.ProductType,
			Confidence:  confidence,
		}
	}
	return mappings, nil
}
