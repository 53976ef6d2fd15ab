package describe

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/northvac/taxon/internal/model"
)

// Search engine display limits.
const (
	MaxSEOTitleLength       = 70
	MaxSEODescriptionLength = 160
)

// categorySEO carries the suffix and descriptor used when composing SEO
// copy for a template family.
type categorySEO struct {
	suffix     string
	descriptor string
}

var seoByTemplate = map[string]categorySEO{
	"vacuum-bags":   {suffix: "Vacuum Bags", descriptor: "high-filtration replacement bags"},
	"filters":       {suffix: "Vacuum Filter", descriptor: "fine-particle filtration"},
	"belts":         {suffix: "Vacuum Belt", descriptor: "exact-fit drive belt"},
	"hoses":         {suffix: "Vacuum Hose", descriptor: "durable replacement hose"},
	"motors":        {suffix: "Vacuum Motor", descriptor: "OEM-spec replacement motor"},
	"brushes":       {suffix: "Vacuum Brush", descriptor: "restores carpet agitation"},
	"equipment":     {suffix: "Commercial Vacuum", descriptor: "professional cleaning equipment"},
	"parts-general": {suffix: "Replacement Part", descriptor: "quality replacement part"},
}

// GenerateSEOTitle builds a search-optimized title within the limit.
func GenerateSEOTitle(product model.Product, productType string) string {
	title := product.TitleEN
	info := seoByTemplate[templateKey(productType)]

	var parts []string
	brand := extractBrand(title)
	if brand != "" {
		parts = append(parts, brand)
	}
	if models := extractCompatibleModels(title); len(models) > 0 {
		parts = append(parts, models[0])
	}
	parts = append(parts, info.suffix)
	if qty := extractPackQuantity(title); qty > 1 {
		parts = append(parts, fmt.Sprintf("%d Pack", qty))
	}

	seoTitle := strings.Join(parts, " ")

	if len(seoTitle) > MaxSEOTitleLength {
		parts = parts[:0]
		if brand != "" {
			parts = append(parts, brand)
		}
		parts = append(parts, info.suffix)
		seoTitle = strings.Join(parts, " ")
	}

	if len(seoTitle) < 25 {
		if brand == "" {
			seoTitle = "Commercial " + seoTitle
		}
		if len(seoTitle) < 25 {
			seoTitle += " | Vacuum Part"
		}
	}

	return truncate(seoTitle, MaxSEOTitleLength)
}

// GenerateSEODescription builds a meta description within the limit.
func GenerateSEODescription(product model.Product, productType string) string {
	title := product.TitleEN
	info := seoByTemplate[templateKey(productType)]

	opener := "Commercial " + strings.ToLower(info.suffix)
	if brand := extractBrand(title); brand != "" {
		opener = brand + " " + strings.ToLower(info.suffix)
	}
	if models := extractCompatibleModels(title); len(models) > 0 {
		opener += " (" + models[0] + ")"
	}

	parts := []string{opener}
	if qty := extractPackQuantity(title); qty > 1 {
		parts = append(parts, fmt.Sprintf("Pack of %d", qty))
	}
	parts = append(parts, upperFirst(info.descriptor))

	main := strings.Join(parts, ". ") + "."

	ctas := []string{
		"Fast shipping across Canada.",
		"Ships Canada-wide.",
		"Canadian janitorial supply.",
	}
	for _, cta := range ctas {
		candidate := main + " " + cta
		if len(candidate) <= MaxSEODescriptionLength {
			return candidate
		}
	}

	return truncate(main, MaxSEODescriptionLength)
}

// truncate shortens text to at most limit bytes, never splitting a
// rune, and prefers a word boundary unless that would cut away too
// much.
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	cut := text[:limit]
	if i := strings.LastIndex(cut, " "); i >= limit*6/10 {
		return cut[:i]
	}
	return cut
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
