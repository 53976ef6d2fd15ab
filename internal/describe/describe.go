package describe

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/northvac/taxon/internal/model"
)

// Generate builds description copy for a classified product. The same
// SKU always selects the same template variants.
func Generate(product model.Product, productType string) string {
	templates, ok := descriptionTemplates[templateKey(productType)]
	if !ok {
		templates = descriptionTemplates["parts-general"]
	}

	title := product.TitleEN
	seed := skuSeed(product.SKU)

	sentences := []string{
		weaveMaterial(pick(templates.openers, seed), extractMaterial(title)),
		pick(templates.features, seed>>8),
	}

	if qty := extractPackQuantity(title); qty > 1 && templates.packNote != "" {
		sentences = append(sentences, fmt.Sprintf(templates.packNote, qty))
	}

	if models := extractCompatibleModels(title); len(models) > 0 && templates.compatNote != "" {
		sentences = append(sentences, fmt.Sprintf(templates.compatNote, strings.Join(models, ", ")))
	}

	s := extractSpecs(title, product.Weight, product.Length, product.Width, product.Height)
	if note := detailNote(s, extractColor(title)); note != "" {
		sentences = append(sentences, note)
	}
	if s.WeightLBS > 0 && templates.specsNote != "" {
		sentences = append(sentences, fmt.Sprintf(templates.specsNote, s.WeightLBS))
	}

	if brand := extractBrand(title); brand != "" {
		sentences = append(sentences, fmt.Sprintf("Genuine %s replacement.", brand))
	}

	return strings.Join(sentences, " ")
}

// GenerateHTML wraps the generated description in paragraph markup for
// storefront bodies.
func GenerateHTML(product model.Product, productType string) string {
	return "<p>" + Generate(product, productType) + "</p>"
}

// weaveMaterial qualifies the opener's "replacement" mention with the
// extracted material, so a HEPA filter reads "HEPA replacement filter".
// Openers without the word are left alone.
func weaveMaterial(opener, material string) string {
	if material == "" {
		return opener
	}
	if strings.Contains(opener, "replacement") {
		return strings.Replace(opener, "replacement", material+" replacement", 1)
	}
	if strings.Contains(opener, "Replacement") {
		return strings.Replace(opener, "Replacement", upperFirst(material)+" replacement", 1)
	}
	return opener
}

// detailNote renders the extracted physical attributes as one sentence
// group, empty when nothing was extracted.
func detailNote(s specs, color string) string {
	var parts []string
	switch {
	case s.Dimensions != "":
		parts = append(parts, fmt.Sprintf("Measures %s.", s.Dimensions))
	case s.SizeInches != "":
		parts = append(parts, fmt.Sprintf("Nominal size: %s in.", s.SizeInches))
	case s.SizeMM != "":
		parts = append(parts, fmt.Sprintf("Nominal size: %s mm.", s.SizeMM))
	}
	if s.Voltage != "" {
		parts = append(parts, fmt.Sprintf("Rated for %sV operation.", s.Voltage))
	}
	if color != "" {
		parts = append(parts, fmt.Sprintf("Finished in %s.", strings.ToLower(color)))
	}
	return strings.Join(parts, " ")
}

func pick(variants []string, seed uint32) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[int(seed)%len(variants)]
}

func skuSeed(sku string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToUpper(strings.TrimSpace(sku))))
	return h.Sum32()
}
