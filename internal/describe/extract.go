// Package describe generates storefront description and SEO copy for
// classified products from category-keyed template variants. Output is
// deterministic: variant selection hashes the SKU so re-runs produce
// identical text.
package describe

import (
	"regexp"
	"strconv"
	"strings"
)

// Brands recognized in product titles. Order matters: more specific
// names come first.
var knownBrands = []string{
	"Johnny Vac", "JohnnyVac", "Ghibli", "Rotho", "Perfect", "Carpet Pro",
	"Fuller Brush", "Cyclovac", "Wirbel", "Sprintus", "Pullman Holt",
	"Hoover", "Bissell", "Royal", "Dirt Devil", "Eureka", "Panasonic",
	"Electrolux", "Kenmore", "Dyson", "Shark", "Miele", "Riccar", "Simplicity",
}

var packPatterns = []*regexp.Regexp{
	regexp.MustCompile(`pack\s+of\s+(\d+)`),
	regexp.MustCompile(`(\d+)\s*-?\s*pack`),
	regexp.MustCompile(`box\s+of\s+(\d+)`),
	regexp.MustCompile(`(\d+)\s+bags`),
	regexp.MustCompile(`pk\s*(\d+)`),
	regexp.MustCompile(`(\d+)\s*pc`),
	regexp.MustCompile(`(\d+)\s*per\s+case`),
	regexp.MustCompile(`case\s+of\s+(\d+)`),
}

var (
	modelAlphaNumRe = regexp.MustCompile(`\b([A-Z]{1,3}\d{3,6}[A-Z]?)\b`)
	modelDashedRe   = regexp.MustCompile(`\b([A-Z]{2,4}-\d{2,4})\b`)
	forPhraseRe     = regexp.MustCompile(`(?i)for\s+(\w+(?:\s+\w+)?(?:\s+[A-Z0-9-]+)?)`)
	sizeInchesRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:"|inch|in)\b`)
	sizeMMRe        = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*mm\b`)
	voltageRe       = regexp.MustCompile(`(\d+)\s*(?:v|volt)\b`)
)

// extractBrand returns the first recognized brand in the title,
// normalizing Johnny Vac spelling variants.
func extractBrand(title string) string {
	text := strings.ToLower(title)
	for _, brand := range knownBrands {
		if strings.Contains(text, strings.ToLower(brand)) {
			if strings.Contains(strings.ToLower(brand), "johnny") {
				return "JohnnyVac"
			}
			return brand
		}
	}
	return ""
}

// extractPackQuantity pulls pack/box counts out of a title, zero when
// absent.
func extractPackQuantity(title string) int {
	lower := strings.ToLower(title)
	for _, re := range packPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if qty, err := strconv.Atoi(m[1]); err == nil {
				return qty
			}
		}
	}
	return 0
}

// specs holds the physical attributes extracted for spec notes.
type specs struct {
	Dimensions string
	SizeInches string
	SizeMM     string
	Voltage    string
	WeightKG   float64
	WeightLBS  float64
}

func extractSpecs(title, weight, length, width, height string) specs {
	var s specs

	if w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64); err == nil && w > 0 {
		s.WeightKG = w
		s.WeightLBS = roundTenth(w * 2.205)
	}

	l, lerr := strconv.ParseFloat(strings.TrimSpace(length), 64)
	wi, werr := strconv.ParseFloat(strings.TrimSpace(width), 64)
	if lerr == nil && werr == nil && l > 0 && wi > 0 {
		s.Dimensions = trimFloat(l) + " x " + trimFloat(wi)
		if h, herr := strconv.ParseFloat(strings.TrimSpace(height), 64); herr == nil && h > 0 {
			s.Dimensions += " x " + trimFloat(h)
		}
		s.Dimensions += " cm"
	}

	lower := strings.ToLower(title)
	if m := sizeInchesRe.FindStringSubmatch(lower); m != nil {
		s.SizeInches = m[1]
	}
	if m := sizeMMRe.FindStringSubmatch(lower); m != nil {
		s.SizeMM = m[1]
	}
	if m := voltageRe.FindStringSubmatch(lower); m != nil {
		s.Voltage = m[1]
	}

	return s
}

var colorNames = []string{
	"black", "white", "grey", "gray", "red", "blue", "green", "yellow",
	"orange", "brown", "beige", "clear", "transparent", "chrome", "silver",
}

func extractColor(title string) string {
	lower := strings.ToLower(title)
	for _, color := range colorNames {
		if containsToken(lower, color) {
			return strings.ToUpper(color[:1]) + color[1:]
		}
	}
	return ""
}

var materialNames = [][2]string{
	{"hepa", "HEPA"}, {"microfiber", "microfiber"}, {"cloth", "cloth"},
	{"paper", "paper"}, {"foam", "foam"}, {"rubber", "rubber"},
	{"nylon", "nylon"}, {"stainless", "stainless steel"}, {"plastic", "plastic"},
	{"vinyl", "vinyl"}, {"latex", "latex"}, {"nitrile", "nitrile"},
	{"cotton", "cotton"}, {"polyester", "polyester"},
}

func extractMaterial(title string) string {
	lower := strings.ToLower(title)
	for _, pair := range materialNames {
		if strings.Contains(lower, pair[0]) {
			return pair[1]
		}
	}
	return ""
}

// extractCompatibleModels collects up to three model references from a
// title: "for Brand Model" phrases plus bare model-number tokens.
func extractCompatibleModels(title string) []string {
	var models []string
	seen := make(map[string]struct{})

	add := func(m string) {
		m = strings.TrimSpace(m)
		if len(m) <= 2 {
			return
		}
		if _, dup := seen[m]; dup {
			return
		}
		seen[m] = struct{}{}
		models = append(models, m)
	}

	stop := map[string]struct{}{
		"use": {}, "all": {}, "the": {}, "vacuum": {}, "vacuums": {},
	}
	for _, m := range forPhraseRe.FindAllStringSubmatch(title, -1) {
		candidate := strings.TrimSpace(m[1])
		if len(candidate) > 3 {
			if _, skip := stop[strings.ToLower(candidate)]; !skip {
				add(candidate)
			}
		}
	}

	for _, re := range []*regexp.Regexp{modelAlphaNumRe, modelDashedRe} {
		for _, m := range re.FindAllStringSubmatch(title, -1) {
			add(m[1])
		}
	}

	if len(models) > 3 {
		models = models[:3]
	}
	return models
}

func containsToken(text, token string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], token)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(token)
		beforeOK := i == 0 || !isAlnum(text[i-1])
		afterOK := end == len(text) || !isAlnum(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
