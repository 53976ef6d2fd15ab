package describe

import "strings"

// templateSet holds the sentence variants for one product family.
// Openers and features rotate by SKU hash; the notes are appended when
// the extracted attributes call for them.
type templateSet struct {
	packNote   string
	compatNote string
	specsNote  string
	openers    []string
	features   []string
}

var descriptionTemplates = map[string]templateSet{
	"vacuum-bags": {
		openers: []string{
			"Keep your vacuum running at peak performance with this replacement vacuum bag.",
			"Replacement vacuum bag designed for reliable filtration and easy installation.",
			"Maintain optimal suction power with this high-quality replacement vacuum bag.",
		},
		features: []string{
			"Engineered for efficient dust and debris capture, this bag helps maintain strong suction while protecting the motor from fine particles.",
			"Designed for superior dust containment, reducing allergens and maintaining air quality during cleaning.",
			"The filtration construction provides excellent particle capture while allowing maximum airflow for powerful suction.",
		},
		packNote:   "This convenient %d-pack keeps you stocked for extended use.",
		compatNote: "Compatible with %s. Check your vacuum model to confirm fitment.",
	},
	"filters": {
		openers: []string{
			"Restore your vacuum's filtration performance with this replacement filter.",
			"Replacement filter built for effective air filtration and long service life.",
			"Keep air quality high and suction strong with this filter replacement.",
		},
		features: []string{
			"Traps fine dust, allergens, and microscopic particles to deliver cleaner exhaust air in commercial environments.",
			"Designed to capture fine particulates while maintaining optimal airflow, extending the life of your vacuum motor.",
			"The filtration media provides excellent particle capture without sacrificing suction power.",
		},
		compatNote: "Fits %s. Verify your model before ordering.",
		specsNote:  "Approximate shipping weight: %.1f lbs.",
	},
	"belts": {
		openers: []string{
			"Get your vacuum's brush roll spinning again with this replacement drive belt.",
			"Replacement belt designed for a secure fit and long-lasting performance.",
			"Restore agitator function with this durable replacement vacuum belt.",
		},
		features: []string{
			"A worn belt causes loss of brush roll rotation and reduced cleaning effectiveness. Regular belt replacement maintains peak carpet cleaning performance.",
			"Manufactured for a precise fit, this belt restores proper brush roll tension and rotation speed for effective dirt pickup.",
		},
		compatNote: "Fits %s.",
	},
	"hoses": {
		openers: []string{
			"Replace your worn or damaged vacuum hose with this durable replacement.",
			"Replacement hose built for flexible, reliable suction transfer.",
			"Restore full suction power with this quality replacement vacuum hose.",
		},
		features: []string{
			"Flexible yet durable construction maintains strong suction while resisting kinks and cracks through heavy commercial use.",
			"Designed to deliver consistent airflow from floor tool to collection system, with connections that lock securely in place.",
		},
		compatNote: "Compatible with %s.",
	},
	"motors": {
		openers: []string{
			"Bring your vacuum back to life with this replacement motor assembly.",
			"Replacement motor engineered for reliable suction power and extended service life.",
			"Restore original suction performance with this high-quality replacement vacuum motor.",
		},
		features: []string{
			"Precision-built to OEM specifications, this motor delivers consistent suction power and reliable operation in demanding commercial environments.",
			"Designed for heavy-duty use, this motor provides the airflow and suction your vacuum needs for effective cleaning.",
		},
		compatNote: "Fits %s. Confirm your motor model before installation.",
		specsNote:  "Approximate shipping weight: %.1f lbs.",
	},
	"brushes": {
		openers: []string{
			"Refresh your vacuum's cleaning power with this replacement brush.",
			"Replacement brush designed for effective agitation and long wear life.",
		},
		features: []string{
			"Restores proper carpet agitation for deeper dirt pickup and a fuller carpet finish.",
			"Durable bristles stand up to daily commercial use without losing their shape.",
		},
		compatNote: "Fits %s.",
	},
	"equipment": {
		openers: []string{
			"Professional-grade cleaning equipment built for daily commercial use.",
			"Dependable machine engineered for performance, serviceability, and operator comfort.",
		},
		features: []string{
			"Built around serviceable components so consumables and wear parts are easy to source and replace.",
			"Designed for demanding environments where uptime and cleaning results both matter.",
		},
		specsNote: "Approximate shipping weight: %.1f lbs.",
	},
	"parts-general": {
		openers: []string{
			"Keep your equipment in service with this genuine replacement part.",
			"Quality replacement part manufactured to fit and function like the original.",
			"Extend the life of your machine with this dependable replacement component.",
		},
		features: []string{
			"Replacing worn components promptly prevents larger repairs and keeps your equipment performing as designed.",
			"Made to match the original specifications for a straightforward swap and reliable operation.",
		},
		packNote:   "Sold as a pack of %d.",
		compatNote: "Compatible with %s.",
	},
}

// templateKey maps a taxonomy path to the template family that best
// fits it. Unknown paths fall back to the general parts set.
func templateKey(productType string) string {
	pt := strings.ToLower(productType)
	switch {
	case strings.Contains(pt, "vacuum bag"):
		return "vacuum-bags"
	case strings.Contains(pt, "filter"):
		return "filters"
	case strings.Contains(pt, "belt"):
		return "belts"
	case strings.Contains(pt, "hose"), strings.Contains(pt, "fitting"):
		return "hoses"
	case strings.Contains(pt, "motor"), strings.Contains(pt, "electrical"):
		return "motors"
	case strings.Contains(pt, "brush"), strings.Contains(pt, "agitator"):
		return "brushes"
	case strings.Contains(pt, "vacuum") && !strings.Contains(pt, "part"),
		strings.Contains(pt, "equipment"),
		strings.Contains(pt, "machine"),
		strings.Contains(pt, "scrubber"),
		strings.Contains(pt, "extractor"):
		return "equipment"
	default:
		return "parts-general"
	}
}
