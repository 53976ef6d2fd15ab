package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBrand(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "exact brand", title: "Hoover Upright Vacuum Bag", want: "Hoover"},
		{name: "johnny vac spaced", title: "Johnny Vac PN55 Paper Bag", want: "JohnnyVac"},
		{name: "johnny vac joined", title: "JohnnyVac Hose Assembly", want: "JohnnyVac"},
		{name: "case insensitive", title: "ELECTROLUX canister filter", want: "Electrolux"},
		{name: "no brand", title: "Generic crevice tool", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractBrand(tt.title))
		})
	}
}

func TestExtractPackQuantity(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  int
	}{
		{name: "pack of n", title: "Vacuum Bags Pack of 3", want: 3},
		{name: "n-pack", title: "HEPA Filter 2-Pack", want: 2},
		{name: "box of n", title: "Paper Bags Box of 12", want: 12},
		{name: "per case", title: "Liners 24 per case", want: 24},
		{name: "no quantity", title: "Replacement Belt", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPackQuantity(tt.title))
		})
	}
}

func TestExtractSpecs(t *testing.T) {
	t.Run("weight converts to pounds", func(t *testing.T) {
		s := extractSpecs("Motor Assembly", "2.0", "", "", "")
		assert.Equal(t, 2.0, s.WeightKG)
		assert.Equal(t, 4.4, s.WeightLBS)
	})

	t.Run("dimensions with height", func(t *testing.T) {
		s := extractSpecs("Storage Bin", "", "30", "20", "10")
		assert.Equal(t, "30 x 20 x 10 cm", s.Dimensions)
	})

	t.Run("dimensions without height", func(t *testing.T) {
		s := extractSpecs("Floor Tool", "", "30.5", "20", "")
		assert.Equal(t, "30.5 x 20 cm", s.Dimensions)
	})

	t.Run("sizes from title", func(t *testing.T) {
		s := extractSpecs("12 inch Brush Roll 120V", "", "", "", "")
		assert.Equal(t, "12", s.SizeInches)
		assert.Equal(t, "120", s.Voltage)
	})

	t.Run("millimetres from title", func(t *testing.T) {
		s := extractSpecs("Hose Cuff 32mm", "", "", "", "")
		assert.Equal(t, "32", s.SizeMM)
	})

	t.Run("unparsable fields ignored", func(t *testing.T) {
		s := extractSpecs("Widget", "n/a", "", "20", "10")
		assert.Zero(t, s.WeightKG)
		assert.Empty(t, s.Dimensions)
	})
}

func TestExtractColor(t *testing.T) {
	assert.Equal(t, "Black", extractColor("Black Crush-Proof Hose"))
	assert.Equal(t, "Grey", extractColor("Wand assembly grey 32mm"))
	assert.Empty(t, extractColor("Blackout curtain rod"), "color must be a whole token")
	assert.Empty(t, extractColor("Replacement belt"))
}

func TestExtractMaterial(t *testing.T) {
	assert.Equal(t, "HEPA", extractMaterial("HEPA Exhaust Filter"))
	assert.Equal(t, "microfiber", extractMaterial("Microfiber cloth pad"))
	assert.Empty(t, extractMaterial("Replacement wheel"))
}

func TestExtractCompatibleModels(t *testing.T) {
	t.Run("for phrase and model token", func(t *testing.T) {
		models := extractCompatibleModels("Paper Bag for Electrolux LE2100")
		assert.Equal(t, []string{"Electrolux LE2100", "LE2100"}, models)
	})

	t.Run("dashed model numbers", func(t *testing.T) {
		models := extractCompatibleModels("Drive Belt XV-10 Replacement")
		assert.Equal(t, []string{"XV-10"}, models)
	})

	t.Run("stopword phrases skipped", func(t *testing.T) {
		models := extractCompatibleModels("Universal tool for all vacuums")
		assert.Empty(t, models)
	})

	t.Run("capped at three", func(t *testing.T) {
		models := extractCompatibleModels("Bag fits UH70120 UH70200 UH70400 UH70600")
		assert.Len(t, models, 3)
	})

	t.Run("no models", func(t *testing.T) {
		assert.Empty(t, extractCompatibleModels("Replacement gasket"))
	})
}
