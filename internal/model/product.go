// Package model defines the core domain models used throughout the application.
package model

// Language selects which localized text fields drive a classification run.
type Language string

// Supported feed languages.
const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
)

// Product is one record from the vendor feed. All fields are carried as
// raw strings; numeric fields are parsed where they are consumed so a
// malformed value degrades a single record instead of failing the run.
type Product struct {
	SKU            string
	TitleEN        string
	TitleFR        string
	DescriptionEN  string
	DescriptionFR  string
	SourceCategory string
	Price          string
	Weight         string
	Length         string
	Width          string
	Height         string
}

// Title returns the localized title for the given language.
func (p Product) Title(lang Language) string {
	if lang == LanguageFR {
		return p.TitleFR
	}
	return p.TitleEN
}

// Description returns the localized description for the given language.
func (p Product) Description(lang Language) string {
	if lang == LanguageFR {
		return p.DescriptionFR
	}
	return p.DescriptionEN
}
