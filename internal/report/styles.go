// Package report renders batch summaries and writes the review/skip CSV
// exports consumed by operators.
package report

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// SuccessColor indicates healthy categories and totals.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates the needs-review bucket.
	WarningColor = lipgloss.Color("#FFE66D")
	// SubtleColor indicates less prominent output.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)

	// WarningStyle formats needs-review lines.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// SubtleStyle formats per-row detail.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)
