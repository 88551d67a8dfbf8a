// Package theme provides the color palette and Lip Gloss styles for the
// tabview TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// UI colors.
var (
	TextPrimary   = lipgloss.Color("#FFFFFF")
	TextSecondary = lipgloss.Color("#A0AEC0")
	TextMuted     = lipgloss.Color("#6C7A89")
	Accent        = lipgloss.Color("#1D63ED")
	Border        = lipgloss.Color("#2D3748")
	ErrorRed      = lipgloss.Color("#E74C3C")
)

// TabPlaceholder stands in for a pane that supplied no display label.
const TabPlaceholder = "…"

// Header and tab strip styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(TextSecondary)

	// Active tab label, rendered in reverse video so it stands out from
	// the rest of the strip.
	TabActiveStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)
)

// Footer and status styles.
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorRed).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().Padding(0, 1)
)
