package helper

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayRight right-justifies overlay against width, with line occupying the
// remaining space to the left.
//
// Terminal text carries ANSI escape codes that take bytes but have zero
// visual width, so len() is useless here. We use lipgloss.Width() for visual
// width and ansi.Truncate() to cut at visual width while preserving the
// escape sequences.
//
// When line + overlay fit inside width, spaces pad the gap so the overlay's
// last character sits exactly at column width. When they don't, line is
// truncated to make room; when even the overlay alone is too wide, the
// overlay itself is truncated. The spacer never goes negative.
func OverlayRight(line, overlay string, width int) string {
	if width <= 0 {
		return line
	}
	if overlay == "" {
		return line
	}

	overlayWidth := lipgloss.Width(overlay)
	lineWidth := lipgloss.Width(line)
	padding := width - lineWidth - overlayWidth

	if padding >= 0 {
		return line + strings.Repeat(" ", padding) + overlay
	}

	remaining := width - overlayWidth
	if remaining > 0 {
		return ansi.Truncate(line, remaining, "") + overlay
	}
	return ansi.Truncate(overlay, width, "")
}
