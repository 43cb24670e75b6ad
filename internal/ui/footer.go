package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar.
type footerHint struct {
	key  string // Short symbol: "↑↓", "⏎", "y", etc.
	desc string // Short description: "Navigate", "Copy", etc.
}

// Global footer hints (always shown)
var globalFooterHints = []footerHint{
	{"y", "Copy ref"},
	{"r", "Refresh"},
	{"t", "Theme"},
	{"q", "Quit"},
}

// Context-specific footer hints
var listFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"⏎", "Detail"},
	{"s", "Advance"},
	{"x", "Withdraw"},
}

var detailsFooterHints = []footerHint{
	{"↑↓", "Scroll"},
	{"⇥", "Focus"},
}

// renderFooter renders the footer bar with pill-style key hints.
func (m *App) renderFooter() string {
	var hints []footerHint

	switch m.focus {
	case FocusList:
		hints = append(hints, listFooterHints...)
	case FocusDetails:
		hints = append(hints, detailsFooterHints...)
	}
	if m.gate != nil && m.gate.Phase() == gateFailed {
		hints = append(hints, footerHint{"a", "Retry assistant"})
	}
	hints = append(hints, globalFooterHints...)

	builderText := "Builder: " + m.builderName
	builderRendered := styleFooterMuted().Render(builderText)
	builderWidth := lipgloss.Width(builderRendered)
	availableWidth := m.width - builderWidth - 4

	hints = trimHintsToFit(hints, availableWidth)

	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}

	left := strings.Join(parts, "  ")
	leftWidth := lipgloss.Width(left)

	spacing := m.width - leftWidth - builderWidth
	if spacing < 2 {
		spacing = 2
	}

	return left + strings.Repeat(" ", spacing) + builderRendered
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// trimHintsToFit progressively removes hints to fit available width.
// Removes context-specific hints first, then global hints from end.
func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	globalCount := len(globalFooterHints)

	for len(hints) > 0 {
		if renderHintsWidth(hints) <= availableWidth {
			break
		}
		if len(hints) > globalCount {
			hints = hints[1:]
		} else {
			hints = hints[:len(hints)-1]
		}
	}
	return hints
}

// renderHintsWidth calculates the visual width of rendered hints.
func renderHintsWidth(hints []footerHint) int {
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}
