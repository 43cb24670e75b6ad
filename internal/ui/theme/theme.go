// Package theme provides a semantic color system for the Tradedeck UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the 16 semantic colors for the Tradedeck UI.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor   // Main accent (focused borders, header bg)
	Secondary() lipgloss.AdaptiveColor // Secondary accent (field labels)
	Accent() lipgloss.AdaptiveColor    // Highlights (lead refs, quote amounts)

	// Status colors
	Error() lipgloss.AdaptiveColor   // Failed startup, withdrawn leads
	Warning() lipgloss.AdaptiveColor // Degraded banner, stale data
	Success() lipgloss.AdaptiveColor // Completed leads, healthy assistant
	Info() lipgloss.AdaptiveColor    // Informational highlights

	// Text colors
	Text() lipgloss.AdaptiveColor           // Primary text
	TextMuted() lipgloss.AdaptiveColor      // De-emphasized text
	TextEmphasized() lipgloss.AdaptiveColor // Bold/important text

	// Background colors
	Background() lipgloss.AdaptiveColor          // Main background
	BackgroundSecondary() lipgloss.AdaptiveColor // Selected rows, elevated surfaces
	BackgroundDarker() lipgloss.AdaptiveColor    // Pills, badges

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor  // Default borders
	BorderFocused() lipgloss.AdaptiveColor // Active/focused borders
	BorderDim() lipgloss.AdaptiveColor     // Subtle borders
}

// palette is a concrete Theme backed by a fixed color table.
type palette struct {
	primary, secondary, accent                      lipgloss.AdaptiveColor
	errorC, warning, success, info                  lipgloss.AdaptiveColor
	text, textMuted, textEmphasized                 lipgloss.AdaptiveColor
	background, backgroundSecondary, backgroundDark lipgloss.AdaptiveColor
	borderNormal, borderFocused, borderDim          lipgloss.AdaptiveColor
}

func (p palette) Primary() lipgloss.AdaptiveColor             { return p.primary }
func (p palette) Secondary() lipgloss.AdaptiveColor           { return p.secondary }
func (p palette) Accent() lipgloss.AdaptiveColor              { return p.accent }
func (p palette) Error() lipgloss.AdaptiveColor               { return p.errorC }
func (p palette) Warning() lipgloss.AdaptiveColor             { return p.warning }
func (p palette) Success() lipgloss.AdaptiveColor             { return p.success }
func (p palette) Info() lipgloss.AdaptiveColor                { return p.info }
func (p palette) Text() lipgloss.AdaptiveColor                { return p.text }
func (p palette) TextMuted() lipgloss.AdaptiveColor           { return p.textMuted }
func (p palette) TextEmphasized() lipgloss.AdaptiveColor      { return p.textEmphasized }
func (p palette) Background() lipgloss.AdaptiveColor          { return p.background }
func (p palette) BackgroundSecondary() lipgloss.AdaptiveColor { return p.backgroundSecondary }
func (p palette) BackgroundDarker() lipgloss.AdaptiveColor    { return p.backgroundDark }
func (p palette) BorderNormal() lipgloss.AdaptiveColor        { return p.borderNormal }
func (p palette) BorderFocused() lipgloss.AdaptiveColor       { return p.borderFocused }
func (p palette) BorderDim() lipgloss.AdaptiveColor           { return p.borderDim }
