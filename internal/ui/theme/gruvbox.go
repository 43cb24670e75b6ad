package theme

import "github.com/charmbracelet/lipgloss"

// Gruvbox color scheme.
func init() {
	RegisterTheme("gruvbox", palette{
		primary:             lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"},
		secondary:           lipgloss.AdaptiveColor{Dark: "#d3869b", Light: "#8f3f71"},
		accent:              lipgloss.AdaptiveColor{Dark: "#fe8019", Light: "#af3a03"},
		errorC:              lipgloss.AdaptiveColor{Dark: "#fb4934", Light: "#9d0006"},
		warning:             lipgloss.AdaptiveColor{Dark: "#fabd2f", Light: "#b57614"},
		success:             lipgloss.AdaptiveColor{Dark: "#b8bb26", Light: "#79740e"},
		info:                lipgloss.AdaptiveColor{Dark: "#8ec07c", Light: "#427b58"},
		text:                lipgloss.AdaptiveColor{Dark: "#ebdbb2", Light: "#3c3836"},
		textMuted:           lipgloss.AdaptiveColor{Dark: "#928374", Light: "#7c6f64"},
		textEmphasized:      lipgloss.AdaptiveColor{Dark: "#fabd2f", Light: "#b57614"},
		background:          lipgloss.AdaptiveColor{Dark: "#282828", Light: "#fbf1c7"},
		backgroundSecondary: lipgloss.AdaptiveColor{Dark: "#3c3836", Light: "#ebdbb2"},
		backgroundDark:      lipgloss.AdaptiveColor{Dark: "#1d2021", Light: "#f2e5bc"},
		borderNormal:        lipgloss.AdaptiveColor{Dark: "#504945", Light: "#bdae93"},
		borderFocused:       lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"},
		borderDim:           lipgloss.AdaptiveColor{Dark: "#32302f", Light: "#d5c4a1"},
	})
}
