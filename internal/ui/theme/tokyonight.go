package theme

import "github.com/charmbracelet/lipgloss"

// Tokyo Night color scheme.
func init() {
	RegisterTheme("tokyonight", palette{
		primary:             lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		secondary:           lipgloss.AdaptiveColor{Dark: "#c099ff", Light: "#9854f1"},
		accent:              lipgloss.AdaptiveColor{Dark: "#ff966c", Light: "#b15c00"},
		errorC:              lipgloss.AdaptiveColor{Dark: "#ff757f", Light: "#f52a65"},
		warning:             lipgloss.AdaptiveColor{Dark: "#ffc777", Light: "#8c6c3e"},
		success:             lipgloss.AdaptiveColor{Dark: "#c3e88d", Light: "#587539"},
		info:                lipgloss.AdaptiveColor{Dark: "#7dcfff", Light: "#0db9d7"},
		text:                lipgloss.AdaptiveColor{Dark: "#c8d3f5", Light: "#3760bf"},
		textMuted:           lipgloss.AdaptiveColor{Dark: "#636da6", Light: "#848cb5"},
		textEmphasized:      lipgloss.AdaptiveColor{Dark: "#ffc777", Light: "#8c6c3e"},
		background:          lipgloss.AdaptiveColor{Dark: "#222436", Light: "#e1e2e7"},
		backgroundSecondary: lipgloss.AdaptiveColor{Dark: "#2f334d", Light: "#c8c9ce"},
		backgroundDark:      lipgloss.AdaptiveColor{Dark: "#1e2030", Light: "#d5d6db"},
		borderNormal:        lipgloss.AdaptiveColor{Dark: "#3b4261", Light: "#a8aecb"},
		borderFocused:       lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		borderDim:           lipgloss.AdaptiveColor{Dark: "#292e42", Light: "#c8c9ce"},
	})
}
