package theme

import "github.com/charmbracelet/lipgloss"

// Dracula color scheme.
func init() {
	RegisterTheme("dracula", palette{
		primary:             lipgloss.AdaptiveColor{Dark: "#bd93f9", Light: "#7c3aed"},
		secondary:           lipgloss.AdaptiveColor{Dark: "#ff79c6", Light: "#d6409f"},
		accent:              lipgloss.AdaptiveColor{Dark: "#8be9fd", Light: "#0e7490"},
		errorC:              lipgloss.AdaptiveColor{Dark: "#ff5555", Light: "#dc2626"},
		warning:             lipgloss.AdaptiveColor{Dark: "#ffb86c", Light: "#b45309"},
		success:             lipgloss.AdaptiveColor{Dark: "#50fa7b", Light: "#15803d"},
		info:                lipgloss.AdaptiveColor{Dark: "#8be9fd", Light: "#0369a1"},
		text:                lipgloss.AdaptiveColor{Dark: "#f8f8f2", Light: "#282a36"},
		textMuted:           lipgloss.AdaptiveColor{Dark: "#6272a4", Light: "#6b7280"},
		textEmphasized:      lipgloss.AdaptiveColor{Dark: "#f1fa8c", Light: "#854d0e"},
		background:          lipgloss.AdaptiveColor{Dark: "#282a36", Light: "#f8f8f2"},
		backgroundSecondary: lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#e2e2e6"},
		backgroundDark:      lipgloss.AdaptiveColor{Dark: "#21222c", Light: "#ececf0"},
		borderNormal:        lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#c4c4cc"},
		borderFocused:       lipgloss.AdaptiveColor{Dark: "#bd93f9", Light: "#7c3aed"},
		borderDim:           lipgloss.AdaptiveColor{Dark: "#343746", Light: "#d9d9e0"},
	})
}
