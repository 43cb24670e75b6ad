package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tradedeck/internal/domain"
	"tradedeck/internal/ui/theme"
)

// Styles are functions rather than vars so a theme switch at runtime takes
// effect on the next render.

func styleAppHeader() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Text()).
		Background(t.Primary()).
		Bold(true).
		Padding(0, 1)
}

func styleStatsDim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleSelected() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Background(t.BackgroundSecondary()).
		Foreground(t.TextEmphasized()).
		Bold(true)
}

func styleRef() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent()).Bold(true)
}

func styleNormalText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func stylePane() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Current().BorderNormal())
}

func stylePaneFocused() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Current().BorderFocused())
}

func styleField() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true).
		Width(10)
}

func styleVal() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleQuote() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextEmphasized()).Bold(true)
}

// Footer bar styles

func styleKeyPill() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Background(t.Primary()).
		Foreground(t.Text()).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleFooterMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

// Toast styles

func styleErrorToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error()).
		Foreground(t.Text()).
		Padding(0, 1)
}

func styleSuccessToast() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Success()).
		Foreground(t.Text()).
		Padding(0, 1)
}

// Gate styles

func styleGateLoading() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleGateFailedPanel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Error()).
		Padding(0, 1)
}

func styleGateFailedTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error()).Bold(true)
}

func styleGateFailedText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text())
}

func styleGateHint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleGateBanner() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Background(t.Warning()).
		Foreground(t.Background()).
		Bold(true).
		Padding(0, 1)
}

// statusStyle maps a lead status to its list row style.
func statusStyle(s domain.Status) lipgloss.Style {
	t := theme.Current()
	switch s {
	case domain.StatusNew:
		return lipgloss.NewStyle().Foreground(t.Info()).Bold(true)
	case domain.StatusQuoted:
		return lipgloss.NewStyle().Foreground(t.Secondary())
	case domain.StatusAccepted, domain.StatusInProgress:
		return lipgloss.NewStyle().Foreground(t.Success())
	case domain.StatusCompleted:
		return lipgloss.NewStyle().Foreground(t.TextMuted())
	case domain.StatusWithdrawn:
		return lipgloss.NewStyle().Foreground(t.Error())
	default:
		return lipgloss.NewStyle().Foreground(t.Text())
	}
}

func statusIcon(s domain.Status) string {
	switch s {
	case domain.StatusNew:
		return "●"
	case domain.StatusQuoted:
		return "◇"
	case domain.StatusAccepted:
		return "◆"
	case domain.StatusInProgress:
		return "▶"
	case domain.StatusCompleted:
		return "✔"
	case domain.StatusWithdrawn:
		return "✘"
	default:
		return "·"
	}
}

func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" || style == "dark" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
