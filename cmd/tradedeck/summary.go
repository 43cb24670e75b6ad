package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tradedeck/internal/domain"
	"tradedeck/internal/format"

	"github.com/charmbracelet/lipgloss"
)

// ExitSummary holds data for the exit summary display shown when the TUI exits.
type ExitSummary struct {
	Version      string
	Builder      string
	StartTime    time.Time
	InitialStats domain.Stats
	EndStats     domain.Stats
}

// printExitSummary prints a formatted exit summary to the writer.
// This is displayed after the TUI exits alt screen mode.
func printExitSummary(w io.Writer, summary ExitSummary) {
	appStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	versionStyle := lipgloss.NewStyle().
		Foreground(dimColor)

	statsStyle := lipgloss.NewStyle().
		Foreground(textColor)

	duration := time.Since(summary.StartTime)
	durationStr := formatDuration(duration)

	versionStr := ""
	if summary.Version != "" {
		versionStr = versionStyle.Render(fmt.Sprintf(" v%s", summary.Version))
	}
	sessionStr := versionStyle.Render(fmt.Sprintf(" • %s session", durationStr))
	builderStr := ""
	if summary.Builder != "" {
		builderStr = versionStyle.Render(" • " + summary.Builder)
	}

	_, _ = fmt.Fprintln(w, appStyle.Render("Tradedeck")+versionStr+builderStr+sessionStr)
	_, _ = fmt.Fprintln(w, statsStyle.Render(statsLine(summary.EndStats, &summary.InitialStats)))
}

// printSnapshotSummary prints a one-shot pipeline summary, used by --summary.
func printSnapshotSummary(w io.Writer, builder string, stats domain.Stats) {
	if builder != "" {
		_, _ = fmt.Fprintln(w, builder)
	}
	_, _ = fmt.Fprintln(w, statsLine(stats, nil))
}

// statsLine formats a pipeline breakdown with optional inline session deltas.
// A nil initial suppresses all delta markers.
func statsLine(end domain.Stats, initial *domain.Stats) string {
	changePositiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#50FA7B")) // Green for completions
	changeNeutralStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8BE9FD")) // Cyan for neutral changes

	var start domain.Stats
	if initial != nil {
		start = *initial
	}

	var parts []string
	addPart := func(count int, label string, d int, style lipgloss.Style) {
		if count == 0 && d == 0 {
			return
		}
		part := fmt.Sprintf("%d %s", count, label)
		if initial != nil && d != 0 {
			part += " " + style.Render(formatDelta(d))
		}
		parts = append(parts, part)
	}

	addPart(end.New, "New", end.New-start.New, changeNeutralStyle)
	addPart(end.Quoted, "Quoted", end.Quoted-start.Quoted, changeNeutralStyle)
	addPart(end.InProgress, "In Progress", end.InProgress-start.InProgress, changeNeutralStyle)
	addPart(end.Completed, "Completed", end.Completed-start.Completed, changePositiveStyle)

	line := fmt.Sprintf("%d Leads", end.Total)
	if initial != nil && end.Total != start.Total {
		line += " " + changeNeutralStyle.Render(formatDelta(end.Total-start.Total))
	}
	if len(parts) > 0 {
		line += ": " + strings.Join(parts, ", ")
	}
	if end.EarnedPence > 0 {
		earned := format.Pounds(end.EarnedPence) + " earned"
		if initial != nil && end.EarnedPence > start.EarnedPence {
			earned += " " + changePositiveStyle.Render("(+"+format.Pounds(end.EarnedPence-start.EarnedPence)+")")
		}
		line += ", " + earned
	}
	return line
}

// clearLoadingScreen clears the loading screen area before entering alt screen.
// This ensures a clean terminal state when the TUI exits.
func clearLoadingScreen(w io.Writer) {
	// The loading screen uses approximately 8 lines (logo + padding + progress)
	const loadingScreenLines = 8
	for i := 0; i < loadingScreenLines; i++ {
		_, _ = fmt.Fprint(w, "\033[A") // Move cursor up one line
	}
	_, _ = fmt.Fprint(w, "\033[J") // Clear from cursor to end of screen
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// formatDelta formats a numeric delta with +/- prefix.
func formatDelta(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("(+%d)", delta)
	}
	return fmt.Sprintf("(%d)", delta)
}
