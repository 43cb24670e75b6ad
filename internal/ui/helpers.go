package ui

import (
	"fmt"
	"strings"

	"tradedeck/internal/domain"
	"tradedeck/internal/format"
	"tradedeck/internal/validate"
)

type FocusArea int

const (
	FocusList FocusArea = iota
	FocusDetails
)

func clampDimension(value, minValue, maxValue int) int {
	if maxValue < 1 {
		maxValue = 1
	}
	if minValue < 1 {
		minValue = 1
	}
	if minValue > maxValue {
		minValue = maxValue
	}
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

func (m *App) clampCursor() {
	if len(m.leads) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.leads) {
		m.cursor = len(m.leads) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedLead returns the lead under the cursor, or nil when the list is
// empty.
func (m *App) selectedLead() *domain.Lead {
	if len(m.leads) == 0 || m.cursor < 0 || m.cursor >= len(m.leads) {
		return nil
	}
	return &m.leads[m.cursor]
}

// nextStatus returns the forward step in the pipeline for s, false when s is
// terminal or unknown. Withdrawal is a separate action, not a forward step.
func nextStatus(s domain.Status) (domain.Status, bool) {
	switch s {
	case domain.StatusNew:
		return domain.StatusQuoted, true
	case domain.StatusQuoted:
		return domain.StatusAccepted, true
	case domain.StatusAccepted:
		return domain.StatusInProgress, true
	case domain.StatusInProgress:
		return domain.StatusCompleted, true
	default:
		return domain.StatusUnknown, false
	}
}

// Stats tallies the currently loaded leads. The exit summary reads this
// after the program quits.
func (m *App) Stats() domain.Stats {
	return domain.ComputeStats(m.leads)
}

// updateViewportContent rebuilds the detail pane for the selected lead.
func (m *App) updateViewportContent() {
	lead := m.selectedLead()
	if lead == nil {
		m.detailRef = ""
		m.viewport.SetContent("No lead selected.")
		return
	}
	if m.detailRef == lead.Ref && !m.detailDirty {
		return
	}
	m.detailRef = lead.Ref
	m.detailDirty = false

	width := m.viewport.Width
	if width < minViewportWidth {
		width = minViewportWidth
	}

	var b strings.Builder
	b.WriteString(styleRef().Render(lead.Ref) + " " + styleNormalText().Render(lead.Title) + "\n\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styleField().Render(label) + " " + styleVal().Render(value) + "\n")
	}

	writeField("Status", lead.Status.Label())
	writeField("Category", lead.Category)
	writeField("Postcode", displayPostcode(lead.Postcode))
	writeField("Phone", displayPhone(lead.Phone))
	writeField("Budget", format.Pounds(lead.BudgetPence))
	if lead.QuotePence > 0 {
		writeField("Quote", format.Pounds(lead.QuotePence))
	}
	writeField("Created", format.ShortDate(lead.CreatedAt))
	writeField("Updated", format.RelativeTime(lead.UpdatedAt))

	if desc := strings.TrimSpace(lead.Description); desc != "" {
		render := buildMarkdownRenderer(m.outputFormat, width-2)
		b.WriteString("\n" + render(desc) + "\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

// displayPostcode shows the canonical form, falling back to the raw value
// when the snapshot holds something unparseable.
func displayPostcode(raw string) string {
	if normalized, err := validate.NormalizePostcode(raw); err == nil {
		return normalized
	}
	return raw
}

func displayPhone(raw string) string {
	normalized, err := validate.NormalizePhone(raw)
	if err != nil {
		return raw
	}
	if validate.IsMobile(normalized) {
		return normalized + " (mobile)"
	}
	return normalized
}

// truncate shortens s to fit width columns, appending an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func leadCountLabel(n int) string {
	if n == 1 {
		return "1 lead"
	}
	return fmt.Sprintf("%d leads", n)
}
