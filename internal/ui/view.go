package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tradedeck/internal/format"
)

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	assistant := m.renderAssistantPanel()
	assistantHeight := 0
	if assistant != "" {
		assistantHeight = lipgloss.Height(assistant)
	}

	listHeight := m.listHeightWith(assistantHeight)
	listStr := m.renderLeadList(listHeight)

	var mainBody string
	if m.ShowDetails {
		leftStyle := stylePane()
		rightStyle := stylePane()
		if m.focus == FocusList {
			leftStyle = stylePaneFocused()
		} else {
			rightStyle = stylePaneFocused()
		}

		leftWidth := m.width - m.viewport.Width - 4
		if leftWidth < 1 {
			leftWidth = 1
		}
		rightWidth := m.viewport.Width
		if rightWidth < 1 {
			rightWidth = 1
		}

		left := leftStyle.Width(leftWidth).Height(listHeight).Render(listStr)
		right := rightStyle.Width(rightWidth).Height(listHeight).Render(m.viewport.View())
		mainBody = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		singleWidth := m.width - 2
		if singleWidth < 1 {
			singleWidth = 1
		}
		mainBody = stylePane().Width(singleWidth).Height(listHeight).Render(listStr)
	}

	sections := []string{header, mainBody}
	if assistant != "" {
		sections = append(sections, assistant)
	}
	sections = append(sections, m.renderFooter())
	view := strings.Join(sections, "\n")

	if m.errorToastText == "" && m.infoToast() == "" {
		return view
	}
	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, view)
	if m.errorToastText != "" {
		canvas.topOverlay(styleErrorToast().Render(m.errorToastText), 1)
	}
	if toast := m.infoToast(); toast != "" {
		canvas.bottomRightOverlay(toast, 1)
	}
	return canvas.Render()
}

// listHeight is the row budget of the lead list with the current layout.
func (m *App) listHeight() int {
	assistantHeight := 0
	if assistant := m.renderAssistantPanel(); assistant != "" {
		assistantHeight = lipgloss.Height(assistant)
	}
	return m.listHeightWith(assistantHeight)
}

func (m *App) listHeightWith(assistantHeight int) int {
	return clampDimension(m.height-4-assistantHeight, minListHeight, m.height-2)
}

func (m *App) renderHeader() string {
	stats := m.Stats()
	status := fmt.Sprintf("Leads: %d", stats.Total)

	breakdown := []string{}
	if stats.New > 0 {
		breakdown = append(breakdown, fmt.Sprintf("%d new", stats.New))
	}
	if stats.Quoted > 0 {
		breakdown = append(breakdown, fmt.Sprintf("%d quoted", stats.Quoted))
	}
	if stats.InProgress > 0 {
		breakdown = append(breakdown, fmt.Sprintf("%d in progress", stats.InProgress))
	}
	if stats.Completed > 0 {
		breakdown = append(breakdown, fmt.Sprintf("%d completed", stats.Completed))
	}
	for _, part := range breakdown {
		status += " • " + part
	}
	if stats.EarnedPence > 0 {
		status += " • " + styleQuote().Render(format.PoundsCompact(stats.EarnedPence)+" earned")
	}

	if m.lastRefreshStats != "" {
		refreshStr := fmt.Sprintf(" Δ %s", m.lastRefreshStats)
		if m.showRefreshFlash && time.Since(m.lastRefreshTime) < refreshFlashDuration {
			refreshStr = styleSelected().Render(refreshStr)
		} else {
			refreshStr = styleStatsDim().Render(refreshStr)
			m.showRefreshFlash = false
		}
		status += " " + refreshStr
	}

	title := "TRADEDECK"
	if m.version != "" {
		title = fmt.Sprintf("TRADEDECK v%s", m.version)
	}
	return styleAppHeader().Render(title) + " " + status
}

// renderLeadList renders the visible window of lead rows around the cursor.
func (m *App) renderLeadList(height int) string {
	if len(m.leads) == 0 {
		return styleStatsDim().Render("No leads yet. New enquiries will appear here.")
	}
	if height < 1 {
		height = 1
	}

	top := 0
	if len(m.leads) > height {
		top = m.cursor - height/2
		if top < 0 {
			top = 0
		}
		if top+height > len(m.leads) {
			top = len(m.leads) - height
		}
	}

	rowWidth := m.width - 4
	if m.ShowDetails {
		rowWidth = m.width - m.viewport.Width - 6
	}
	if rowWidth < minViewportWidth {
		rowWidth = minViewportWidth
	}

	var rows []string
	for i := top; i < top+height && i < len(m.leads); i++ {
		rows = append(rows, m.renderLeadRow(i, rowWidth))
	}
	return strings.Join(rows, "\n")
}

func (m *App) renderLeadRow(index, width int) string {
	lead := m.leads[index]

	amount := format.PoundsCompact(lead.BudgetPence)
	if lead.QuotePence > 0 {
		amount = format.PoundsCompact(lead.QuotePence)
	}
	when := format.RelativeTime(lead.UpdatedAt)

	// ref + icon + amount + timestamp take the fixed columns; the title gets
	// whatever is left.
	fixed := lipgloss.Width(lead.Ref) + len(amount) + len(when) + 7
	titleWidth := width - fixed
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := truncate(lead.Title, titleWidth)

	line := fmt.Sprintf("%s %s %-*s %s %s",
		statusIcon(lead.Status), lead.Ref, titleWidth, title, amount, when)

	if index == m.cursor {
		return styleSelected().Render(line)
	}
	return statusStyle(lead.Status).Render(line)
}

// renderAssistantPanel renders the gated assistant section, or "" when the
// assistant is disabled.
func (m *App) renderAssistantPanel() string {
	if m.gate == nil {
		return ""
	}
	width := m.width - 4
	if width < minViewportWidth {
		width = minViewportWidth
	}

	children := m.assistantSummary()
	body := m.gate.View(children, width)

	panelWidth := m.width - 2
	if panelWidth < 1 {
		panelWidth = 1
	}
	return stylePane().Width(panelWidth).Render(body)
}

// assistantSummary is the child content shown once the gate admits rendering.
func (m *App) assistantSummary() string {
	line := styleNormalText().Render("Quote assistant online")
	report := m.gate.Report()
	if model, ok := report.Detail["model"].(string); ok && model != "" {
		line += styleStatsDim().Render(" · model " + model)
	}
	if stats := m.Stats(); stats.New > 0 {
		line += styleStatsDim().Render(fmt.Sprintf(" · %d new leads ready for quoting", stats.New))
	}
	return line
}

// infoToast is the success-style toast for the bottom-right corner. Errors
// get the top banner instead.
func (m *App) infoToast() string {
	switch {
	case m.copyToastText != "":
		return styleSuccessToast().Render(m.copyToastText)
	case m.themeToastText != "":
		return styleSuccessToast().Render(m.themeToastText)
	}
	return ""
}
