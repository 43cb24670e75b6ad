package ui

import (
	"time"

	"tradedeck/internal/config"
	"tradedeck/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct{}

type refreshCompleteMsg struct {
	leads     []domain.Lead
	dbModTime time.Time
	err       error
}

func scheduleTick(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = time.Duration(config.GetInt(config.KeyAutoRefreshSeconds)) * time.Second
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{} })
}

type errorToastTickMsg struct{}

func scheduleErrorToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return errorToastTickMsg{}
	})
}

type copyToastTickMsg struct{}

func scheduleCopyToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return copyToastTickMsg{}
	})
}

type themeToastTickMsg struct{}

func scheduleThemeToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return themeToastTickMsg{}
	})
}

type statusUpdatedMsg struct {
	ref string
	to  domain.Status
	err error
}
