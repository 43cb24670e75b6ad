package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tradedeck/internal/assist"
	"tradedeck/internal/config"
	"tradedeck/internal/debug"
	"tradedeck/internal/domain"
	"tradedeck/internal/market"
	"tradedeck/internal/ui/theme"
)

const (
	minViewportWidth       = 20
	minViewportHeight      = 5
	minListHeight          = 5
	defaultRefreshInterval = 10 * time.Second
	refreshFlashDuration   = 2 * time.Second
	toastDuration          = 2 * time.Second
	manualRefreshMinGap    = time.Second
	themeSaveDelay         = 300 * time.Millisecond
)

// Config configures the UI application.
type Config struct {
	RefreshInterval time.Duration
	AutoRefresh     bool
	DBPath          string // empty in demo mode; disables auto-refresh
	OutputFormat    string
	StartupReporter StartupReporter
	Store           market.Store
	Assistant       assist.Service // nil disables the assistant panel
	BuilderName     string
	Version         string
}

// App implements the Bubble Tea model for the Tradedeck dashboard.
type App struct {
	leads       []domain.Lead
	cursor      int
	builderName string

	viewport    viewport.Model
	ShowDetails bool
	focus       FocusArea
	ready       bool
	detailRef   string
	detailDirty bool

	gate *Gate

	width            int
	height           int
	refreshInterval  time.Duration
	autoRefresh      bool
	dbPath           string
	lastDBModTime    time.Time
	lastRefreshStats string
	showRefreshFlash bool
	refreshInFlight  bool
	lastRefreshTime  time.Time
	outputFormat     string
	version          string

	store           market.Store
	refreshThrottle *Throttler
	themeSave       *Debouncer

	// clipboardWriteAll is a test hook over clipboard.WriteAll.
	clipboardWriteAll func(string) error

	copyToastText    string
	copyToastShownAt time.Time
	themeToastText   string
	themeToastAt     time.Time
	errorToastText   string
	errorToastAt     time.Time
}

// NewApp creates a new UI app instance from configuration. The store must be
// ready; lead loading happens here so startup progress can be reported.
func NewApp(cfg Config) (*App, error) {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("app requires a lead store")
	}

	reporter := cfg.StartupReporter
	if reporter != nil {
		reporter.Stage(StartupStageLoadingLeads, "Loading leads...")
	}
	leads, err := cfg.Store.Leads(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load leads: %w", err)
	}
	if reporter != nil {
		reporter.Stage(StartupStageLoadingLeads, fmt.Sprintf("Loaded %s", leadCountLabel(len(leads))))
	}

	var (
		dbModTime   time.Time
		autoRefresh = cfg.AutoRefresh
	)
	if cfg.DBPath != "" {
		if mt, err := latestSnapshotModTime(cfg.DBPath); err == nil {
			dbModTime = mt
		} else {
			debug.Logf("app: snapshot stat failed, auto-refresh disabled: %v", err)
			autoRefresh = false
		}
	} else {
		autoRefresh = false
	}

	var gate *Gate
	if cfg.Assistant != nil {
		if reporter != nil {
			reporter.Stage(StartupStageWarmingAssistant, "Starting assistant warm-up...")
		}
		gate = NewGate(cfg.Assistant)
	}

	builderName := strings.TrimSpace(cfg.BuilderName)
	if builderName == "" {
		builderName = market.GuestBuilderName
	}

	app := &App{
		leads:             leads,
		builderName:       builderName,
		focus:             FocusList,
		gate:              gate,
		refreshInterval:   cfg.RefreshInterval,
		autoRefresh:       autoRefresh,
		dbPath:            cfg.DBPath,
		lastDBModTime:     dbModTime,
		outputFormat:      cfg.OutputFormat,
		version:           cfg.Version,
		store:             cfg.Store,
		refreshThrottle:   NewThrottler(manualRefreshMinGap),
		themeSave:         NewDebouncer(themeSaveDelay),
		clipboardWriteAll: clipboard.WriteAll,
	}
	if reporter != nil {
		reporter.Stage(StartupStageReady, "Ready!")
	}
	return app, nil
}

func (m *App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.gate != nil {
		cmds = append(cmds, m.gate.Init())
	}
	if m.autoRefresh && m.refreshInterval > 0 {
		cmds = append(cmds, scheduleTick(m.refreshInterval))
	}
	return tea.Batch(cmds...)
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tickMsg:
		if !m.autoRefresh || m.refreshInterval <= 0 {
			return m, nil
		}
		cmds := []tea.Cmd{}
		if refreshCmd := m.checkDBForChanges(); refreshCmd != nil {
			cmds = append(cmds, refreshCmd)
		}
		cmds = append(cmds, scheduleTick(m.refreshInterval))
		return m, tea.Batch(cmds...)

	case refreshCompleteMsg:
		m.refreshInFlight = false
		if msg.err != nil {
			return m, m.showErrorToast(fmt.Sprintf("refresh failed: %v", msg.err))
		}
		m.applyRefresh(msg)
		return m, nil

	case statusUpdatedMsg:
		if msg.err != nil {
			return m, m.showErrorToast(msg.err.Error())
		}
		debug.Logf("app: lead %s -> %s", msg.ref, msg.to)
		m.refreshInFlight = true
		return m, performRefresh(m.store, m.dbPath)

	case gateResultMsg, spinner.TickMsg:
		if m.gate != nil {
			return m, m.gate.Update(msg)
		}
		return m, nil

	case errorToastTickMsg:
		if m.errorToastText == "" {
			return m, nil
		}
		if time.Since(m.errorToastAt) >= toastDuration {
			m.errorToastText = ""
			return m, nil
		}
		return m, scheduleErrorToastTick()

	case copyToastTickMsg:
		if m.copyToastText == "" {
			return m, nil
		}
		if time.Since(m.copyToastShownAt) >= toastDuration {
			m.copyToastText = ""
			return m, nil
		}
		return m, scheduleCopyToastTick()

	case themeToastTickMsg:
		if m.themeToastText == "" {
			return m, nil
		}
		if time.Since(m.themeToastAt) >= toastDuration {
			m.themeToastText = ""
			return m, nil
		}
		return m, scheduleThemeToastTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		rawViewportWidth := int(float64(msg.Width)*0.45) - 2
		maxViewportWidth := msg.Width - minViewportWidth - 4
		m.viewport.Width = clampDimension(rawViewportWidth, minViewportWidth, maxViewportWidth)

		rawViewportHeight := msg.Height - 6
		maxViewportHeight := msg.Height - 2
		m.viewport.Height = clampDimension(rawViewportHeight, minViewportHeight, maxViewportHeight)
		m.detailDirty = true
		m.updateViewportContent()

	case tea.KeyMsg:
		if handled, detailCmd := m.handleDetailNavigationKey(msg); handled {
			return m, detailCmd
		}
		return m.handleKey(msg)

	default:
		if m.ShowDetails && m.focus == FocusDetails {
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, cmd
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.ShowDetails {
			if m.focus == FocusList {
				m.focus = FocusDetails
			} else {
				m.focus = FocusList
			}
		}
	case "shift+tab":
		if m.ShowDetails {
			if m.focus == FocusDetails {
				m.focus = FocusList
			} else {
				m.focus = FocusDetails
			}
		}
	case "enter":
		m.ShowDetails = !m.ShowDetails
		m.focus = FocusList
		m.detailDirty = true
		m.updateViewportContent()
	case "r":
		if refreshCmd := m.forceRefresh(); refreshCmd != nil {
			return m, refreshCmd
		}
	case "j", "down":
		m.cursor++
		m.clampCursor()
		m.updateViewportContent()
	case "k", "up":
		m.cursor--
		m.clampCursor()
		m.updateViewportContent()
	case "home", "g":
		m.cursor = 0
		m.clampCursor()
		m.updateViewportContent()
	case "end", "G":
		m.cursor = len(m.leads) - 1
		m.clampCursor()
		m.updateViewportContent()
	case "pgdown", "ctrl+f":
		m.cursor += clampDimension(m.listHeight(), 1, len(m.leads))
		m.clampCursor()
		m.updateViewportContent()
	case "pgup", "ctrl+b":
		m.cursor -= clampDimension(m.listHeight(), 1, len(m.leads))
		m.clampCursor()
		m.updateViewportContent()
	case "y":
		return m, m.copySelectedRef()
	case "t":
		name := theme.CycleTheme()
		m.themeSave.Call(func() {
			if err := config.SaveTheme(name); err != nil {
				debug.Logf("app: save theme: %v", err)
			}
		})
		m.themeToastText = "Theme: " + name
		m.themeToastAt = time.Now()
		m.detailDirty = true
		m.updateViewportContent()
		return m, scheduleThemeToastTick()
	case "a":
		if m.gate != nil && m.gate.Phase() == gateFailed {
			return m, m.gate.Retry()
		}
	case "s":
		return m, m.advanceSelectedLead()
	case "x":
		return m, m.withdrawSelectedLead()
	}
	return m, nil
}

// copySelectedRef puts the selected lead reference on the system clipboard.
func (m *App) copySelectedRef() tea.Cmd {
	lead := m.selectedLead()
	if lead == nil {
		return nil
	}
	if err := m.clipboardWriteAll(lead.Ref); err != nil {
		return m.showErrorToast(fmt.Sprintf("copy failed: %v", err))
	}
	m.copyToastText = "Copied " + lead.Ref
	m.copyToastShownAt = time.Now()
	return scheduleCopyToastTick()
}

// advanceSelectedLead moves the lead one step forward in the pipeline.
func (m *App) advanceSelectedLead() tea.Cmd {
	lead := m.selectedLead()
	if lead == nil {
		return nil
	}
	to, ok := nextStatus(lead.Status)
	if !ok {
		return m.showErrorToast(fmt.Sprintf("%s is %s; nothing to advance", lead.Ref, lead.Status.Label()))
	}
	return updateStatusCmd(m.store, lead.Ref, to)
}

func (m *App) withdrawSelectedLead() tea.Cmd {
	lead := m.selectedLead()
	if lead == nil {
		return nil
	}
	if lead.Status.IsTerminal() {
		return m.showErrorToast(fmt.Sprintf("%s is already %s", lead.Ref, lead.Status.Label()))
	}
	return updateStatusCmd(m.store, lead.Ref, domain.StatusWithdrawn)
}

func updateStatusCmd(store market.Store, ref string, to domain.Status) tea.Cmd {
	return func() tea.Msg {
		err := store.UpdateLeadStatus(context.Background(), ref, to)
		return statusUpdatedMsg{ref: ref, to: to, err: err}
	}
}

func (m *App) showErrorToast(text string) tea.Cmd {
	m.errorToastText = text
	m.errorToastAt = time.Now()
	return scheduleErrorToastTick()
}

func (m *App) detailFocusActive() bool {
	return m.ShowDetails && m.focus == FocusDetails
}

func (m *App) handleDetailNavigationKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !m.detailFocusActive() {
		return false, nil
	}

	switch msg.String() {
	case "home", "g":
		m.viewport.GotoTop()
		return true, nil
	case "end", "G":
		m.viewport.GotoBottom()
		return true, nil
	case "ctrl+f":
		_ = m.viewport.PageDown()
		return true, nil
	case "ctrl+b":
		_ = m.viewport.PageUp()
		return true, nil
	}

	if isDetailScrollKey(msg) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return true, cmd
	}

	return false, nil
}

func isDetailScrollKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "j", "k", "down", "up", "pgdown", "pgup", "f", "b", "d", "u", "ctrl+d", "ctrl+u", "space", " ":
		return true
	}
	return msg.Type == tea.KeySpace
}

// Shutdown cancels background timers owned by the app.
func (m *App) Shutdown() {
	m.themeSave.Cancel()
	_ = os.Stdout.Sync()
}
