package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"tradedeck/internal/ui"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Colors - amber/slate, the trade-counter look
var (
	primaryColor   = lipgloss.Color("#F0A34E")
	secondaryColor = lipgloss.Color("#7AA2F7")
	dimColor       = lipgloss.Color("#565F89")
	textColor      = lipgloss.Color("#C0CAF5")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(textColor)

	stageStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	containerStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// ASCII art logo - compact but distinctive
const logo = `
   ▀█▀ █▀█ ▄▀▄ █▀▄ █▀▀ █▀▄ █▀▀ ▄▀▀ █▄▀
    █  █▀▄ █▀█ █▄▀ ██▄ █▄▀ ██▄ ▀▄▄ █ █
`

// startupModel is the bubbletea model for the startup screen
type startupModel struct {
	spinner  spinner.Model
	progress progress.Model

	stage   string
	detail  string
	percent float64

	width  int
	height int
	ready  bool
	done   bool

	// Channel to receive updates from the main goroutine
	updates chan startupUpdate
}

type startupUpdate struct {
	stage   string
	detail  string
	percent float64
	done    bool
}

type updateMsg startupUpdate

func newStartupModel() *startupModel {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return &startupModel{
		spinner:  s,
		progress: p,
		stage:    "Starting",
		updates:  make(chan startupUpdate, 16),
	}
}

func (m *startupModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForUpdate(),
	)
}

func (m *startupModel) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		update := <-m.updates
		return updateMsg(update)
	}
}

func (m *startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case updateMsg:
		m.stage = msg.stage
		m.detail = msg.detail
		m.percent = msg.percent

		if msg.done {
			m.done = true
			return m, tea.Quit
		}

		return m, tea.Batch(
			m.progress.SetPercent(m.percent),
			m.waitForUpdate(),
		)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		// Allow quitting with ctrl+c
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *startupModel) View() string {
	if !m.ready {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")

	b.WriteString(m.progress.View())
	b.WriteString("\n")

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(stageStyle.Render(m.stage))
	if m.detail != "" {
		b.WriteString(" ")
		b.WriteString(statusStyle.Render(m.detail))
	}

	return containerStyle.Render(b.String())
}

// Send updates to the model
func (m *startupModel) sendUpdate(update startupUpdate) {
	select {
	case m.updates <- update:
	default:
		// Drop if channel is full
	}
}

// StartupDisplay wraps the bubbletea program for the startup animation
type StartupDisplay struct {
	program *tea.Program
	model   *startupModel
	done    chan struct{}
	mu      sync.Mutex
	stopped bool
}

// NewStartupDisplay creates a new startup display
func NewStartupDisplay(w io.Writer) *StartupDisplay {
	model := newStartupModel()

	// Use inline mode so it doesn't take over the whole screen
	program := tea.NewProgram(
		model,
		tea.WithOutput(w),
		tea.WithoutSignalHandler(), // We handle signals ourselves
	)

	d := &StartupDisplay{
		program: program,
		model:   model,
		done:    make(chan struct{}),
	}

	go func() {
		_, _ = program.Run()
		close(d.done)
	}()

	// Give the program a moment to start
	time.Sleep(10 * time.Millisecond)

	return d
}

// Stage implements ui.StartupReporter
func (d *StartupDisplay) Stage(stage ui.StartupStage, detail string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.model.sendUpdate(startupUpdate{
		stage:   stageToString(stage),
		detail:  detail,
		percent: stageProgress(stage),
	})
}

// Stop stops the startup display
func (d *StartupDisplay) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.mu.Unlock()

	// Send done signal
	d.model.sendUpdate(startupUpdate{done: true})

	// Wait for program to finish
	select {
	case <-d.done:
	case <-time.After(500 * time.Millisecond):
		d.program.Kill()
	}

	// Clear the line
	fmt.Print("\r\033[K")
}

func stageToString(stage ui.StartupStage) string {
	switch stage {
	case ui.StartupStageInit:
		return "Initializing"
	case ui.StartupStageVersionCheck:
		return "Checking version"
	case ui.StartupStageFindingSnapshot:
		return "Finding snapshot"
	case ui.StartupStageLoadingLeads:
		return "Loading leads"
	case ui.StartupStageWarmingAssistant:
		return "Warming assistant"
	case ui.StartupStageReady:
		return "Ready"
	default:
		return "Loading"
	}
}

// stageProgress maps a startup stage to bar completion.
func stageProgress(stage ui.StartupStage) float64 {
	if stage <= ui.StartupStageInit {
		return 0
	}
	if stage >= ui.StartupStageReady {
		return 1
	}
	return float64(stage) / float64(ui.StartupStageReady)
}
