package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tradedeck/internal/assist"
	"tradedeck/internal/debug"
)

// gatePhase is the readiness state of the assistant subsystem. Loading is
// initial; the other three are terminal until a remount via Retry.
type gatePhase int

const (
	gateLoading gatePhase = iota
	gateReady
	gateDegraded
	gateFailed
)

func (p gatePhase) String() string {
	switch p {
	case gateLoading:
		return "loading"
	case gateReady:
		return "ready"
	case gateDegraded:
		return "degraded"
	case gateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// gateResultMsg carries the outcome of one warm-up sequence. The generation
// lets the gate discard results from a sequence that was superseded by a
// remount before it finished.
type gateResultMsg struct {
	generation int
	phase      gatePhase
	message    string
	report     assist.HealthReport
}

// Gate runs the assistant warm-up sequence and decides whether the assistant
// panel may render. It never times out on its own; the service's calls carry
// their own deadlines.
type Gate struct {
	service    assist.Service
	generation int
	phase      gatePhase
	message    string
	report     assist.HealthReport
	spinner    spinner.Model
}

// NewGate creates a gate over the given service, in the Loading phase.
func NewGate(service assist.Service) *Gate {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	return &Gate{
		service: service,
		spinner: sp,
	}
}

// Init starts the warm-up sequence for the current mount.
func (g *Gate) Init() tea.Cmd {
	return tea.Batch(g.spinner.Tick, runGateSequence(g.service, g.generation))
}

// runGateSequence invokes Initialize then CheckHealth in order. CheckHealth
// is never reached when Initialize fails. Every failure becomes a message;
// nothing escapes as a panic or unhandled error.
func runGateSequence(service assist.Service, generation int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := service.Initialize(ctx); err != nil {
			return gateResultMsg{generation: generation, phase: gateFailed, message: err.Error()}
		}
		report, err := service.CheckHealth(ctx)
		if err != nil {
			// An unverifiable health state is treated as no-go, same as an
			// initialize failure.
			return gateResultMsg{generation: generation, phase: gateFailed, message: err.Error()}
		}
		if !report.Healthy {
			return gateResultMsg{
				generation: generation,
				phase:      gateDegraded,
				message:    report.Message(),
				report:     report.Clone(),
			}
		}
		return gateResultMsg{generation: generation, phase: gateReady, report: report.Clone()}
	}
}

// Update handles gate messages. Returns a follow-up command or nil.
func (g *Gate) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case gateResultMsg:
		if msg.generation != g.generation {
			debug.Logf("gate: discarding stale result (gen %d, current %d)", msg.generation, g.generation)
			return nil
		}
		if g.phase != gateLoading {
			// The phase transitions exactly once per mount; a late duplicate
			// cannot move it again.
			return nil
		}
		g.phase = msg.phase
		g.message = msg.message
		g.report = msg.report
		debug.Logf("gate: phase=%s message=%q", g.phase, g.message)
		return nil
	case spinner.TickMsg:
		if g.phase != gateLoading {
			return nil
		}
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)
		return cmd
	}
	return nil
}

// Retry discards the current mount entirely and starts a fresh sequence
// under a new generation. Any in-flight result from the old mount will be
// ignored when it lands.
func (g *Gate) Retry() tea.Cmd {
	g.generation++
	g.phase = gateLoading
	g.message = ""
	g.report = assist.HealthReport{}
	return tea.Batch(g.spinner.Tick, runGateSequence(g.service, g.generation))
}

// Phase returns the current readiness phase.
func (g *Gate) Phase() gatePhase {
	return g.phase
}

// Message returns the failure or degradation text, empty when none.
func (g *Gate) Message() string {
	return g.message
}

// Report returns a copy of the last health report.
func (g *Gate) Report() assist.HealthReport {
	return g.report.Clone()
}

// ShowChildren reports whether gated content may render at all.
func (g *Gate) ShowChildren() bool {
	return g.phase == gateReady || g.phase == gateDegraded
}

// View renders the gate around the given child content, constrained to width.
func (g *Gate) View(children string, width int) string {
	switch g.phase {
	case gateLoading:
		return styleGateLoading().Render(g.spinner.View() + " Warming up assistant...")
	case gateFailed:
		body := styleGateFailedTitle().Render("Assistant unavailable") + "\n" +
			styleGateFailedText().Render(g.message) + "\n" +
			styleGateHint().Render("[ a ] Retry")
		return styleGateFailedPanel().Width(clampDimension(width, 1, width)).Render(body)
	case gateDegraded:
		banner := styleGateBanner().Width(clampDimension(width, 1, width)).
			Render("⚠ " + g.message)
		return lipgloss.JoinVertical(lipgloss.Left, banner, children)
	default:
		return children
	}
}
