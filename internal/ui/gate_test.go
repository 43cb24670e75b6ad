package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tradedeck/internal/assist"
)

func TestMain(m *testing.M) {
	// Pin the color profile so rendered output is stable across terminals.
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

// runSequence executes the gate's warm-up command synchronously and feeds the
// result back, the way the Bubble Tea runtime would.
func runSequence(g *Gate) {
	msg := runGateSequence(g.service, g.generation)()
	g.Update(msg)
}

func TestGateInitializeFailure(t *testing.T) {
	svc := &assist.MockService{
		InitializeFn: func(context.Context) error {
			return errors.New("model session refused")
		},
		CheckHealthFn: func(context.Context) (assist.HealthReport, error) {
			return assist.HealthReport{Healthy: true}, nil
		},
	}
	g := NewGate(svc)
	runSequence(g)

	if g.Phase() != gateFailed {
		t.Fatalf("phase = %v, want failed", g.Phase())
	}
	if g.Message() != "model session refused" {
		t.Fatalf("message = %q", g.Message())
	}
	if svc.HealthChecks() != 0 {
		t.Fatalf("CheckHealth was called %d times after a failed Initialize", svc.HealthChecks())
	}
	if g.ShowChildren() {
		t.Fatal("children must not render in the failed phase")
	}
	view := g.View("CHILD CONTENT", 60)
	if strings.Contains(view, "CHILD CONTENT") {
		t.Fatal("failed view leaked child content")
	}
	if !strings.Contains(view, "model session refused") {
		t.Fatalf("failed view missing error text: %q", view)
	}
}

func TestGateHealthy(t *testing.T) {
	svc := &assist.MockService{
		InitializeFn: func(context.Context) error { return nil },
		CheckHealthFn: func(context.Context) (assist.HealthReport, error) {
			return assist.HealthReport{Healthy: true, Detail: map[string]any{"model": "quote-v2"}}, nil
		},
	}
	g := NewGate(svc)
	runSequence(g)

	if g.Phase() != gateReady {
		t.Fatalf("phase = %v, want ready", g.Phase())
	}
	if g.Message() != "" {
		t.Fatalf("message = %q, want empty", g.Message())
	}
	if !g.ShowChildren() {
		t.Fatal("ready phase must render children")
	}
	view := g.View("CHILD CONTENT", 60)
	if view != "CHILD CONTENT" {
		t.Fatalf("ready view = %q, want bare children", view)
	}
	if got := g.Report().Detail["model"]; got != "quote-v2" {
		t.Fatalf("report detail = %v", got)
	}
}

func TestGateDegraded(t *testing.T) {
	tests := []struct {
		name        string
		report      assist.HealthReport
		wantMessage string
	}{
		{
			name:        "with explanation",
			report:      assist.HealthReport{Healthy: false, Error: "prompt store unreachable"},
			wantMessage: "prompt store unreachable",
		},
		{
			name:        "without explanation",
			report:      assist.HealthReport{Healthy: false},
			wantMessage: assist.FallbackDegradedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &assist.MockService{
				InitializeFn: func(context.Context) error { return nil },
				CheckHealthFn: func(context.Context) (assist.HealthReport, error) {
					return tt.report, nil
				},
			}
			g := NewGate(svc)
			runSequence(g)

			if g.Phase() != gateDegraded {
				t.Fatalf("phase = %v, want degraded", g.Phase())
			}
			if g.Message() != tt.wantMessage {
				t.Fatalf("message = %q, want %q", g.Message(), tt.wantMessage)
			}
			if !g.ShowChildren() {
				t.Fatal("degraded phase must still render children")
			}
			view := g.View("CHILD CONTENT", 60)
			if !strings.Contains(view, "CHILD CONTENT") {
				t.Fatal("degraded view missing children")
			}
			if !strings.Contains(view, tt.wantMessage) {
				t.Fatalf("degraded banner missing %q: %q", tt.wantMessage, view)
			}
		})
	}
}

func TestGateHealthCheckError(t *testing.T) {
	svc := &assist.MockService{
		InitializeFn: func(context.Context) error { return nil },
		CheckHealthFn: func(context.Context) (assist.HealthReport, error) {
			return assist.HealthReport{}, errors.New("probe timed out")
		},
	}
	g := NewGate(svc)
	runSequence(g)

	// An unverifiable health state is a no-go, same as an initialize failure.
	if g.Phase() != gateFailed {
		t.Fatalf("phase = %v, want failed", g.Phase())
	}
	if g.Message() != "probe timed out" {
		t.Fatalf("message = %q", g.Message())
	}
	if svc.Initializes() != 1 {
		t.Fatalf("Initialize calls = %d, want 1", svc.Initializes())
	}
}

func TestGateStaleResultDiscarded(t *testing.T) {
	svc := &assist.MockService{
		InitializeFn: func(context.Context) error { return nil },
		CheckHealthFn: func(context.Context) (assist.HealthReport, error) {
			return assist.HealthReport{Healthy: true}, nil
		},
	}
	g := NewGate(svc)

	// Capture a result from the first mount, then remount before delivering.
	staleMsg := runGateSequence(g.service, g.generation)()
	_ = g.Retry()

	g.Update(staleMsg)
	if g.Phase() != gateLoading {
		t.Fatalf("stale result mutated phase to %v", g.Phase())
	}
	if g.Message() != "" {
		t.Fatalf("stale result left message %q", g.Message())
	}

	// The fresh mount's own result still lands.
	runSequence(g)
	if g.Phase() != gateReady {
		t.Fatalf("fresh result did not apply, phase = %v", g.Phase())
	}
}

func TestGateRetryRemountsFresh(t *testing.T) {
	calls := 0
	svc := &assist.MockService{
		InitializeFn: func(context.Context) error {
			calls++
			if calls == 1 {
				return errors.New("first warm-up failed")
			}
			return nil
		},
		CheckHealthFn: func(context.Context) (assist.HealthReport, error) {
			return assist.HealthReport{Healthy: true}, nil
		},
	}
	g := NewGate(svc)
	runSequence(g)
	if g.Phase() != gateFailed {
		t.Fatalf("phase = %v, want failed before retry", g.Phase())
	}

	cmd := g.Retry()
	if cmd == nil {
		t.Fatal("Retry returned no command")
	}
	if g.Phase() != gateLoading {
		t.Fatalf("phase = %v after retry, want loading", g.Phase())
	}
	if g.Message() != "" {
		t.Fatalf("retry kept stale message %q", g.Message())
	}

	runSequence(g)
	if g.Phase() != gateReady {
		t.Fatalf("phase = %v after successful retry, want ready", g.Phase())
	}
}

func TestGateTerminalPhaseIsStable(t *testing.T) {
	svc := &assist.MockService{
		InitializeFn: func(context.Context) error { return nil },
		CheckHealthFn: func(context.Context) (assist.HealthReport, error) {
			return assist.HealthReport{Healthy: true}, nil
		},
	}
	g := NewGate(svc)
	runSequence(g)

	// A duplicate result for the same generation must not flip the phase;
	// the phase transitions exactly once per mount.
	g.Update(gateResultMsg{generation: g.generation, phase: gateFailed, message: "late duplicate"})
	if g.Phase() != gateReady {
		t.Fatalf("late duplicate moved phase to %v", g.Phase())
	}
	if g.Message() != "" {
		t.Fatalf("late duplicate left message %q", g.Message())
	}
}

func TestGateReportIsDeepCopy(t *testing.T) {
	svc := &assist.MockService{
		InitializeFn: func(context.Context) error { return nil },
		CheckHealthFn: func(context.Context) (assist.HealthReport, error) {
			return assist.HealthReport{
				Healthy: true,
				Detail:  map[string]any{"model": "quote-v2"},
			}, nil
		},
	}
	g := NewGate(svc)
	runSequence(g)

	report := g.Report()
	report.Detail["model"] = "mutated"

	if g.Report().Detail["model"] != "quote-v2" {
		t.Fatal("caller mutation of a returned report leaked into gate state")
	}
}

func TestGateLoadingView(t *testing.T) {
	g := NewGate(&assist.MockService{})
	view := g.View("CHILD CONTENT", 60)
	if strings.Contains(view, "CHILD CONTENT") {
		t.Fatal("loading view leaked child content")
	}
	if !strings.Contains(view, "Warming up assistant") {
		t.Fatalf("loading view missing placeholder: %q", view)
	}
}
