package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tradedeck/internal/domain"
)

func TestPrintExitSummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  ExitSummary
		wantVer  string
		wantStat string
	}{
		{
			name: "full stats with version",
			summary: ExitSummary{
				Version: "0.4.0",
				Builder: "Hartley & Sons",
				EndStats: domain.Stats{
					Total:       12,
					New:         3,
					Quoted:      4,
					InProgress:  1,
					Completed:   4,
					EarnedPence: 1_250_000,
				},
				StartTime: time.Now().Add(-5 * time.Minute),
				InitialStats: domain.Stats{
					Total:       12,
					New:         3,
					Quoted:      4,
					InProgress:  1,
					Completed:   4,
					EarnedPence: 1_250_000,
				},
			},
			wantVer:  "v0.4.0",
			wantStat: "12 Leads: 3 New, 4 Quoted, 1 In Progress, 4 Completed, £12,500.00 earned",
		},
		{
			name: "no version",
			summary: ExitSummary{
				EndStats:     domain.Stats{Total: 5, New: 5},
				StartTime:    time.Now().Add(-1 * time.Minute),
				InitialStats: domain.Stats{Total: 5, New: 5},
			},
			wantVer:  "",
			wantStat: "5 Leads: 5 New",
		},
		{
			name: "zero leads",
			summary: ExitSummary{
				Version:   "1.0.0",
				StartTime: time.Now().Add(-30 * time.Second),
			},
			wantVer:  "v1.0.0",
			wantStat: "0 Leads",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printExitSummary(&buf, tt.summary)
			output := buf.String()

			if !strings.Contains(output, "Tradedeck") {
				t.Errorf("output missing app name:\n%s", output)
			}

			if tt.wantVer != "" && !strings.Contains(output, tt.wantVer) {
				t.Errorf("output missing version %q:\n%s", tt.wantVer, output)
			}

			if tt.wantVer == "" && strings.Contains(output, " v0") {
				t.Errorf("output should not contain version marker:\n%s", output)
			}

			if !strings.Contains(output, tt.wantStat) {
				t.Errorf("output missing stats %q:\n%s", tt.wantStat, output)
			}

			if tt.summary.Builder != "" && !strings.Contains(output, tt.summary.Builder) {
				t.Errorf("output missing builder name:\n%s", output)
			}

			if !strings.Contains(output, "session") {
				t.Errorf("output should contain session duration:\n%s", output)
			}
		})
	}
}

func TestPrintExitSummary_ShowsChanges(t *testing.T) {
	summary := ExitSummary{
		Version: "1.0.0",
		EndStats: domain.Stats{
			Total:       12,
			New:         2,
			Quoted:      4,
			InProgress:  1,
			Completed:   5,
			EarnedPence: 900_000,
		},
		StartTime: time.Now().Add(-10 * time.Minute),
		InitialStats: domain.Stats{
			Total:       10,
			New:         3,
			Quoted:      3,
			InProgress:  1,
			Completed:   3,
			EarnedPence: 500_000,
		},
	}

	var buf bytes.Buffer
	printExitSummary(&buf, summary)
	output := buf.String()

	if !strings.Contains(output, "(+2)") {
		t.Errorf("output should show +2 total and completed change:\n%s", output)
	}
	if !strings.Contains(output, "(-1)") {
		t.Errorf("output should show -1 new change:\n%s", output)
	}
	if !strings.Contains(output, "(+£4,000.00)") {
		t.Errorf("output should show earned delta:\n%s", output)
	}
}

func TestPrintExitSummary_NoChangesShown(t *testing.T) {
	stats := domain.Stats{
		Total:       10,
		New:         1,
		Quoted:      5,
		InProgress:  1,
		Completed:   3,
		EarnedPence: 300_000,
	}
	summary := ExitSummary{
		Version:      "1.0.0",
		EndStats:     stats,
		StartTime:    time.Now().Add(-5 * time.Minute),
		InitialStats: stats,
	}

	var buf bytes.Buffer
	printExitSummary(&buf, summary)
	output := buf.String()

	if strings.Contains(output, "(+") || strings.Contains(output, "(-") {
		t.Errorf("output should not show deltas when nothing changed:\n%s", output)
	}
}

func TestPrintSnapshotSummary(t *testing.T) {
	var buf bytes.Buffer
	printSnapshotSummary(&buf, "Hartley & Sons", domain.Stats{
		Total:       3,
		New:         1,
		Completed:   2,
		EarnedPence: 450_000,
	})
	output := buf.String()

	if !strings.Contains(output, "Hartley & Sons") {
		t.Errorf("output missing builder name:\n%s", output)
	}
	if !strings.Contains(output, "3 Leads: 1 New, 2 Completed, £4,500.00 earned") {
		t.Errorf("output missing stats line:\n%s", output)
	}
	if strings.Contains(output, "(+") || strings.Contains(output, "(-") {
		t.Errorf("one-shot summary should never show deltas:\n%s", output)
	}
}

func TestClearLoadingScreen(t *testing.T) {
	var buf bytes.Buffer
	clearLoadingScreen(&buf)
	output := buf.String()

	if !strings.Contains(output, "\033[A") {
		t.Errorf("output should contain cursor-up ANSI codes:\n%q", output)
	}
	if !strings.Contains(output, "\033[J") {
		t.Errorf("output should contain clear-to-end ANSI code:\n%q", output)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{30 * time.Second, "30s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m"},
		{90 * time.Second, "1m 30s"},
		{5 * time.Minute, "5m"},
		{5*time.Minute + 30*time.Second, "5m 30s"},
		{60 * time.Minute, "1h"},
		{90 * time.Minute, "1h 30m"},
		{2 * time.Hour, "2h"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		delta int
		want  string
	}{
		{1, "(+1)"},
		{5, "(+5)"},
		{-1, "(-1)"},
		{-5, "(-5)"},
		{0, "(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatDelta(tt.delta)
			if got != tt.want {
				t.Errorf("formatDelta(%d) = %q, want %q", tt.delta, got, tt.want)
			}
		})
	}
}
