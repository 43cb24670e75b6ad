package domain

import (
	"testing"

	appErrors "tradedeck/internal/errors"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Status
		wantErr bool
	}{
		{name: "plain", raw: "new", want: StatusNew},
		{name: "mixed case with spaces", raw: "  In_Progress ", want: StatusInProgress},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "unsupported", raw: "pending", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStatus(%q) expected error, got %v", tt.raw, got)
				}
				if !appErrors.IsCode(err, appErrors.CodeInvalidStatus) {
					t.Fatalf("ParseStatus(%q) error code = %v, want invalid_status", tt.raw, appErrors.CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "new to quoted", from: StatusNew, to: StatusQuoted, allowed: true},
		{name: "quoted to accepted", from: StatusQuoted, to: StatusAccepted, allowed: true},
		{name: "accepted to in progress", from: StatusAccepted, to: StatusInProgress, allowed: true},
		{name: "in progress to completed", from: StatusInProgress, to: StatusCompleted, allowed: true},
		{name: "any to withdrawn", from: StatusQuoted, to: StatusWithdrawn, allowed: true},
		{name: "same status is a no-op", from: StatusQuoted, to: StatusQuoted, allowed: true},
		{name: "new cannot skip to completed", from: StatusNew, to: StatusCompleted, allowed: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusInProgress, allowed: false},
		{name: "withdrawn is terminal", from: StatusWithdrawn, to: StatusNew, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.CanTransitionTo(tt.to)
			if tt.allowed && err != nil {
				t.Fatalf("CanTransitionTo(%s -> %s) unexpected error: %v", tt.from, tt.to, err)
			}
			if !tt.allowed {
				if err == nil {
					t.Fatalf("CanTransitionTo(%s -> %s) expected error", tt.from, tt.to)
				}
				if !appErrors.IsCode(err, appErrors.CodeInvalidTransition) {
					t.Fatalf("error code = %v, want invalid_transition", appErrors.CodeOf(err))
				}
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if !StatusCompleted.IsTerminal() || !StatusWithdrawn.IsTerminal() {
		t.Fatal("completed and withdrawn should be terminal")
	}
	if StatusNew.IsTerminal() || StatusInProgress.IsTerminal() {
		t.Fatal("new and in_progress should not be terminal")
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusInProgress.Label(); got != "In Progress" {
		t.Fatalf("Label() = %q, want %q", got, "In Progress")
	}
	if got := Status("bogus").Label(); got != "Unknown" {
		t.Fatalf("Label() for bogus = %q, want Unknown", got)
	}
}
