package domain

import (
	"testing"
	"time"
)

func TestCloneValueDeepCopiesNestedMaps(t *testing.T) {
	original := map[string]any{
		"agents": []any{
			map[string]any{"name": "quoting", "ready": true},
			map[string]any{"name": "scheduling", "ready": false},
		},
		"uptime": 12.5,
		"tags":   []string{"beta", "uk"},
	}

	cloned, ok := CloneValue(original).(map[string]any)
	if !ok {
		t.Fatal("CloneValue should preserve the map type")
	}

	// Mutating the clone must not touch the original.
	cloned["uptime"] = 99.0
	cloned["agents"].([]any)[0].(map[string]any)["ready"] = false
	cloned["tags"].([]string)[0] = "mutated"

	if original["uptime"] != 12.5 {
		t.Fatal("clone mutation leaked into original scalar")
	}
	if original["agents"].([]any)[0].(map[string]any)["ready"] != true {
		t.Fatal("clone mutation leaked into nested map")
	}
	if original["tags"].([]string)[0] != "beta" {
		t.Fatal("clone mutation leaked into string slice")
	}
}

func TestCloneValueNilHandling(t *testing.T) {
	if got := CloneValue(nil); got != nil {
		t.Fatalf("CloneValue(nil) = %v, want nil", got)
	}
	if got := CloneStringMap(nil); got != nil {
		t.Fatalf("CloneStringMap(nil) = %v, want nil", got)
	}
	empty := CloneStringMap(map[string]any{})
	if empty == nil || len(empty) != 0 {
		t.Fatalf("CloneStringMap(empty) = %v, want empty non-nil map", empty)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Now()
	leads := []Lead{
		{Ref: "LD-1", Status: StatusNew, CreatedAt: now},
		{Ref: "LD-2", Status: StatusQuoted, QuotePence: 120_00},
		{Ref: "LD-3", Status: StatusAccepted},
		{Ref: "LD-4", Status: StatusInProgress},
		{Ref: "LD-5", Status: StatusCompleted, QuotePence: 2_450_00},
		{Ref: "LD-6", Status: StatusCompleted, QuotePence: 800_00},
		{Ref: "LD-7", Status: StatusWithdrawn},
	}

	got := ComputeStats(leads)
	want := Stats{Total: 7, New: 1, Quoted: 1, InProgress: 2, Completed: 2, EarnedPence: 3_250_00}
	if got != want {
		t.Fatalf("ComputeStats = %+v, want %+v", got, want)
	}
}
