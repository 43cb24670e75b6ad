package market

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tradedeck/internal/domain"
	appErrors "tradedeck/internal/errors"
)

func TestMemoryStoreDemoData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	leads, err := store.Leads(ctx)
	if err != nil {
		t.Fatalf("Leads: %v", err)
	}
	if len(leads) == 0 {
		t.Fatal("demo store has no leads")
	}
	seen := map[domain.Status]bool{}
	for _, l := range leads {
		if err := l.Status.Validate(); err != nil {
			t.Fatalf("demo lead %s has invalid status: %v", l.Ref, err)
		}
		seen[l.Status] = true
	}
	// Demo data should exercise the whole pipeline.
	for _, s := range []domain.Status{domain.StatusNew, domain.StatusQuoted, domain.StatusInProgress, domain.StatusCompleted} {
		if !seen[s] {
			t.Fatalf("demo data missing a %s lead", s)
		}
	}

	builders, err := store.Builders(ctx)
	if err != nil {
		t.Fatalf("Builders: %v", err)
	}
	if len(builders) != 1 || builders[0].Name != GuestBuilderName {
		t.Fatalf("demo builders = %+v, want single guest profile", builders)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	leads, err := store.Leads(ctx)
	if err != nil {
		t.Fatalf("Leads: %v", err)
	}
	ref := leads[0].Ref
	leads[0].Title = "mutated"

	fresh, err := store.Lead(ctx, ref)
	if err != nil {
		t.Fatalf("Lead: %v", err)
	}
	if fresh.Title == "mutated" {
		t.Fatal("caller mutation leaked into store")
	}
}

func TestMemoryStoreUpdateLeadStatus(t *testing.T) {
	store := NewMemoryStoreWith([]domain.Lead{
		{Ref: "LD-1", Status: domain.StatusNew},
		{Ref: "LD-2", Status: domain.StatusCompleted},
	})
	ctx := context.Background()

	if err := store.UpdateLeadStatus(ctx, "LD-1", domain.StatusQuoted); err != nil {
		t.Fatalf("valid transition failed: %v", err)
	}
	lead, err := store.Lead(ctx, "LD-1")
	if err != nil {
		t.Fatalf("Lead: %v", err)
	}
	if lead.Status != domain.StatusQuoted {
		t.Fatalf("status = %v, want quoted", lead.Status)
	}
	if lead.UpdatedAt.IsZero() {
		t.Fatal("UpdatedAt not bumped")
	}

	err = store.UpdateLeadStatus(ctx, "LD-2", domain.StatusNew)
	if !appErrors.IsCode(err, appErrors.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
	err = store.UpdateLeadStatus(ctx, "LD-9", domain.StatusQuoted)
	if !appErrors.IsCode(err, appErrors.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestDiscoverSnapshot(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "project")
	nested := filepath.Join(project, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	snapshotDir := filepath.Join(project, SnapshotDirName)
	if err := os.MkdirAll(snapshotDir, 0o755); err != nil {
		t.Fatalf("mkdir snapshot dir: %v", err)
	}
	snapshot := filepath.Join(snapshotDir, SnapshotFileName)
	if err := os.WriteFile(snapshot, []byte("x"), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	got, err := DiscoverSnapshot(nested)
	if err != nil {
		t.Fatalf("DiscoverSnapshot: %v", err)
	}
	if got != snapshot {
		t.Fatalf("DiscoverSnapshot = %q, want %q", got, snapshot)
	}

	_, err = DiscoverSnapshot(t.TempDir())
	if !appErrors.IsCode(err, appErrors.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
