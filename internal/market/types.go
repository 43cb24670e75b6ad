// Package market provides access to the local marketplace lead snapshot.
package market

import (
	"context"

	"tradedeck/internal/domain"
)

// Store reads leads and builders from a marketplace snapshot and applies
// the one mutation the dashboard supports, moving a lead through its
// status pipeline.
type Store interface {
	// Leads returns every lead visible to the store's builder scope,
	// oldest first.
	Leads(ctx context.Context) ([]domain.Lead, error)

	// Lead returns a single lead by its reference.
	Lead(ctx context.Context, ref string) (domain.Lead, error)

	// Builders returns the builder profiles present in the snapshot.
	Builders(ctx context.Context) ([]domain.Builder, error)

	// UpdateLeadStatus transitions a lead to a new status. The transition
	// is validated against the pipeline before any write happens.
	UpdateLeadStatus(ctx context.Context, ref string, to domain.Status) error
}
