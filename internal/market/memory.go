package market

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tradedeck/internal/domain"
	appErrors "tradedeck/internal/errors"
)

// GuestBuilderName is the profile shown in demo mode.
const GuestBuilderName = "Guest builder"

// MemoryStore is an in-memory Store seeded with deterministic sample leads.
// It backs the --demo dashboard and doubles as a fixture store in tests.
type MemoryStore struct {
	mu       sync.Mutex
	leads    []domain.Lead
	builders []domain.Builder
}

// NewMemoryStore returns a store pre-populated with demo leads anchored to
// the current time so relative timestamps look lived-in.
func NewMemoryStore() *MemoryStore {
	now := time.Now().UTC()
	return &MemoryStore{
		leads:    sampleLeads(now),
		builders: []domain.Builder{{ID: "guest", Name: GuestBuilderName}},
	}
}

// NewMemoryStoreWith returns a store holding exactly the given leads.
func NewMemoryStoreWith(leads []domain.Lead) *MemoryStore {
	copied := make([]domain.Lead, len(leads))
	for i, l := range leads {
		copied[i] = l.Clone()
	}
	return &MemoryStore{
		leads:    copied,
		builders: []domain.Builder{{ID: "guest", Name: GuestBuilderName}},
	}
}

func (s *MemoryStore) Leads(_ context.Context) ([]domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Lead, len(s.leads))
	for i, l := range s.leads {
		out[i] = l.Clone()
	}
	return out, nil
}

func (s *MemoryStore) Lead(_ context.Context, ref string) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.leads {
		if l.Ref == ref {
			return l.Clone(), nil
		}
	}
	return domain.Lead{}, appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("lead %s not found", ref), nil)
}

func (s *MemoryStore) Builders(_ context.Context) ([]domain.Builder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Builder, len(s.builders))
	copy(out, s.builders)
	return out, nil
}

func (s *MemoryStore) UpdateLeadStatus(_ context.Context, ref string, to domain.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leads {
		if s.leads[i].Ref != ref {
			continue
		}
		if err := s.leads[i].Status.CanTransitionTo(to); err != nil {
			return err
		}
		s.leads[i].Status = to
		s.leads[i].UpdatedAt = time.Now().UTC()
		return nil
	}
	return appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("lead %s not found", ref), nil)
}

func sampleLeads(now time.Time) []domain.Lead {
	return []domain.Lead{
		{
			Ref:         "LD-1041",
			Title:       "Loft conversion with dormer",
			Description: "Two-bed Victorian terrace, looking to convert the loft into a bedroom with en-suite. Planning permission already granted.",
			Category:    "Loft conversion",
			Postcode:    "SW11 4NB",
			Phone:       "07700900101",
			BudgetPence: 4_500_000,
			Status:      domain.StatusNew,
			CreatedAt:   now.Add(-26 * time.Hour),
			UpdatedAt:   now.Add(-26 * time.Hour),
		},
		{
			Ref:         "LD-1038",
			Title:       "Full bathroom refit",
			Description: "Strip out existing suite, retile, new walk-in shower and underfloor heating.",
			Category:    "Bathroom",
			Postcode:    "M4 5JD",
			Phone:       "07700900102",
			BudgetPence: 850_000,
			QuotePence:  792_500,
			Status:      domain.StatusQuoted,
			CreatedAt:   now.Add(-4 * 24 * time.Hour),
			UpdatedAt:   now.Add(-36 * time.Hour),
		},
		{
			Ref:         "LD-1033",
			Title:       "Kitchen rewire and new consumer unit",
			Description: "1970s semi, original wiring. Needs full kitchen circuit rewire and consumer unit upgrade to current regs.",
			Category:    "Electrical",
			Postcode:    "LS8 2QR",
			Phone:       "07700900103",
			BudgetPence: 320_000,
			QuotePence:  298_000,
			Status:      domain.StatusAccepted,
			CreatedAt:   now.Add(-9 * 24 * time.Hour),
			UpdatedAt:   now.Add(-2 * 24 * time.Hour),
		},
		{
			Ref:         "LD-1027",
			Title:       "Garden office build",
			Description: "Insulated 4x3m garden room with power and data. Base already laid.",
			Category:    "Outbuildings",
			Postcode:    "BS7 8LT",
			Phone:       "07700900104",
			BudgetPence: 1_800_000,
			QuotePence:  1_750_000,
			Status:      domain.StatusInProgress,
			CreatedAt:   now.Add(-21 * 24 * time.Hour),
			UpdatedAt:   now.Add(-5 * time.Hour),
		},
		{
			Ref:         "LD-1019",
			Title:       "Replace front door and frame",
			Description: "Composite door, anthracite, with new frame and threshold.",
			Category:    "Doors & windows",
			Postcode:    "EH10 4AX",
			Phone:       "02079460991",
			BudgetPence: 210_000,
			QuotePence:  189_900,
			Status:      domain.StatusCompleted,
			CreatedAt:   now.Add(-40 * 24 * time.Hour),
			UpdatedAt:   now.Add(-12 * 24 * time.Hour),
		},
		{
			Ref:         "LD-1015",
			Title:       "Driveway repaving",
			Description: "Block paving over existing concrete drive, roughly 35 square metres.",
			Category:    "Landscaping",
			Postcode:    "CR2 6XH",
			Phone:       "07700900106",
			BudgetPence: 600_000,
			Status:      domain.StatusWithdrawn,
			CreatedAt:   now.Add(-55 * 24 * time.Hour),
			UpdatedAt:   now.Add(-50 * 24 * time.Hour),
		},
	}
}
