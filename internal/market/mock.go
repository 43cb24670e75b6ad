package market

import (
	"context"
	"errors"
	"sync"

	"tradedeck/internal/domain"
)

// ErrMockNotImplemented is returned when a MockStore method lacks an override.
var ErrMockNotImplemented = errors.New("market.MockStore: method not implemented")

// MockStore is a test double for the Store interface.
type MockStore struct {
	LeadsFn            func(context.Context) ([]domain.Lead, error)
	LeadFn             func(context.Context, string) (domain.Lead, error)
	BuildersFn         func(context.Context) ([]domain.Builder, error)
	UpdateLeadStatusFn func(context.Context, string, domain.Status) error

	mu                        sync.Mutex
	LeadsCallCount            int
	LeadCallCount             int
	BuildersCallCount         int
	UpdateLeadStatusCallCount int
	LeadCallArgs              []string
	UpdateLeadStatusCallArgs  []StatusCallArg
}

// StatusCallArg captures arguments passed to UpdateLeadStatus.
type StatusCallArg struct {
	Ref string
	To  domain.Status
}

func (m *MockStore) Leads(ctx context.Context) ([]domain.Lead, error) {
	m.mu.Lock()
	m.LeadsCallCount++
	m.mu.Unlock()
	if m.LeadsFn != nil {
		return m.LeadsFn(ctx)
	}
	return nil, ErrMockNotImplemented
}

func (m *MockStore) Lead(ctx context.Context, ref string) (domain.Lead, error) {
	m.mu.Lock()
	m.LeadCallCount++
	m.LeadCallArgs = append(m.LeadCallArgs, ref)
	m.mu.Unlock()
	if m.LeadFn != nil {
		return m.LeadFn(ctx, ref)
	}
	return domain.Lead{}, ErrMockNotImplemented
}

func (m *MockStore) Builders(ctx context.Context) ([]domain.Builder, error) {
	m.mu.Lock()
	m.BuildersCallCount++
	m.mu.Unlock()
	if m.BuildersFn != nil {
		return m.BuildersFn(ctx)
	}
	return nil, ErrMockNotImplemented
}

func (m *MockStore) UpdateLeadStatus(ctx context.Context, ref string, to domain.Status) error {
	m.mu.Lock()
	m.UpdateLeadStatusCallCount++
	m.UpdateLeadStatusCallArgs = append(m.UpdateLeadStatusCallArgs, StatusCallArg{Ref: ref, To: to})
	m.mu.Unlock()
	if m.UpdateLeadStatusFn != nil {
		return m.UpdateLeadStatusFn(ctx, ref, to)
	}
	return ErrMockNotImplemented
}
