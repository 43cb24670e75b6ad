package assist

import (
	"context"
	"errors"
	"sync"
)

// ErrMockNotImplemented is returned when a MockService method lacks an override.
var ErrMockNotImplemented = errors.New("assist.MockService: method not implemented")

// MockService is a test double for the Service interface.
type MockService struct {
	InitializeFn  func(context.Context) error
	CheckHealthFn func(context.Context) (HealthReport, error)

	mu                   sync.Mutex
	InitializeCallCount  int
	CheckHealthCallCount int
}

func (m *MockService) Initialize(ctx context.Context) error {
	m.mu.Lock()
	m.InitializeCallCount++
	m.mu.Unlock()
	if m.InitializeFn != nil {
		return m.InitializeFn(ctx)
	}
	return ErrMockNotImplemented
}

func (m *MockService) CheckHealth(ctx context.Context) (HealthReport, error) {
	m.mu.Lock()
	m.CheckHealthCallCount++
	m.mu.Unlock()
	if m.CheckHealthFn != nil {
		return m.CheckHealthFn(ctx)
	}
	return HealthReport{}, ErrMockNotImplemented
}

// Initializes reports how many times Initialize was called.
func (m *MockService) Initializes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.InitializeCallCount
}

// HealthChecks reports how many times CheckHealth was called.
func (m *MockService) HealthChecks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CheckHealthCallCount
}
