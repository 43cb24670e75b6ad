// Package assist talks to the local quoting assistant sidecar. The
// dashboard gates its assistant panel on a successful warm-up and health
// probe before showing any assistant UI.
package assist

import (
	"context"

	"tradedeck/internal/domain"
)

// FallbackDegradedMessage is shown when the assistant reports unhealthy
// without supplying its own explanation.
const FallbackDegradedMessage = "Assistant is running in a degraded state"

// HealthReport is the assistant's own view of its readiness.
type HealthReport struct {
	// Healthy reports whether the assistant considers itself fully usable.
	Healthy bool `json:"healthy"`
	// Error carries the assistant's explanation when Healthy is false.
	Error string `json:"error,omitempty"`
	// Detail holds free-form diagnostic fields (model name, warm-up
	// timings) for the detail view.
	Detail map[string]any `json:"detail,omitempty"`
}

// Clone returns a deep copy so callers can hold a report across updates
// without sharing the Detail map.
func (r HealthReport) Clone() HealthReport {
	out := r
	out.Detail = domain.CloneStringMap(r.Detail)
	return out
}

// Message returns the text the dashboard should show for an unhealthy
// report, falling back when the assistant gave no explanation.
func (r HealthReport) Message() string {
	if r.Error != "" {
		return r.Error
	}
	return FallbackDegradedMessage
}

// Service is the warm-up and health contract the gate drives. Initialize
// must succeed before CheckHealth is ever called.
type Service interface {
	// Initialize performs one-time warm-up (loading prompt templates,
	// opening the model session).
	Initialize(ctx context.Context) error

	// CheckHealth probes the warmed-up service. A non-nil error means the
	// probe itself failed; an unhealthy report means the service answered
	// but is degraded.
	CheckHealth(ctx context.Context) (HealthReport, error)
}
