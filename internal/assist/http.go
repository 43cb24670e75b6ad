package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds each request to the assistant sidecar.
const DefaultTimeout = 5 * time.Second

// Error variables for specific error conditions.
var (
	ErrNetworkFailure   = fmt.Errorf("assistant request failed")
	ErrUnexpectedStatus = fmt.Errorf("assistant returned unexpected status")
)

// HTTPService implements Service against the assistant sidecar's HTTP API.
type HTTPService struct {
	baseURL    string
	httpClient *http.Client
}

// HTTPOption configures an HTTPService.
type HTTPOption func(*HTTPService)

// WithHTTPClient sets a custom HTTP client for the service.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPService) {
		s.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) HTTPOption {
	return func(s *HTTPService) {
		s.httpClient.Timeout = timeout
	}
}

// NewHTTPService creates a service client for the sidecar at baseURL.
func NewHTTPService(baseURL string, opts ...HTTPOption) *HTTPService {
	s := &HTTPService{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize asks the sidecar to warm up. The sidecar blocks until its
// model session is open, so this can take most of the timeout budget.
func (s *HTTPService) Initialize(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/initialize", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "tradedeck-dashboard")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

// CheckHealth fetches the sidecar's health report.
func (s *HTTPService) CheckHealth(ctx context.Context) (HealthReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/health", nil)
	if err != nil {
		return HealthReport{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tradedeck-dashboard")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return HealthReport{}, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return HealthReport{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var report HealthReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return HealthReport{}, fmt.Errorf("decode health report: %w", err)
	}
	return report, nil
}
