package assist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPServiceInitialize(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantErr    error
		wantMethod string
	}{
		{name: "success", status: http.StatusOK},
		{name: "accepted counts as success", status: http.StatusAccepted},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrUnexpectedStatus},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			svc := NewHTTPService(srv.URL)
			err := svc.Initialize(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Initialize error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Initialize: %v", err)
			}
			if gotMethod != http.MethodPost || gotPath != "/v1/initialize" {
				t.Fatalf("got %s %s, want POST /v1/initialize", gotMethod, gotPath)
			}
		})
	}
}

func TestHTTPServiceInitializeNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	svc := NewHTTPService(srv.URL)
	if err := svc.Initialize(context.Background()); !errors.Is(err, ErrNetworkFailure) {
		t.Fatalf("Initialize error = %v, want network failure", err)
	}
}

func TestHTTPServiceCheckHealth(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantHealthy bool
		wantMessage string
	}{
		{
			name:        "healthy",
			status:      http.StatusOK,
			body:        `{"healthy": true, "detail": {"model": "quote-v2"}}`,
			wantHealthy: true,
		},
		{
			name:        "unhealthy with explanation",
			status:      http.StatusOK,
			body:        `{"healthy": false, "error": "model warm-up incomplete"}`,
			wantMessage: "model warm-up incomplete",
		},
		{
			name:        "unhealthy without explanation",
			status:      http.StatusOK,
			body:        `{"healthy": false}`,
			wantMessage: FallbackDegradedMessage,
		},
		{
			name:    "server error",
			status:  http.StatusServiceUnavailable,
			body:    "unavailable",
			wantErr: ErrUnexpectedStatus,
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    "{not json",
			wantErr: nil, // decode error, checked separately below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/health" || r.Method != http.MethodGet {
					t.Errorf("got %s %s, want GET /v1/health", r.Method, r.URL.Path)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc := NewHTTPService(srv.URL)
			report, err := svc.CheckHealth(context.Background())

			if tt.name == "malformed body" {
				if err == nil {
					t.Fatal("expected decode error for malformed body")
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CheckHealth error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckHealth: %v", err)
			}
			if report.Healthy != tt.wantHealthy {
				t.Fatalf("Healthy = %v, want %v", report.Healthy, tt.wantHealthy)
			}
			if !report.Healthy && report.Message() != tt.wantMessage {
				t.Fatalf("Message() = %q, want %q", report.Message(), tt.wantMessage)
			}
		})
	}
}

func TestHealthReportClone(t *testing.T) {
	orig := HealthReport{
		Healthy: false,
		Error:   "degraded",
		Detail: map[string]any{
			"model":  "quote-v2",
			"timing": map[string]any{"warmup_ms": 1200},
		},
	}
	clone := orig.Clone()
	clone.Detail["model"] = "mutated"
	clone.Detail["timing"].(map[string]any)["warmup_ms"] = 0

	if orig.Detail["model"] != "quote-v2" {
		t.Fatal("clone mutation leaked into original top-level map")
	}
	if orig.Detail["timing"].(map[string]any)["warmup_ms"] != 1200 {
		t.Fatal("clone mutation leaked into original nested map")
	}
}

func TestHealthReportCloneNilDetail(t *testing.T) {
	clone := HealthReport{Healthy: true}.Clone()
	if clone.Detail != nil {
		t.Fatalf("Clone of nil Detail = %v, want nil", clone.Detail)
	}
}
