package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
	"github.com/andhikasp/salesdash-backend/internal/report"
	"github.com/andhikasp/salesdash-backend/pkg/config"
	"github.com/andhikasp/salesdash-backend/pkg/metrics"
)

type stubProvider struct {
	snapshot *dataset.Snapshot
}

func (s *stubProvider) Snapshot(context.Context) (*dataset.Snapshot, error) {
	return s.snapshot, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App:    config.AppConfig{Env: "test", Port: "0"},
		Report: config.ReportConfig{DefaultTopN: 5, MaxTopN: 100},
	}

	provider := &stubProvider{snapshot: &dataset.Snapshot{Checksum: 99}}
	registry := prometheus.NewRegistry()
	service := report.NewService(provider, nil, metrics.NewReportMetrics(registry))

	return NewRouter(cfg, nil, provider, service, registry)
}

func TestRouterServesHealth(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz: expected 200, got %d", w.Code)
	}

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode readyz: %v", err)
	}
	if envelope.Data["status"] != "ready" {
		t.Fatalf("unexpected readyz payload %+v", envelope.Data)
	}
}

func TestRouterServesDashboard(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/reports/dashboard?year=all", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/reports/dashboard?year=nope", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("dashboard: expected 400 for bad year, got %d", w.Code)
	}
}

func TestRouterServesMetrics(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header to be set")
	}
}
