package controllers

import (
	"net/http"

	"github.com/andhikasp/salesdash-backend/api/responses"
	"github.com/andhikasp/salesdash-backend/internal/report"
	"github.com/andhikasp/salesdash-backend/pkg/config"
	"github.com/andhikasp/salesdash-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SalesDash-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness along with the currently loaded dataset size,
// so a misconfigured dataset path surfaces here instead of on first report.
func HealthReady(cfg *config.Config, provider report.SnapshotProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SalesDash-Env", cfg.App.Env)

		snapshot, err := provider.Snapshot(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"status":           "ready",
			"dataset_rows":     len(snapshot.Records),
			"dataset_checksum": snapshot.Checksum,
		})
	}
}
