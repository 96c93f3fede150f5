package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andhikasp/salesdash-backend/api/controllers"
	reportcontrollers "github.com/andhikasp/salesdash-backend/api/controllers/reports"
	"github.com/andhikasp/salesdash-backend/api/middleware"
	"github.com/andhikasp/salesdash-backend/internal/report"
	"github.com/andhikasp/salesdash-backend/pkg/config"
	"github.com/andhikasp/salesdash-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	provider report.SnapshotProvider,
	reportService report.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(cfg.HTTP.CORSOrigins),
		middleware.Logging(logg),
	)

	r.Get("/healthz", controllers.HealthLive(cfg))
	r.Get("/readyz", controllers.HealthReady(cfg, provider, logg))

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/v1/reports", func(r chi.Router) {
		r.Get("/dashboard", reportcontrollers.Dashboard(reportService, cfg.Report, logg))
		r.Get("/filters", reportcontrollers.Filters(reportService, logg))
	})

	return r
}
