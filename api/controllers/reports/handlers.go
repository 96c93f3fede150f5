package reports

import (
	"net/http"

	"github.com/andhikasp/salesdash-backend/api/responses"
	"github.com/andhikasp/salesdash-backend/internal/report"
	"github.com/andhikasp/salesdash-backend/pkg/config"
	"github.com/andhikasp/salesdash-backend/pkg/logger"
)

// Dashboard serves the full filtered analytics report.
func Dashboard(service report.Service, cfg config.ReportConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		criteria, err := resolveCriteria(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		opts, err := resolveOptions(r, cfg)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.BuildReport(ctx, criteria, opts)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// Filters serves the selector values for the dashboard's filter controls.
func Filters(service report.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		year, err := resolveYear(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.FilterOptions(ctx, year)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
