package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics records metadata for report builds and dataset reloads.
type ReportMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	reloads  prometheus.Counter
}

// NewReportMetrics registers the report metrics on the provided registerer.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_build_duration_seconds",
		Help:    "Duration of report builds in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_build_success",
		Help: "Successful report builds.",
	}, []string{"report"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_build_failure",
		Help: "Failed report builds.",
	}, []string{"report"})
	reloads := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dataset_reloads_total",
		Help: "Times the order dataset was reloaded from disk.",
	})
	reg.MustRegister(duration, success, failure, reloads)
	return &ReportMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		reloads:  reloads,
	}
}

// ObserveDuration records the duration for the named report.
func (r *ReportMetrics) ObserveDuration(report string, duration time.Duration) {
	if r == nil || r.duration == nil {
		return
	}
	r.duration.WithLabelValues(normalizeLabel(report)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named report.
func (r *ReportMetrics) IncSuccess(report string) {
	if r == nil || r.success == nil {
		return
	}
	r.success.WithLabelValues(normalizeLabel(report)).Inc()
}

// IncFailure increments the failure counter for the named report.
func (r *ReportMetrics) IncFailure(report string) {
	if r == nil || r.failure == nil {
		return
	}
	r.failure.WithLabelValues(normalizeLabel(report)).Inc()
}

// IncDatasetReload increments the dataset reload counter.
func (r *ReportMetrics) IncDatasetReload() {
	if r == nil || r.reloads == nil {
		return
	}
	r.reloads.Inc()
}

func normalizeLabel(report string) string {
	if report == "" {
		return "unknown"
	}
	return report
}
