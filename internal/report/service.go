package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
	"github.com/andhikasp/salesdash-backend/pkg/logger"
	"github.com/andhikasp/salesdash-backend/pkg/metrics"
)

// SnapshotProvider supplies the dataset the reports are computed over.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*dataset.Snapshot, error)
}

// Options tunes one report build.
type Options struct {
	CategoryMode  CountMode
	FrequencyMode FrequencyMode
	TopN          int
}

const defaultTopN = 5

// CategoryBreakdown holds the two ends of the category ranking.
type CategoryBreakdown struct {
	Top    []CategoryCount `json:"top"`
	Bottom []CategoryCount `json:"bottom"`
}

// RFMBreakdown holds the three independent per-axis customer rankings. No
// combined weighted score exists.
type RFMBreakdown struct {
	TopByRecency   []RFMRow `json:"top_by_recency"`
	TopByFrequency []RFMRow `json:"top_by_frequency"`
	TopByMonetary  []RFMRow `json:"top_by_monetary"`
}

// Report is the full dashboard payload for one filter cycle.
type Report struct {
	Criteria   FilterCriteria    `json:"criteria"`
	RowCount   int               `json:"row_count"`
	KPIs       KPISummary        `json:"kpis"`
	Trend      []MonthlySales    `json:"monthly_trend"`
	Categories CategoryBreakdown `json:"categories"`
	RFM        RFMBreakdown      `json:"rfm"`
	Statuses   []StatusCount     `json:"status_distribution"`
}

// FilterOptions lists the selector values the UI can offer.
type FilterOptions struct {
	Years      []int    `json:"years"`
	Months     []string `json:"months"`
	Categories []string `json:"categories"`
}

// Service builds dashboard reports over the current dataset snapshot.
type Service interface {
	// BuildReport filters the dataset and runs every aggregator over the
	// filtered set.
	BuildReport(ctx context.Context, criteria FilterCriteria, opts Options) (*Report, error)
	// FilterOptions lists selector values; months are listed for the given
	// year (0 for all) so they stay consistent with the year choice.
	FilterOptions(ctx context.Context, year int) (*FilterOptions, error)
}

type service struct {
	provider SnapshotProvider
	logg     *logger.Logger
	metrics  *metrics.ReportMetrics
}

// NewService builds a report service over the given snapshot provider.
func NewService(provider SnapshotProvider, logg *logger.Logger, m *metrics.ReportMetrics) Service {
	return &service{provider: provider, logg: logg, metrics: m}
}

func (s *service) BuildReport(ctx context.Context, criteria FilterCriteria, opts Options) (*Report, error) {
	start := time.Now()
	report, err := s.buildReport(ctx, criteria, opts)
	s.metrics.ObserveDuration("dashboard", time.Since(start))
	if err != nil {
		s.metrics.IncFailure("dashboard")
		return nil, err
	}
	s.metrics.IncSuccess("dashboard")
	return report, nil
}

func (s *service) buildReport(ctx context.Context, criteria FilterCriteria, opts Options) (*Report, error) {
	if opts.TopN <= 0 {
		opts.TopN = defaultTopN
	}

	snapshot, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// Filtering must finish before any aggregator runs; the aggregators then
	// share the immutable filtered slice and are independent of each other.
	filtered := Filter(snapshot.Records, criteria)

	report := &Report{
		Criteria: criteria,
		RowCount: len(filtered),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.KPIs = KPIs(filtered)
		return nil
	})
	g.Go(func() error {
		report.Trend = MonthlyTrend(filtered)
		return nil
	})
	g.Go(func() error {
		ranking, err := RankCategories(filtered, opts.CategoryMode)
		if err != nil {
			return err
		}
		report.Categories = CategoryBreakdown{
			Top:    ranking.Top(opts.TopN),
			Bottom: ranking.Bottom(opts.TopN),
		}
		return nil
	})
	g.Go(func() error {
		rows, err := SegmentRFM(filtered, opts.FrequencyMode)
		if err != nil {
			return err
		}
		report.RFM = RFMBreakdown{
			TopByRecency:   TopByRecency(rows, opts.TopN),
			TopByFrequency: TopByFrequency(rows, opts.TopN),
			TopByMonetary:  TopByMonetary(rows, opts.TopN),
		}
		return nil
	})
	g.Go(func() error {
		report.Statuses = TabulateStatuses(filtered)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"dataset_checksum": snapshot.Checksum,
			"rows":             len(filtered),
		})
		s.logg.Debug(ctx, "report.built")
	}
	return report, nil
}

func (s *service) FilterOptions(ctx context.Context, year int) (*FilterOptions, error) {
	snapshot, err := s.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &FilterOptions{
		Years:      AvailableYears(snapshot.Records),
		Months:     AvailableMonths(snapshot.Records, year),
		Categories: AvailableCategories(snapshot.Records),
	}, nil
}
