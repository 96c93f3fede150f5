package report

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
)

type stubProvider struct {
	snapshot *dataset.Snapshot
	err      error
}

func (s *stubProvider) Snapshot(context.Context) (*dataset.Snapshot, error) {
	return s.snapshot, s.err
}

func newTestService(t *testing.T, records []dataset.OrderRecord) Service {
	t.Helper()
	return NewService(&stubProvider{snapshot: &dataset.Snapshot{Records: records, Checksum: 1}}, nil, nil)
}

func TestBuildReportFansOutOverFilteredSet(t *testing.T) {
	svc := newTestService(t, specExample(t))

	report, err := svc.BuildReport(context.Background(), FilterCriteria{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.RowCount != 3 {
		t.Fatalf("expected 3 filtered rows, got %d", report.RowCount)
	}
	if !report.KPIs.TotalRevenue.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("expected revenue 350, got %s", report.KPIs.TotalRevenue)
	}
	if report.KPIs.UniqueCustomers != 2 {
		t.Fatalf("expected 2 customers, got %d", report.KPIs.UniqueCustomers)
	}
	if len(report.Trend) != 1 || report.Trend[0].Month != "2023-01" {
		t.Fatalf("unexpected trend %+v", report.Trend)
	}
	if len(report.Categories.Top) != 2 {
		t.Fatalf("expected 2 ranked categories, got %+v", report.Categories)
	}
	if len(report.RFM.TopByMonetary) != 2 || report.RFM.TopByMonetary[0].CustomerUniqueID != "cust-b" {
		t.Fatalf("unexpected monetary ranking %+v", report.RFM.TopByMonetary)
	}
	if len(report.Statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %+v", report.Statuses)
	}
}

func TestBuildReportEmptyCategorySelection(t *testing.T) {
	svc := newTestService(t, specExample(t))

	report, err := svc.BuildReport(context.Background(), FilterCriteria{Categories: []string{}}, Options{})
	if err != nil {
		t.Fatalf("empty filtered set is normal, got error: %v", err)
	}
	if report.RowCount != 0 {
		t.Fatalf("expected empty filtered set, got %d rows", report.RowCount)
	}
	if !report.KPIs.TotalRevenue.IsZero() || report.KPIs.TotalOrders != 0 {
		t.Fatalf("expected zero KPIs, got %+v", report.KPIs)
	}
	if len(report.Trend) != 0 || len(report.Statuses) != 0 || len(report.RFM.TopByRecency) != 0 {
		t.Fatalf("expected empty aggregations, got %+v", report)
	}
}

func TestBuildReportIsIdempotent(t *testing.T) {
	svc := newTestService(t, specExample(t))
	criteria := FilterCriteria{Year: 2023, Categories: []string{"toys", "garden"}}

	first, err := svc.BuildReport(context.Background(), criteria, Options{TopN: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.BuildReport(context.Background(), criteria, Options{TopN: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("report build is not deterministic")
	}
}

func TestBuildReportPropagatesModeErrors(t *testing.T) {
	svc := newTestService(t, specExample(t))
	if _, err := svc.BuildReport(context.Background(), FilterCriteria{}, Options{CategoryMode: "bogus"}); err == nil {
		t.Fatalf("expected category mode error")
	}
	if _, err := svc.BuildReport(context.Background(), FilterCriteria{}, Options{FrequencyMode: "bogus"}); err == nil {
		t.Fatalf("expected frequency mode error")
	}
}

func TestBuildReportPropagatesProviderError(t *testing.T) {
	svc := NewService(&stubProvider{err: errors.New("no dataset")}, nil, nil)
	if _, err := svc.BuildReport(context.Background(), FilterCriteria{}, Options{}); err == nil {
		t.Fatalf("expected provider error")
	}
}

func TestFilterOptionsMonthsFollowYear(t *testing.T) {
	records := []dataset.OrderRecord{
		rec(t, "o1", "u1", "p1", "toys", "2022-12-01", "10", "delivered"),
		rec(t, "o2", "u2", "p2", "garden", "2023-01-01", "10", "delivered"),
	}
	svc := newTestService(t, records)

	opts, err := svc.FilterOptions(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(opts.Months, []string{"2023-01"}) {
		t.Fatalf("months must come from the year-filtered set, got %v", opts.Months)
	}
	if !reflect.DeepEqual(opts.Years, []int{2022, 2023}) {
		t.Fatalf("unexpected years %v", opts.Years)
	}
	if !reflect.DeepEqual(opts.Categories, []string{"garden", "toys"}) {
		t.Fatalf("unexpected categories %v", opts.Categories)
	}
}
