package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
)

// MonthlySales is one point of the sales trend series.
type MonthlySales struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// MonthlyTrend buckets records by month key and sums the order value per
// bucket, ascending by month. Months with no matching rows are omitted, not
// zero-filled; consumers must tolerate gaps.
func MonthlyTrend(records []dataset.OrderRecord) []MonthlySales {
	totals := make(map[string]decimal.Decimal)
	for _, r := range records {
		totals[r.Month] = totals[r.Month].Add(r.TotalValue)
	}

	series := make([]MonthlySales, 0, len(totals))
	for month, revenue := range totals {
		series = append(series, MonthlySales{Month: month, Revenue: revenue})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Month < series[j].Month
	})
	return series
}
