package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
	pkgerrors "github.com/andhikasp/salesdash-backend/pkg/errors"
)

// FrequencyMode selects what a customer's frequency counts. The refined
// dashboard counted order line rows, an earlier revision counted distinct
// orders; both stay available.
type FrequencyMode string

const (
	// FrequencyRows counts order line rows, consistent with how Monetary sums
	// over the same rows.
	FrequencyRows FrequencyMode = "rows"
	// FrequencyDistinctOrders counts distinct order IDs.
	FrequencyDistinctOrders FrequencyMode = "distinct_orders"
)

// RFMRow scores one real-world customer along the three RFM axes.
type RFMRow struct {
	CustomerUniqueID string `json:"customer_unique_id"`
	// RecencyDays is measured against the filtered set's own maximum purchase
	// date, not wall-clock "now". Results are reproducible for a fixed
	// filtered set but shift when the filter changes.
	RecencyDays int             `json:"recency_days"`
	Frequency   int             `json:"frequency"`
	Monetary    decimal.Decimal `json:"monetary"`
}

// SegmentRFM computes one RFMRow per customer present in the records. Rows
// come back in the order customers first appear in the input. An empty input
// yields an empty segmentation.
func SegmentRFM(records []dataset.OrderRecord, mode FrequencyMode) ([]RFMRow, error) {
	if mode == "" {
		mode = FrequencyRows
	}
	if mode != FrequencyRows && mode != FrequencyDistinctOrders {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown frequency mode").
			WithDetails(map[string]any{"mode": string(mode)})
	}
	if len(records) == 0 {
		return nil, nil
	}

	type customerAgg struct {
		lastPurchase time.Time
		rows         int
		orders       map[string]struct{}
		monetary     decimal.Decimal
	}

	var globalMax time.Time
	aggs := make(map[string]*customerAgg)
	var order []string

	for _, r := range records {
		if r.PurchasedAt.After(globalMax) {
			globalMax = r.PurchasedAt
		}
		agg := aggs[r.CustomerUniqueID]
		if agg == nil {
			agg = &customerAgg{orders: make(map[string]struct{})}
			aggs[r.CustomerUniqueID] = agg
			order = append(order, r.CustomerUniqueID)
		}
		if r.PurchasedAt.After(agg.lastPurchase) {
			agg.lastPurchase = r.PurchasedAt
		}
		agg.rows++
		agg.orders[r.OrderID] = struct{}{}
		agg.monetary = agg.monetary.Add(r.TotalValue)
	}

	globalDate := truncateToDate(globalMax)
	rows := make([]RFMRow, 0, len(order))
	for _, id := range order {
		agg := aggs[id]
		frequency := agg.rows
		if mode == FrequencyDistinctOrders {
			frequency = len(agg.orders)
		}
		rows = append(rows, RFMRow{
			CustomerUniqueID: id,
			RecencyDays:      daysBetween(truncateToDate(agg.lastPurchase), globalDate),
			Frequency:        frequency,
			Monetary:         agg.monetary,
		})
	}
	return rows, nil
}

// TopByRecency returns the n most recently active customers, ascending by
// recency. Ties keep segmentation order.
func TopByRecency(rows []RFMRow, n int) []RFMRow {
	return topBy(rows, n, func(a, b RFMRow) bool {
		return a.RecencyDays < b.RecencyDays
	})
}

// TopByFrequency returns the n highest-frequency customers, descending.
func TopByFrequency(rows []RFMRow, n int) []RFMRow {
	return topBy(rows, n, func(a, b RFMRow) bool {
		return a.Frequency > b.Frequency
	})
}

// TopByMonetary returns the n highest-spending customers, descending.
func TopByMonetary(rows []RFMRow, n int) []RFMRow {
	return topBy(rows, n, func(a, b RFMRow) bool {
		return a.Monetary.GreaterThan(b.Monetary)
	})
}

func topBy(rows []RFMRow, n int, less func(a, b RFMRow) bool) []RFMRow {
	if n <= 0 {
		return nil
	}
	sorted := make([]RFMRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
