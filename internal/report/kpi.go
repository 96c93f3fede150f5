package report

import (
	"github.com/shopspring/decimal"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
)

// KPISummary bundles the scalar headline metrics for a filtered set.
type KPISummary struct {
	// TotalRevenue sums every line item; a multi-item order contributes once
	// per item.
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	// TotalOrders counts distinct order IDs.
	TotalOrders int `json:"total_orders"`
	// UniqueCustomers counts distinct real-world customers, not accounts.
	UniqueCustomers int `json:"unique_customers"`
}

// KPIs computes the headline metrics. An empty input yields all zeros.
func KPIs(records []dataset.OrderRecord) KPISummary {
	revenue := decimal.Zero
	orders := make(map[string]struct{})
	customers := make(map[string]struct{})

	for _, r := range records {
		revenue = revenue.Add(r.TotalValue)
		orders[r.OrderID] = struct{}{}
		customers[r.CustomerUniqueID] = struct{}{}
	}

	return KPISummary{
		TotalRevenue:    revenue,
		TotalOrders:     len(orders),
		UniqueCustomers: len(customers),
	}
}
