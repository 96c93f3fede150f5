package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
)

// rec builds an order line row with derived fields, the way the loader would.
func rec(t *testing.T, orderID, customerUniqueID, productID, category, timestamp, value, status string) dataset.OrderRecord {
	t.Helper()
	purchasedAt, err := time.Parse("2006-01-02 15:04:05", timestamp)
	if err != nil {
		purchasedAt, err = time.Parse("2006-01-02", timestamp)
	}
	if err != nil {
		t.Fatalf("parse timestamp %q: %v", timestamp, err)
	}
	return dataset.OrderRecord{
		OrderID:          orderID,
		CustomerID:       customerUniqueID + "-acct",
		CustomerUniqueID: customerUniqueID,
		OrderItemID:      1,
		ProductID:        productID,
		ProductCategory:  category,
		PurchasedAt:      purchasedAt,
		TotalValue:       decimal.RequireFromString(value),
		Status:           status,
		Year:             purchasedAt.Year(),
		Month:            dataset.MonthKey(purchasedAt),
	}
}

// specExample is the three-row worked example: customer A buys twice in
// January 2023, customer B once in between.
func specExample(t *testing.T) []dataset.OrderRecord {
	t.Helper()
	return []dataset.OrderRecord{
		rec(t, "oa1", "cust-a", "p1", "toys", "2023-01-01", "100", "delivered"),
		rec(t, "oa2", "cust-a", "p2", "toys", "2023-01-10", "50", "delivered"),
		rec(t, "ob1", "cust-b", "p3", "garden", "2023-01-05", "200", "shipped"),
	}
}
