package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRecord is one order line item from the normalized export. A multi-item
// order appears once per line item under the same OrderID.
type OrderRecord struct {
	OrderID          string          `json:"order_id"`
	CustomerID       string          `json:"customer_id"`
	CustomerUniqueID string          `json:"customer_unique_id"`
	OrderItemID      int             `json:"order_item_id"`
	ProductID        string          `json:"product_id"`
	ProductCategory  string          `json:"product_category_name"`
	PurchasedAt      time.Time       `json:"order_purchase_timestamp"`
	TotalValue       decimal.Decimal `json:"total_order_value"`
	Status           string          `json:"order_status"`

	// Derived once at load time, immutable afterward.
	Year  int    `json:"year"`
	Month string `json:"month"`
}

// MonthKey formats a timestamp as the "YYYY-MM" bucket key. Lexicographic
// order of keys equals chronological order.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Snapshot is an immutable view of the loaded dataset. Checksum identifies
// the source file revision the records were parsed from.
type Snapshot struct {
	Records  []OrderRecord
	Checksum uint64
	LoadedAt time.Time
}
