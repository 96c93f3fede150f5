package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/andhikasp/salesdash-backend/pkg/errors"
)

// Column names expected in the order export header.
const (
	ColOrderID          = "order_id"
	ColCustomerID       = "customer_id"
	ColCustomerUniqueID = "customer_unique_id"
	ColOrderItemID      = "order_item_id"
	ColProductID        = "product_id"
	ColProductCategory  = "product_category_name"
	ColPurchasedAt      = "order_purchase_timestamp"
	ColTotalValue       = "total_order_value"
	ColOrderStatus      = "order_status"
)

var requiredColumns = []string{
	ColOrderID,
	ColCustomerID,
	ColCustomerUniqueID,
	ColOrderItemID,
	ColProductID,
	ColProductCategory,
	ColPurchasedAt,
	ColTotalValue,
	ColOrderStatus,
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// LoadCSV reads an order export from disk.
func LoadCSV(path string) ([]OrderRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading dataset file")
	}
	return ParseCSV(data)
}

// ParseCSV decodes order records from raw CSV bytes. The header row drives
// column positions; extra columns are ignored. Malformed rows fail the whole
// load rather than being silently coerced or skipped.
func ParseCSV(data []byte) ([]OrderRecord, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dataset is empty")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "reading dataset header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "dataset missing required column").
				WithDetails(map[string]any{"column": col})
		}
	}

	var records []OrderRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "reading dataset row").
				WithDetails(map[string]any{"line": line})
		}

		record, err := parseRow(row, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, index map[string]int, line int) (OrderRecord, error) {
	field := func(col string) string {
		return strings.TrimSpace(row[index[col]])
	}

	for _, col := range requiredColumns {
		if field(col) == "" {
			return OrderRecord{}, rowError(line, col, "field is empty")
		}
	}

	itemID, err := strconv.Atoi(field(ColOrderItemID))
	if err != nil {
		return OrderRecord{}, rowError(line, ColOrderItemID, "not an integer")
	}

	purchasedAt, err := parseTimestamp(field(ColPurchasedAt))
	if err != nil {
		return OrderRecord{}, rowError(line, ColPurchasedAt, "unparsable timestamp")
	}

	total, err := decimal.NewFromString(field(ColTotalValue))
	if err != nil {
		return OrderRecord{}, rowError(line, ColTotalValue, "not a decimal")
	}
	if total.IsNegative() {
		return OrderRecord{}, rowError(line, ColTotalValue, "negative order value")
	}

	return OrderRecord{
		OrderID:          field(ColOrderID),
		CustomerID:       field(ColCustomerID),
		CustomerUniqueID: field(ColCustomerUniqueID),
		OrderItemID:      itemID,
		ProductID:        field(ColProductID),
		ProductCategory:  field(ColProductCategory),
		PurchasedAt:      purchasedAt,
		TotalValue:       total,
		Status:           field(ColOrderStatus),
		Year:             purchasedAt.Year(),
		Month:            MonthKey(purchasedAt),
	}, nil
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value)
}

func rowError(line int, column, reason string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid dataset row").
		WithDetails(map[string]any{"line": line, "column": column, "reason": reason})
}
