package report

import (
	"sort"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
)

// StatusCount is one entry of the order status distribution.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TabulateStatuses counts records per status label, descending by count with
// first-seen order breaking ties. Labels are an open set; novel statuses are
// counted as-is.
func TabulateStatuses(records []dataset.OrderRecord) []StatusCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if _, ok := counts[r.Status]; !ok {
			order = append(order, r.Status)
		}
		counts[r.Status]++
	}

	tabulated := make([]StatusCount, 0, len(order))
	for _, status := range order {
		tabulated = append(tabulated, StatusCount{Status: status, Count: counts[status]})
	}
	sort.SliceStable(tabulated, func(i, j int) bool {
		return tabulated[i].Count > tabulated[j].Count
	})
	return tabulated
}
