package report

import (
	"sort"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
)

// FilterCriteria narrows the dataset to a time window and a category set.
//
// Year 0 and Month "" mean "all". Categories nil means no category narrowing
// (the selector default of every category checked); a non-nil empty slice is
// an explicit empty selection and matches nothing.
type FilterCriteria struct {
	Year       int      `json:"year,omitempty"`
	Month      string   `json:"month,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// Filter returns the records matching the criteria. The input slice is never
// mutated; the result is a fresh, possibly empty slice. Year narrows first,
// then month, then category membership.
func Filter(records []dataset.OrderRecord, criteria FilterCriteria) []dataset.OrderRecord {
	var categories map[string]struct{}
	if criteria.Categories != nil {
		categories = make(map[string]struct{}, len(criteria.Categories))
		for _, c := range criteria.Categories {
			categories[c] = struct{}{}
		}
	}

	filtered := make([]dataset.OrderRecord, 0, len(records))
	for _, r := range records {
		if criteria.Year != 0 && r.Year != criteria.Year {
			continue
		}
		if criteria.Month != "" && r.Month != criteria.Month {
			continue
		}
		if categories != nil {
			if _, ok := categories[r.ProductCategory]; !ok {
				continue
			}
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// AvailableYears lists the distinct years in the dataset, ascending.
func AvailableYears(records []dataset.OrderRecord) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, r := range records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	sort.Ints(years)
	return years
}

// AvailableMonths lists the distinct month keys for the month selector,
// ascending. The listing is computed from the year-filtered set only, never
// the month-filtered one, so the selector options stay consistent with the
// chosen year. Year 0 lists months across the whole dataset.
func AvailableMonths(records []dataset.OrderRecord, year int) []string {
	seen := make(map[string]struct{})
	var months []string
	for _, r := range records {
		if year != 0 && r.Year != year {
			continue
		}
		if _, ok := seen[r.Month]; ok {
			continue
		}
		seen[r.Month] = struct{}{}
		months = append(months, r.Month)
	}
	sort.Strings(months)
	return months
}

// AvailableCategories lists the distinct category labels, ascending.
func AvailableCategories(records []dataset.OrderRecord) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, r := range records {
		if _, ok := seen[r.ProductCategory]; ok {
			continue
		}
		seen[r.ProductCategory] = struct{}{}
		categories = append(categories, r.ProductCategory)
	}
	sort.Strings(categories)
	return categories
}
