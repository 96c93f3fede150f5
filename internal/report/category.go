package report

import (
	"sort"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
	pkgerrors "github.com/andhikasp/salesdash-backend/pkg/errors"
)

// CountMode selects what a category's count measures. Both definitions have
// appeared in the dashboard's history, so the mode is explicit rather than
// hard-coded.
type CountMode string

const (
	// CountDistinctProducts counts unique product IDs per category (variety).
	CountDistinctProducts CountMode = "distinct_products"
	// CountRows counts order line items per category (volume).
	CountRows CountMode = "rows"
)

// CategoryCount is one entry of a category ranking.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryRanking is sorted descending by count; ties keep the order in which
// the categories first appeared in the input.
type CategoryRanking []CategoryCount

// RankCategories ranks the categories present in the records under the given
// mode. An empty input yields an empty ranking.
func RankCategories(records []dataset.OrderRecord, mode CountMode) (CategoryRanking, error) {
	if mode == "" {
		mode = CountDistinctProducts
	}

	firstSeen := make(map[string]int)
	var order []string

	rows := make(map[string]int)
	products := make(map[string]map[string]struct{})

	for _, r := range records {
		if _, ok := firstSeen[r.ProductCategory]; !ok {
			firstSeen[r.ProductCategory] = len(order)
			order = append(order, r.ProductCategory)
		}
		rows[r.ProductCategory]++
		set := products[r.ProductCategory]
		if set == nil {
			set = make(map[string]struct{})
			products[r.ProductCategory] = set
		}
		set[r.ProductID] = struct{}{}
	}

	ranking := make(CategoryRanking, 0, len(order))
	for _, category := range order {
		var count int
		switch mode {
		case CountDistinctProducts:
			count = len(products[category])
		case CountRows:
			count = rows[category]
		default:
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category count mode").
				WithDetails(map[string]any{"mode": string(mode)})
		}
		ranking = append(ranking, CategoryCount{Category: category, Count: count})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	return ranking, nil
}

// Top returns the best-selling n categories. Fewer than n categories returns
// all of them.
func (r CategoryRanking) Top(n int) []CategoryCount {
	if n <= 0 {
		return nil
	}
	if n > len(r) {
		n = len(r)
	}
	out := make([]CategoryCount, n)
	copy(out, r[:n])
	return out
}

// Bottom returns the least-selling n categories, keeping the descending
// ranking order (the tail of the ranked sequence, not a re-sort).
func (r CategoryRanking) Bottom(n int) []CategoryCount {
	if n <= 0 {
		return nil
	}
	if n > len(r) {
		n = len(r)
	}
	out := make([]CategoryCount, n)
	copy(out, r[len(r)-n:])
	return out
}
