package report

import (
	"testing"

	"github.com/andhikasp/salesdash-backend/internal/dataset"
)

func TestTabulateStatusesDescendingWithStableTies(t *testing.T) {
	records := []dataset.OrderRecord{
		rec(t, "o1", "u1", "p1", "toys", "2023-01-01", "10", "shipped"),
		rec(t, "o2", "u2", "p2", "toys", "2023-01-02", "10", "delivered"),
		rec(t, "o3", "u3", "p3", "toys", "2023-01-03", "10", "delivered"),
		rec(t, "o4", "u4", "p4", "toys", "2023-01-04", "10", "weird_status"),
	}

	counts := TabulateStatuses(records)
	if len(counts) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(counts))
	}
	if counts[0].Status != "delivered" || counts[0].Count != 2 {
		t.Fatalf("expected delivered first with 2, got %+v", counts[0])
	}
	// shipped and weird_status tie at 1; shipped was seen first.
	if counts[1].Status != "shipped" || counts[2].Status != "weird_status" {
		t.Fatalf("tie-break should keep first-seen order: %+v", counts)
	}
}

func TestTabulateStatusesCountsNovelLabels(t *testing.T) {
	records := []dataset.OrderRecord{
		rec(t, "o1", "u1", "p1", "toys", "2023-01-01", "10", "made_up"),
	}
	counts := TabulateStatuses(records)
	if len(counts) != 1 || counts[0].Status != "made_up" {
		t.Fatalf("novel labels must be counted as-is, got %+v", counts)
	}
}

func TestTabulateStatusesEmptyInput(t *testing.T) {
	if counts := TabulateStatuses(nil); len(counts) != 0 {
		t.Fatalf("expected empty tabulation, got %+v", counts)
	}
}
