package archive

import (
	"math"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/spinque"
)

// allocationFloor guarantees exploratory coverage: every category is fetched
// with at least this many slots even when the preview sample missed it.
const allocationFloor = 3

// EvenSplit divides count across the categories by ceiling division. Used
// when no preview sample is available.
func EvenSplit(count int, categories []string) map[string]int {
	allocation := make(map[string]int, len(categories))
	if len(categories) == 0 {
		return allocation
	}

	share := int(math.Ceil(float64(count) / float64(len(categories))))
	for _, name := range categories {
		allocation[name] = share
	}
	return allocation
}

// PlanAllocation distributes a result budget across the categories based on
// the category frequencies observed in an unfiltered preview sample. Without
// a usable preview the budget is split evenly. With one, each category gets
// ceil(count * frequency), floored at allocationFloor so that categories
// absent from the small sample are still explored.
func PlanAllocation(preview []spinque.RawResultItem, count int, categories []string) map[string]int {
	if len(preview) == 0 {
		return EvenSplit(count, categories)
	}

	occurrences := make(map[string]int, len(categories))
	for i := range preview {
		occurrences[preview[i].Category()]++
	}

	allocation := make(map[string]int, len(categories))
	for _, name := range categories {
		frequency := float64(occurrences[name]) / float64(len(preview))
		allocated := int(math.Ceil(float64(count) * frequency))
		if allocated < allocationFloor {
			allocated = allocationFloor
		}
		allocation[name] = allocated
	}
	return allocation
}

// EstimateTotals re-derives each bucket's reported total by distributing the
// preview's true total proportionally to the number of items actually
// returned per category. This is a heuristic projection, not a measured
// count: no endpoint reports a per-category global total, so items that
// exist server-side but were not fetched are only represented through this
// estimate. When no category returned anything the per-category totals are
// left as reported by the individual searches.
func EstimateTotals(result *AggregateResult, previewTotal int) {
	returned := 0
	for _, bucket := range result.Buckets {
		returned += len(bucket.Items)
	}
	if returned == 0 {
		return
	}

	for _, bucket := range result.Buckets {
		share := float64(len(bucket.Items)) / float64(returned)
		bucket.ReportedTotal = int(math.Round(float64(previewTotal) * share))
	}
}
