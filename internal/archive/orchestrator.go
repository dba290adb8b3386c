package archive

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/spinque"
)

// Searcher is the external search collaborator. An empty category searches
// across all content categories.
type Searcher interface {
	Search(ctx context.Context, query, category string, count, offset int) (*spinque.ResultPage, *spinque.SearchStats, error)
}

// CategoryBucket holds the normalized results of one content category plus
// its estimated server-side total.
type CategoryBucket struct {
	ReportedTotal int                `json:"reported_total"`
	Items         []NormalizedRecord `json:"items"`
}

// AggregateResult is the merged outcome of a multi-category search. Buckets
// contains one entry per addressed category; Errors records recovered
// per-category failures that did not abort the call.
type AggregateResult struct {
	Query          string                     `json:"query"`
	Buckets        map[string]*CategoryBucket `json:"buckets"`
	CategoryOrder  []string                   `json:"category_order"`
	Errors         []string                   `json:"errors,omitempty"`
	PartialResults bool                       `json:"partial_results"`
}

// TotalItems sums the reported totals across all buckets
func (r *AggregateResult) TotalItems() int {
	total := 0
	for _, bucket := range r.Buckets {
		total += bucket.ReportedTotal
	}
	return total
}

// ReturnedItems counts the records actually fetched across all buckets
func (r *AggregateResult) ReturnedItems() int {
	n := 0
	for _, bucket := range r.Buckets {
		n += len(bucket.Items)
	}
	return n
}

// AggregateError is the only user-visible failure of a search. It carries
// the original query and a short cause, never a raw transport error object.
type AggregateError struct {
	Query string
	Cause string
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("search for %q failed: %s", e.Query, e.Cause)
}

// Aggregator coordinates the multi-category search: preview sampling, budget
// planning, concurrent per-category fan-out with failure isolation, and
// normalization of every returned item.
type Aggregator struct {
	client      Searcher
	previewSize int
	maxCount    int
	logger      *log.Logger
}

// AggregatorOption customizes an Aggregator
type AggregatorOption func(*Aggregator)

// WithPreviewSize overrides the preview sample size (default 20)
func WithPreviewSize(size int) AggregatorOption {
	return func(a *Aggregator) {
		if size > 0 && size <= 20 {
			a.previewSize = size
		}
	}
}

// WithMaxCount overrides the maximum accepted result count (default 100)
func WithMaxCount(max int) AggregatorOption {
	return func(a *Aggregator) {
		if max > 0 {
			a.maxCount = max
		}
	}
}

// WithLogger overrides the aggregator's logger
func WithLogger(logger *log.Logger) AggregatorOption {
	return func(a *Aggregator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAggregator creates a search aggregator over the given collaborator
func NewAggregator(client Searcher, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		client:      client,
		previewSize: 20,
		maxCount:    100,
		logger:      log.New(os.Stderr, "[Aggregator] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RunSearch executes a search and returns the merged category map. A
// non-empty category restricts the search to that single category; all other
// buckets stay empty. Validation failures are reported synchronously before
// any external call; a total search failure surfaces as *AggregateError.
func (a *Aggregator) RunSearch(ctx context.Context, query, category string, count int) (*AggregateResult, error) {
	if count < 1 || count > a.maxCount {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", a.maxCount, count)
	}
	if category != "" && !IsValidCategory(category) {
		return nil, fmt.Errorf("unknown content category %q", category)
	}

	result := newAggregateResult(query, category)

	if category != "" {
		if err := a.searchSingleCategory(ctx, result, query, category, count); err != nil {
			return nil, err
		}
		return result, nil
	}

	failed := a.searchAllCategories(ctx, result, query, count)

	// A query with no matches is an empty result, not an error. Only when
	// every per-category search itself failed is there nothing to report.
	if failed == len(result.CategoryOrder) {
		return nil, &AggregateError{Query: query, Cause: "all category searches failed"}
	}

	return result, nil
}

// newAggregateResult pre-allocates one bucket per addressed category. Each
// concurrent task later writes only to its own bucket; the bucket keys are
// fixed up front so no two tasks ever alias the same slot.
func newAggregateResult(query, category string) *AggregateResult {
	result := &AggregateResult{
		Query:         query,
		Buckets:       make(map[string]*CategoryBucket, len(Categories)+1),
		CategoryOrder: CategoryNames(),
	}
	for _, name := range result.CategoryOrder {
		result.Buckets[name] = &CategoryBucket{Items: []NormalizedRecord{}}
	}
	if category != "" {
		if _, ok := result.Buckets[category]; !ok {
			result.Buckets[category] = &CategoryBucket{Items: []NormalizedRecord{}}
			result.CategoryOrder = append(result.CategoryOrder, category)
		}
	}
	return result
}

// searchSingleCategory issues exactly one filtered search. There is no
// fallback bucket here, so a transport failure propagates as AggregateError.
func (a *Aggregator) searchSingleCategory(ctx context.Context, result *AggregateResult, query, category string, count int) error {
	page, stats, err := a.client.Search(ctx, query, category, count, 0)
	if err != nil {
		a.logger.Printf("category search failed: query=%q category=%s: %v", query, category, err)
		return &AggregateError{Query: query, Cause: err.Error()}
	}

	fillBucket(result.Buckets[category], page, stats)
	return nil
}

// searchAllCategories samples the category distribution, plans the budget
// and fans out one search per category. Each per-category search is failure
// isolated: an error leaves its bucket empty and is recorded, siblings run
// to completion. Returns the number of category searches that failed.
func (a *Aggregator) searchAllCategories(ctx context.Context, result *AggregateResult, query string, count int) int {
	var preview []spinque.RawResultItem
	previewTotal := -1

	page, stats, err := a.client.Search(ctx, query, "", a.previewSize, 0)
	if err != nil {
		a.logger.Printf("preview search failed, falling back to even split: %v", err)
		result.Errors = append(result.Errors, fmt.Sprintf("preview search failed: %v", err))
		result.PartialResults = true
	} else if len(page.Items) > 0 {
		preview = page.Items
		previewTotal = stats.Total
	}

	allocation := PlanAllocation(preview, count, result.CategoryOrder)

	categoryErrs := make([]string, len(result.CategoryOrder))

	g, gCtx := errgroup.WithContext(ctx)
	for i, name := range result.CategoryOrder {
		bucket := result.Buckets[name]
		requested := allocation[name]

		g.Go(func() error {
			page, stats, err := a.client.Search(gCtx, query, name, requested, 0)
			if err != nil {
				categoryErrs[i] = fmt.Sprintf("%s search failed: %v", name, err)
				a.logger.Printf("category search failed: query=%q category=%s: %v", query, name, err)
				return nil
			}
			fillBucket(bucket, page, stats)
			return nil
		})
	}
	// Branches never return errors; Wait only joins the fan-out.
	_ = g.Wait()

	failed := 0
	for _, msg := range categoryErrs {
		if msg != "" {
			result.Errors = append(result.Errors, msg)
			result.PartialResults = true
			failed++
		}
	}

	if previewTotal >= 0 {
		EstimateTotals(result, previewTotal)
	}
	return failed
}

// fillBucket normalizes every returned raw item into the bucket
func fillBucket(bucket *CategoryBucket, page *spinque.ResultPage, stats *spinque.SearchStats) {
	bucket.ReportedTotal = stats.Total
	bucket.Items = make([]NormalizedRecord, 0, len(page.Items))
	for i := range page.Items {
		bucket.Items = append(bucket.Items, Normalize(&page.Items[i]))
	}
}
