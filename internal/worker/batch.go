package worker

import (
	"context"
	"sort"

	"github.com/ndelvaux/wikidump/internal/dump"
	"github.com/ndelvaux/wikidump/internal/model"
)

// BatchFunc processes one batch of pages. index is the zero-based batch
// number in dump order.
type BatchFunc func(ctx context.Context, pages []*model.Page, index int) error

// PageBatchJob runs a BatchFunc over one batch of pages.
type PageBatchJob struct {
	Index int
	Pages []*model.Page
	Fn    BatchFunc
}

// Execute runs the batch function.
func (j *PageBatchJob) Execute(ctx context.Context) Result {
	err := j.Fn(ctx, j.Pages, j.Index)
	return &BatchResult{Index: j.Index, Pages: len(j.Pages), Err: err}
}

// BatchResult reports the outcome of one batch.
type BatchResult struct {
	Index int
	Pages int
	Err   error
}

// GetError returns the batch error, if any.
func (r *BatchResult) GetError() error { return r.Err }

// BatchProcessor fans page batches from a dump out to a worker pool.
type BatchProcessor struct {
	workers   int
	batchSize int
}

// NewBatchProcessor creates a processor with the given parallelism and
// batch size.
func NewBatchProcessor(workers, batchSize int) *BatchProcessor {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &BatchProcessor{workers: workers, batchSize: batchSize}
}

// Process iterates the source in batches and runs fn on each batch
// concurrently. Results come back sorted by batch index. The iteration
// error, if any, is returned alongside the results of the batches that
// were submitted before it occurred.
func (b *BatchProcessor) Process(ctx context.Context, src dump.Source, opts dump.IterOptions, fn BatchFunc) ([]*BatchResult, error) {
	pool := NewPool(b.workers)
	pool.Start()

	// Drain results while batches are still being submitted. The pool's
	// result buffer only holds a few entries, so on a dump with many
	// batches Submit would otherwise wedge behind stalled workers.
	collected := make(chan []*BatchResult, 1)
	go func() {
		var results []*BatchResult
		for r := range pool.Results() {
			results = append(results, r.(*BatchResult))
		}
		collected <- results
	}()

	index := 0
	iterErr := dump.ForEachBatch(ctx, src, b.batchSize, opts, func(batch []*model.Page) error {
		// The iterator reuses its batch slice, so hand the job a copy.
		pages := make([]*model.Page, len(batch))
		copy(pages, batch)
		pool.Submit(&PageBatchJob{Index: index, Pages: pages, Fn: fn})
		index++
		return nil
	})

	pool.Close()
	results := <-collected
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, iterErr
}
