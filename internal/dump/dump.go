// Package dump streams page records out of Wikipedia dump files. It
// reads MediaWiki XML exports (plain or bz2-compressed), converts them
// to Avro page files for fast re-reading, and maintains a LevelDB title
// index for random access by article title.
package dump

import (
	"context"
	"errors"

	"github.com/ndelvaux/wikidump/internal/model"
)

// ErrStopIteration stops a page iteration early without reporting an
// error to the caller.
var ErrStopIteration = errors.New("stop iteration")

// Source is anything that can stream pages in dump order.
type Source interface {
	// IterPages calls fn for every page until the source is exhausted,
	// fn returns an error, or ctx is canceled. ErrStopIteration from fn
	// ends the iteration cleanly.
	IterPages(ctx context.Context, fn func(*model.Page) error) error
}

// IterOptions bound and filter a page iteration.
type IterOptions struct {
	Limit  int              // stop after this many kept pages; 0 means no limit
	Filter model.PageFilter // nil keeps every page
}

// ForEachPage iterates a source applying the filter and limit.
func ForEachPage(ctx context.Context, src Source, opts IterOptions, fn func(*model.Page) error) error {
	kept := 0
	return src.IterPages(ctx, func(p *model.Page) error {
		if opts.Filter != nil && !opts.Filter(p) {
			return nil
		}
		if err := fn(p); err != nil {
			return err
		}
		kept++
		if opts.Limit > 0 && kept >= opts.Limit {
			return ErrStopIteration
		}
		return nil
	})
}

// ForEachBatch iterates a source in batches of batchSize pages. The
// final batch may be shorter. The batch slice is reused between calls;
// fn must copy pages it wants to keep.
func ForEachBatch(ctx context.Context, src Source, batchSize int, opts IterOptions, fn func(batch []*model.Page) error) error {
	if batchSize <= 0 {
		batchSize = 1
	}
	batch := make([]*model.Page, 0, batchSize)
	err := ForEachPage(ctx, src, opts, func(p *model.Page) error {
		batch = append(batch, p)
		if len(batch) >= batchSize {
			if err := fn(batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(batch) > 0 {
		return fn(batch)
	}
	return nil
}
