package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MuhammadZahidRWTH/docextract/internal/model"
)

// Result is the outcome for one file of a batch.
type Result struct {
	Err    error
	Path   string
	Record model.OutputRecord
}

// BatchOptions configures Batch.
type BatchOptions struct {
	// OnDone is called from the worker goroutines after each file.
	OnDone  func(Result)
	Workers int
}

// Batch processes paths with up to Workers files in flight. A failing file is reported
// in its Result and does not stop the others; only cancellation of ctx does. Results are
// in input order.
func (pr *Processor) Batch(ctx context.Context, paths []string, opts BatchOptions) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := pr.ProcessFile(gctx, path)
			results[i] = Result{Path: path, Record: rec, Err: err}
			if opts.OnDone != nil {
				opts.OnDone(results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
