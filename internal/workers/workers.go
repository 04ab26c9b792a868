package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs its workers concurrently with at most limit of them in
// flight. A limit <= 0 means one worker at a time.
type Workers struct {
	workers []Worker
	limit   int
}

// New creates a Workers aggregate.
func New(limit int, workers ...Worker) *Workers {
	return &Workers{workers: workers, limit: limit}
}

// Add appends more workers to the aggregate.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all started workers return.
// Once ctx is cancelled no further workers are started and ctx.Err() is
// returned.
func (w *Workers) Run(ctx context.Context) error {
	limit := w.limit
	if limit <= 0 {
		limit = 1
	}

	g := new(errgroup.Group)
	g.SetLimit(limit)

	for _, worker := range w.workers {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			worker.Run(ctx)
			return nil
		})
	}

	_ = g.Wait()

	return ctx.Err()
}
