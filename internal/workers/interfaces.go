// Package workers provides abstractions for running units of work with a
// bounded degree of parallelism.
// It defines the Worker interface and a Workers aggregate that runs a set
// of workers concurrently, never more than a fixed number at a time.
package workers

import "context"

// Worker is the interface that must be implemented by any unit of work.
//
// Run must record its own outcome (for example into a result slot owned by
// the caller). A failing worker never stops its siblings.
//
// Example implementation:
//
//	type decryptOne struct{ out *string }
//
//	func (w *decryptOne) Run(ctx context.Context) {
//	    // decrypt and store into w.out
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts an ordinary function to the Worker interface.
type WorkerFunc func(ctx context.Context)

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
