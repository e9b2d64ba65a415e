// Package async runs a blocking call in the background and hands the caller a
// Future to await its outcome.
//
// A Future that is never awaited still runs to completion, but its error is
// lost: callers that fire and forget must accept that failures go unobserved.
package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Future[T any] struct {
	g    errgroup.Group
	done chan struct{}
	val  T
}

// Go starts fn on its own goroutine. ctx is handed to fn unchanged, so
// cancelling it aborts the work itself, not just the wait.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.g.Go(func() error {
		defer close(f.done)
		v, err := fn(ctx)
		f.val = v
		return err
	})
	return f
}

// Done is closed once the underlying call has returned.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call returns or ctx is done. Awaiting a finished
// Future any number of times yields the same result.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	return f.val, f.g.Wait()
}
