// Package fanout runs one function over a slice of items with bounded
// concurrency, preserving input order in the results. TodoService.Sync uses
// it to fetch the tasks of every list without flooding the remote API.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPanic wraps a value recovered from a panicking item function.
var ErrPanic = errors.New("fanout: item panicked")

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines. Results are returned in input order.
//
// An item still waiting for a worker slot when ctx ends records ctx.Err()
// and fn is not called for it. Items already running are not interrupted;
// fn must watch ctx itself. A panic in fn is recorded as an ErrPanic result
// for that item.
//
// Run blocks until every item has a result. maxWorkers below 1 is treated
// as 1. An empty items slice yields an empty non-nil result slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}
			results[i] = call(ctx, fn, items[i])
		})
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, fn func(context.Context, T) (R, error), item T) (res Result[R]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, rec)}
		}
	}()
	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
