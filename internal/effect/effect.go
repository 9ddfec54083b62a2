// Package effect provides a deferred-computation wrapper: a description of
// an asynchronous operation that performs no I/O until it is invoked.
// Composing effects with Map, FlatMap and Recover builds the whole workflow
// before anything runs, so validation can short-circuit before any fetch.
package effect

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Effect describes a computation producing T. Constructing an Effect never
// performs I/O; only calling it does.
type Effect[T any] func(ctx context.Context) (T, error)

// Of lifts an already-computed value into an Effect.
func Of[T any](value T) Effect[T] {
	return func(context.Context) (T, error) {
		return value, nil
	}
}

// Fail lifts an error into an Effect that always fails.
func Fail[T any](err error) Effect[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// From wraps an async function as an Effect.
func From[T any](fn func(ctx context.Context) (T, error)) Effect[T] {
	return Effect[T](fn)
}

// Map builds an Effect that, when invoked, runs e and transforms its value.
// Failures pass through unchanged.
func Map[T, R any](e Effect[T], fn func(T) R) Effect[R] {
	return func(ctx context.Context) (R, error) {
		value, err := e(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(value), nil
	}
}

// FlatMap chains e into a dependent Effect produced from its value.
func FlatMap[T, R any](e Effect[T], fn func(T) Effect[R]) Effect[R] {
	return func(ctx context.Context) (R, error) {
		value, err := e(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(value)(ctx)
	}
}

// Recover intercepts a failure from e, letting handler transform or
// re-raise it. Apply once at the outermost composition layer so messages
// are not double-wrapped.
func Recover[T any](e Effect[T], handler func(error) error) Effect[T] {
	return func(ctx context.Context) (T, error) {
		value, err := e(ctx)
		if err != nil {
			var zero T
			return zero, handler(err)
		}
		return value, nil
	}
}

// Tap runs observe around e without changing its outcome. Used to push
// logging into the orchestrating shell instead of the pure pipeline.
func Tap[T any](e Effect[T], observe func(value T, err error)) Effect[T] {
	return func(ctx context.Context) (T, error) {
		value, err := e(ctx)
		observe(value, err)
		return value, err
	}
}

// All invokes effects concurrently and returns their results in argument
// order, not completion order. The first failure cancels the rest.
func All[T any](effects ...Effect[T]) Effect[[]T] {
	return func(ctx context.Context) ([]T, error) {
		results := make([]T, len(effects))
		eg, egCtx := errgroup.WithContext(ctx)
		for i, e := range effects {
			eg.Go(func() error {
				value, err := e(egCtx)
				if err != nil {
					return err
				}
				results[i] = value
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		return results, nil
	}
}
