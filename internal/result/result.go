// Package result provides a success/failure container used for explicit,
// exception-free error propagation through the summary pipeline.
package result

import (
	"context"
	"fmt"
	"strings"
)

// Result holds either a value or an error, never both.
// A zero Result is a failure with a nil error; use Success or Failure to construct.
type Result[T any] struct {
	data T
	err  error
	ok   bool
}

// Success creates a successful result carrying data.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data, ok: true}
}

// Failure creates a failed result carrying err.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Value returns the carried value and whether it is present.
func (r Result[T]) Value() (T, bool) {
	return r.data, r.ok
}

// Err returns the carried error, nil on the success branch.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap collapses the result into Go's conventional pair form.
func (r Result[T]) Unwrap() (T, error) {
	return r.data, r.err
}

// Map applies fn to the value on the success branch, passing failure
// through unchanged.
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	if !r.ok {
		return Failure[R](r.err)
	}
	return Success(fn(r.data))
}

// FlatMap chains a transformation that itself may fail, short-circuiting
// on the first failure.
func FlatMap[T, R any](r Result[T], fn func(T) Result[R]) Result[R] {
	if !r.ok {
		return Failure[R](r.err)
	}
	return fn(r.data)
}

// Fold collapses either branch into a single value.
// Used at workflow boundaries to hand the result back to imperative code.
func Fold[T, R any](r Result[T], onSuccess func(T) R, onFailure func(error) R) R {
	if r.ok {
		return onSuccess(r.data)
	}
	return onFailure(r.err)
}

// Combine succeeds only if every result is a success, returning the values
// in argument order. On any failure it aggregates all failure messages into
// one combined error instead of stopping at the first.
func Combine[T any](results ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	var messages []string
	for _, r := range results {
		if !r.ok {
			messages = append(messages, r.err.Error())
			continue
		}
		values = append(values, r.data)
	}
	if len(messages) > 0 {
		return Failure[[]T](fmt.Errorf("%s", strings.Join(messages, "; ")))
	}
	return Success(values)
}

// TryCatch runs fn, converting a panic into a failure instead of
// unwinding the caller. Non-error panics are coerced into an error with
// the stringified value as the message.
func TryCatch[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Failure[T](coerceError(rec))
		}
	}()
	value, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// TryCatchCtx is TryCatch for context-aware functions, the Go form of
// wrapping an async computation.
func TryCatchCtx[T any](ctx context.Context, fn func(context.Context) (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Failure[T](coerceError(rec))
		}
	}()
	value, err := fn(ctx)
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

func coerceError(rec any) error {
	if err, isErr := rec.(error); isErr {
		return err
	}
	return fmt.Errorf("%v", rec)
}
