// Package fn provides curried, pure slice combinators used to build the
// statistics pipeline declaratively. None of the functions mutate their input.
package fn

import "sort"

// Map returns a function that applies transform to every element.
func Map[T, R any](transform func(T) R) func([]T) []R {
	return func(items []T) []R {
		out := make([]R, len(items))
		for i, item := range items {
			out[i] = transform(item)
		}
		return out
	}
}

// Filter returns a function that keeps elements matching pred.
func Filter[T any](pred func(T) bool) func([]T) []T {
	return func(items []T) []T {
		out := make([]T, 0, len(items))
		for _, item := range items {
			if pred(item) {
				out = append(out, item)
			}
		}
		return out
	}
}

// SortBy returns a function that copies the slice and sorts it with a
// stable sort, so equal elements keep their original order.
func SortBy[T any](less func(a, b T) bool) func([]T) []T {
	return func(items []T) []T {
		out := make([]T, len(items))
		copy(out, items)
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j])
		})
		return out
	}
}

// GroupBy returns a function that buckets elements by key.
func GroupBy[T any, K comparable](key func(T) K) func([]T) map[K][]T {
	return func(items []T) map[K][]T {
		out := make(map[K][]T)
		for _, item := range items {
			k := key(item)
			out[k] = append(out[k], item)
		}
		return out
	}
}

// UniqueBy returns a function that keeps the first occurrence per key.
func UniqueBy[T any, K comparable](key func(T) K) func([]T) []T {
	return func(items []T) []T {
		seen := make(map[K]struct{}, len(items))
		out := make([]T, 0, len(items))
		for _, item := range items {
			k := key(item)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, item)
		}
		return out
	}
}

// Partition returns a function that splits elements into those matching
// pred and those that do not, preserving order in both halves.
func Partition[T any](pred func(T) bool) func([]T) ([]T, []T) {
	return func(items []T) ([]T, []T) {
		matching := make([]T, 0, len(items))
		rest := make([]T, 0, len(items))
		for _, item := range items {
			if pred(item) {
				matching = append(matching, item)
			} else {
				rest = append(rest, item)
			}
		}
		return matching, rest
	}
}

// Chunk returns a function that splits a slice into fixed-size sub-slices.
// The final chunk may be shorter. A non-positive size yields no chunks.
func Chunk[T any](size int) func([]T) [][]T {
	return func(items []T) [][]T {
		if size <= 0 || len(items) == 0 {
			return nil
		}
		out := make([][]T, 0, (len(items)+size-1)/size)
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))
			out = append(out, items[start:end:end])
		}
		return out
	}
}

// Take returns a function that keeps at most n leading elements.
func Take[T any](n int) func([]T) []T {
	return func(items []T) []T {
		if n <= 0 {
			return []T{}
		}
		if n >= len(items) {
			return items
		}
		return items[:n]
	}
}

// Skip returns a function that drops the first n elements.
func Skip[T any](n int) func([]T) []T {
	return func(items []T) []T {
		if n <= 0 {
			return items
		}
		if n >= len(items) {
			return []T{}
		}
		return items[n:]
	}
}

// Pipe applies fns to value left to right.
func Pipe[T any](value T, fns ...func(T) T) T {
	for _, f := range fns {
		value = f(value)
	}
	return value
}

// Compose combines fns right to left into a single reusable function.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			value = fns[i](value)
		}
		return value
	}
}
