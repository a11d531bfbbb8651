package core

import (
	"context"

	"github.com/ib-77/roprx/pkg/rop"
)

// FromValues emits values in order and closes. It stops early when ctx is done.
func FromValues[T any](ctx context.Context, values ...T) <-chan T {
	in := makeOut[T](ctx)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func FromSlice[T any](ctx context.Context, values []T) <-chan T {
	return FromValues(ctx, values...)
}

// Of is a one-element stream.
func Of[T any](ctx context.Context, value T) <-chan T {
	return FromValues(ctx, value)
}

// Empty returns a closed channel.
func Empty[T any]() <-chan T {
	ch := make(chan T)
	close(ch)
	return ch
}

func FromResults[T, E any](ctx context.Context, values ...rop.Result[T, E]) <-chan rop.Result[T, E] {
	return FromValues(ctx, values...)
}

// Successes wraps every value as a success and emits it.
func Successes[T, E any](ctx context.Context, values ...T) <-chan rop.Result[T, E] {
	results := make([]rop.Result[T, E], 0, len(values))
	for _, v := range values {
		results = append(results, rop.Success[T, E](v))
	}
	return FromValues(ctx, results...)
}

// FirstOrDefault blocks for the first value of out, returning defaultV if out
// closes empty or ctx is done first.
func FirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// Collect gathers everything out emits until it closes or ctx is done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
