package core

import (
	"context"
)

// Locomotive pulls every element of inputCh through step and pushes the
// accepted outputs to outCh, in order. It returns when inputCh closes or ctx
// is done; it never closes outCh.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	step func(ctx context.Context, input In) (Out, bool)) {

	for {
		if ctx.Err() != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr, accepted := step(ctx, in)
			if !accepted {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case outCh <- pr:
			}
		}
	}
}

// Choose maps and filters in a single pass: outputs for which f reports false
// are dropped.
func Choose[In, Out any](ctx context.Context, in <-chan In,
	f func(ctx context.Context, input In) (Out, bool)) <-chan Out {

	out := makeOut[Out](ctx)

	go func() {
		defer close(out)
		Locomotive(ctx, in, out, f)
	}()

	return out
}

// Transform applies handle to each value from in. Order is preserved.
func Transform[In, Out any](ctx context.Context, in <-chan In,
	handle func(ctx context.Context, input In) Out) <-chan Out {

	return Choose(ctx, in, func(ctx context.Context, input In) (Out, bool) {
		return handle(ctx, input), true
	})
}

// Filter passes through values from in for which handle returns true.
func Filter[T any](ctx context.Context, in <-chan T,
	handle func(ctx context.Context, input T) bool) <-chan T {

	return Choose(ctx, in, func(ctx context.Context, input T) (T, bool) {
		return input, handle(ctx, input)
	})
}
