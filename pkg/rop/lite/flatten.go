package lite

import (
	"context"

	"github.com/ib-77/roprx/pkg/rop"
	"github.com/ib-77/roprx/pkg/rop/core"
)

// SwitchMap subscribes to the inner stream returned by mapOnSuccess for every
// success and forwards only the newest one: a new success cancels the inner
// of the previous one first. Failures are emitted as they are, mapOnSuccess
// is not called for them, and the active inner keeps running.
func SwitchMap[T, Out, E any](ctx context.Context, input <-chan rop.Result[T, E],
	mapOnSuccess func(ctx context.Context, r T) Inner[Out, E]) <-chan rop.Result[Out, E] {
	return core.SwitchMap(ctx, input, project(mapOnSuccess), passFailure[T, Out, E])
}

// MergeMap subscribes to the inner stream returned by mapOnSuccess for every
// success and forwards all of them concurrently. Failures are emitted as
// they are without calling mapOnSuccess. Use core.WithWorkerOptions on ctx to
// bound the number of live inners.
func MergeMap[T, Out, E any](ctx context.Context, input <-chan rop.Result[T, E],
	mapOnSuccess func(ctx context.Context, r T) Inner[Out, E]) <-chan rop.Result[Out, E] {
	return core.MergeMap(ctx, input, project(mapOnSuccess), passFailure[T, Out, E])
}

func project[T, Out, E any](mapOnSuccess func(ctx context.Context, r T) Inner[Out, E]) func(ctx context.Context,
	input rop.Result[T, E]) <-chan rop.Result[Out, E] {
	return func(ctx context.Context, input rop.Result[T, E]) <-chan rop.Result[Out, E] {
		return mapOnSuccess(ctx, input.Result()).stream(ctx)
	}
}

func passFailure[T, Out, E any](input rop.Result[T, E]) (rop.Result[Out, E], bool) {
	if input.IsFailure() {
		return rop.FailureFrom[Out, E](input, input.Err()), true
	}
	return rop.Result[Out, E]{}, false
}
