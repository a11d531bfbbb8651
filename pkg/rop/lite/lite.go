package lite

import (
	"context"

	"github.com/ib-77/roprx/pkg/rop"
	"github.com/ib-77/roprx/pkg/rop/core"
	"github.com/ib-77/roprx/pkg/rop/solo"
)

func Map[T, Out, E any](ctx context.Context, input <-chan rop.Result[T, E],
	mapOnSuccess func(ctx context.Context, r T) Out) <-chan rop.Result[Out, E] {
	return core.Transform(ctx, input, func(ctx context.Context, r rop.Result[T, E]) rop.Result[Out, E] {
		return solo.Map(ctx, r, mapOnSuccess)
	})
}

func MapFailure[T, E, Out any](ctx context.Context, input <-chan rop.Result[T, E],
	mapOnFailure func(ctx context.Context, err E) Out) <-chan rop.Result[T, Out] {
	return core.Transform(ctx, input, func(ctx context.Context, r rop.Result[T, E]) rop.Result[T, Out] {
		return solo.MapFailure(ctx, r, mapOnFailure)
	})
}

func MapTo[T, Out, E any](ctx context.Context, input <-chan rop.Result[T, E],
	value Out) <-chan rop.Result[Out, E] {
	return core.Transform(ctx, input, func(_ context.Context, r rop.Result[T, E]) rop.Result[Out, E] {
		return solo.MapTo(r, value)
	})
}

func MapFailureTo[T, E, Out any](ctx context.Context, input <-chan rop.Result[T, E],
	value Out) <-chan rop.Result[T, Out] {
	return core.Transform(ctx, input, func(_ context.Context, r rop.Result[T, E]) rop.Result[T, Out] {
		return solo.MapFailureTo(r, value)
	})
}

// UnwrapOrMap emits success values as they are and failures converted by
// mapOnFailure.
func UnwrapOrMap[T, E any](ctx context.Context, input <-chan rop.Result[T, E],
	mapOnFailure func(ctx context.Context, err E) T) <-chan T {
	return core.Transform(ctx, input, func(ctx context.Context, r rop.Result[T, E]) T {
		return solo.UnwrapOrMap(ctx, r, mapOnFailure)
	})
}

func UnwrapOrMapTo[T, E any](ctx context.Context, input <-chan rop.Result[T, E], value T) <-chan T {
	return core.Transform(ctx, input, func(_ context.Context, r rop.Result[T, E]) T {
		return solo.UnwrapOrMapTo(r, value)
	})
}

// FilterSuccess emits the value of every success and drops failures.
func FilterSuccess[T, E any](ctx context.Context, input <-chan rop.Result[T, E]) <-chan T {
	return core.Choose(ctx, input, func(_ context.Context, r rop.Result[T, E]) (T, bool) {
		return r.Result(), r.IsSuccess()
	})
}

// FilterFailure emits the failure value of every failure and drops successes.
func FilterFailure[T, E any](ctx context.Context, input <-chan rop.Result[T, E]) <-chan E {
	return core.Choose(ctx, input, func(_ context.Context, r rop.Result[T, E]) (E, bool) {
		return r.Err(), r.IsFailure()
	})
}

func Switch[In, Out, E any](ctx context.Context, input <-chan rop.Result[In, E],
	switchOnSuccess func(ctx context.Context, r In) rop.Result[Out, E]) <-chan rop.Result[Out, E] {
	return core.Transform(ctx, input, func(ctx context.Context, r rop.Result[In, E]) rop.Result[Out, E] {
		return solo.Switch(ctx, r, switchOnSuccess)
	})
}

func Try[In, Out any](ctx context.Context, input <-chan rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) <-chan rop.Result[Out, error] {
	return core.Transform(ctx, input, func(ctx context.Context, r rop.Result[In, error]) rop.Result[Out, error] {
		return solo.Try(ctx, r, onTryExecute)
	})
}

func Tee[T, E any](ctx context.Context, input <-chan rop.Result[T, E],
	sideEffect func(ctx context.Context, r T)) <-chan rop.Result[T, E] {
	return core.Transform(ctx, input, func(ctx context.Context, r rop.Result[T, E]) rop.Result[T, E] {
		return solo.Tee(ctx, r, sideEffect)
	})
}

type FinallyHandlers[In, E, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, err E) Out
}

func Finally[In, E, Out any](ctx context.Context, input <-chan rop.Result[In, E],
	handlers FinallyHandlers[In, E, Out]) <-chan Out {
	return core.Transform(ctx, input, func(ctx context.Context, r rop.Result[In, E]) Out {
		return solo.Finally(ctx, r, handlers.OnSuccess, handlers.OnFailure)
	})
}
