package lite

import (
	"context"

	"github.com/ib-77/roprx/pkg/rop"
	"github.com/ib-77/roprx/pkg/rop/core"
	"github.com/ib-77/roprx/pkg/rop/solo"
)

// Inner is what a SwitchMap or MergeMap mapper returns: an inner stream that
// either already carries Results or carries bare values to be wrapped as
// successes. The shape is fixed by the constructor, so no emission is ever
// inspected at runtime. The zero Inner is an empty stream.
//
// The channel handed to a constructor must be closed once the context passed
// to the mapper is done. Values and Widened wrap it in a goroutine of their
// own, and the operator waits for that goroutine before closing its output.
type Inner[T, E any] struct {
	open func(ctx context.Context) <-chan rop.Result[T, E]
}

// Results forwards an inner stream of Results unchanged.
func Results[T, E any](ch <-chan rop.Result[T, E]) Inner[T, E] {
	return Inner[T, E]{open: func(context.Context) <-chan rop.Result[T, E] {
		return ch
	}}
}

// Values wraps every value of an inner stream as a success. E is the failure
// type of the surrounding pipeline: lite.Values[error](ch).
func Values[E, T any](ch <-chan T) Inner[T, E] {
	return Inner[T, E]{open: func(ctx context.Context) <-chan rop.Result[T, E] {
		return core.Transform(ctx, ch, func(_ context.Context, v T) rop.Result[T, E] {
			return rop.Success[T, E](v)
		})
	}}
}

// Widened forwards an inner stream whose failures have their own type,
// converting each of them into the pipeline failure type with widen.
func Widened[E, T, InnerE any](ch <-chan rop.Result[T, InnerE], widen func(err InnerE) E) Inner[T, E] {
	return Inner[T, E]{open: func(ctx context.Context) <-chan rop.Result[T, E] {
		return core.Transform(ctx, ch, func(ctx context.Context, r rop.Result[T, InnerE]) rop.Result[T, E] {
			return solo.MapFailure(ctx, r, func(_ context.Context, err InnerE) E {
				return widen(err)
			})
		})
	}}
}

func (i Inner[T, E]) stream(ctx context.Context) <-chan rop.Result[T, E] {
	if i.open == nil {
		return core.Empty[rop.Result[T, E]]()
	}
	return i.open(ctx)
}
