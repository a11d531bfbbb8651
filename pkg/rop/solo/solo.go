package solo

import (
	"context"
	"errors"

	"github.com/ib-77/roprx/pkg/rop"
)

func Validate[T any](ctx context.Context, input rop.Result[T, error],
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T, error] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Result()); !isValid {
			return rop.FailureFrom[T, error](input, errors.New(errMsg))
		}
	}
	return input
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailureFrom[Out, E](input, input.Err())
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.SuccessFrom[Out, E](input, onSuccess(ctx, input.Result()))
	}
	return rop.FailureFrom[Out, E](input, input.Err())
}

func MapFailure[T, In, Out any](ctx context.Context,
	input rop.Result[T, In],
	onFailure func(ctx context.Context, err In) Out) rop.Result[T, Out] {

	if input.IsFailure() {
		return rop.FailureFrom[T, Out](input, onFailure(ctx, input.Err()))
	}
	return rop.SuccessFrom[T, Out](input, input.Result())
}

func MapTo[In, Out, E any](input rop.Result[In, E], value Out) rop.Result[Out, E] {
	if input.IsSuccess() {
		return rop.SuccessFrom[Out, E](input, value)
	}
	return rop.FailureFrom[Out, E](input, input.Err())
}

func MapFailureTo[T, In, Out any](input rop.Result[T, In], value Out) rop.Result[T, Out] {
	if input.IsFailure() {
		return rop.FailureFrom[T, Out](input, value)
	}
	return rop.SuccessFrom[T, Out](input, input.Result())
}

// UnwrapOrMap returns the success value, or onFailure applied to the failure value.
func UnwrapOrMap[T, E any](ctx context.Context, input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) T) T {

	if input.IsSuccess() {
		return input.Result()
	}
	return onFailure(ctx, input.Err())
}

func UnwrapOrMapTo[T, E any](input rop.Result[T, E], value T) T {
	if input.IsSuccess() {
		return input.Result()
	}
	return value
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

func Try[In, Out any](ctx context.Context, input rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, error] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		if !rop.IsNil(err) {
			return rop.FailureFrom[Out, error](input, err)
		}
		return rop.SuccessFrom[Out, error](input, out)
	}
	return rop.FailureFrom[Out, error](input, input.Err())
}

func Finally[In, E, Out any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}
