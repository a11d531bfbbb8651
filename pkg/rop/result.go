package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of type E.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failure carrying a plain error.
func Fail[T any](err error) Result[T, error] {
	return Failure[T, error](err)
}

// SuccessFrom builds a success that keeps the id and creation time of from.
func SuccessFrom[Out, OutE, In, InE any](from Result[In, InE], r Out) Result[Out, OutE] {
	return Result[Out, OutE]{
		result:    r,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FailureFrom builds a failure that keeps the id and creation time of from.
func FailureFrom[Out, OutE, In, InE any](from Result[In, InE], err OutE) Result[Out, OutE] {
	return Result[Out, OutE]{
		err:       err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) Get() (T, E, bool) {
	return r.result, r.err, r.isSuccess
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
