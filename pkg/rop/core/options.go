package core

import (
	"context"

	"github.com/zoobzio/capitan"
)

type OptionKey string

const (
	BufferOptionKey  OptionKey = "buffer_options"
	WorkerOptionKey  OptionKey = "worker_options"
	SignalsOptionKey OptionKey = "signals_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type BufferOptions struct {
	Size int
}

// WithBufferOptions sets the capacity of every output channel a stage creates.
func WithBufferOptions(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, BufferOptionKey, BufferOptions{Size: size})
}

// WithWorkerOptions bounds the number of inner streams MergeMap keeps active.
// Zero or less means unbounded.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func GetBufferSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(BufferOptionKey).(BufferOptions)
	if ok && options.Size >= 0 {
		return options.Size
	}
	return defaultSize
}

// WithSignals routes the lifecycle signals of every stage started with ctx to
// signals instead of the default capitan instance.
func WithSignals(ctx context.Context, signals *capitan.Capitan) context.Context {
	return context.WithValue(ctx, SignalsOptionKey, signals)
}

func GetSignals(ctx context.Context) *capitan.Capitan {
	signals, ok := ctx.Value(SignalsOptionKey).(*capitan.Capitan)
	if ok && signals != nil {
		return signals
	}
	return capitan.Default()
}

func makeOut[T any](ctx context.Context) chan T {
	return make(chan T, GetBufferSize(ctx, 0))
}
