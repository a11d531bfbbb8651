package lite

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/roprx/pkg/rop"
	"github.com/ib-77/roprx/pkg/rop/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func next[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "stream closed unexpectedly")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for an emission")
	}
	var zero T
	return zero
}

func closed[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.False(t, ok, "unexpected emission %v", v)
	case <-time.After(time.Second):
		t.Fatal("stream not closed")
	}
}

func unread[T any](t *testing.T, ch chan<- T, v T) {
	t.Helper()
	select {
	case ch <- v:
		t.Fatal("value read by a stream that should be gone")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSwitchMap_OnlyLatestInnerSurvives(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	source := make(chan rop.Result[string, error])
	inners := map[string]chan int{"a": make(chan int), "b": make(chan int)}
	out := SwitchMap(ctx, source, func(_ context.Context, k string) Inner[int, error] {
		return Values[error](inners[k])
	})

	source <- rop.Success[string, error]("a")
	inners["a"] <- 1
	first := next(t, out)
	require.True(t, first.IsSuccess())
	assert.Equal(t, 1, first.Result())

	source <- rop.Success[string, error]("b")
	inners["b"] <- 10
	assert.Equal(t, 10, next(t, out).Result())

	// the wrapper around a has exited, nobody reads from it any more
	unread(t, inners["a"], 2)

	inners["b"] <- 11
	assert.Equal(t, 11, next(t, out).Result())

	close(inners["b"])
	close(source)
	closed(t, out)
}

func TestSwitchMap_FailureShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	var calls atomic.Int32
	source := make(chan rop.Result[int, error])
	inner := make(chan rop.Result[string, error])
	out := SwitchMap(ctx, source, func(_ context.Context, v int) Inner[string, error] {
		calls.Add(1)
		return Results(inner)
	})

	source <- rop.Success[int, error](1)
	inner <- rop.Success[string, error]("one")
	assert.Equal(t, "one", next(t, out).Result())

	boom := errors.New("boom")
	failure := rop.Fail[int](boom)
	source <- failure
	got := next(t, out)
	require.True(t, got.IsFailure())
	assert.ErrorIs(t, got.Err(), boom)
	assert.Equal(t, failure.Id(), got.Id())

	// the inner subscribed for 1 is still live
	inner <- rop.Fail[string](errors.New("inner"))
	assert.EqualError(t, next(t, out).Err(), "inner")
	assert.Equal(t, int32(1), calls.Load())

	close(source)
	close(inner)
	closed(t, out)
}

func TestSwitchMap_SequentialInnersAllComplete(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	// each inner completes before the next outer element arrives
	source := make(chan rop.Result[int, error])
	out := SwitchMap(ctx, source, func(ctx context.Context, v int) Inner[int, error] {
		return Values[error](core.FromValues(ctx, v, v+1))
	})

	source <- rop.Success[int, error](10)
	assert.Equal(t, 10, next(t, out).Result())
	assert.Equal(t, 11, next(t, out).Result())

	source <- rop.Success[int, error](20)
	assert.Equal(t, 20, next(t, out).Result())
	assert.Equal(t, 21, next(t, out).Result())

	close(source)
	closed(t, out)
}

func TestSwitchMap_CancelStopsInner(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var innerStopped atomic.Bool
	source := make(chan rop.Result[int, error])
	out := SwitchMap(ctx, source, func(ctx context.Context, v int) Inner[int, error] {
		ch := make(chan int)
		go func() {
			defer close(ch)
			<-ctx.Done()
			innerStopped.Store(true)
		}()
		return Values[error](ch)
	})

	source <- rop.Success[int, error](1)
	cancel()

	closed(t, out)
	assert.Eventually(t, innerStopped.Load, time.Second, time.Millisecond)
}

func TestSwitchMap_CancelReleasesWrappers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	source := make(chan rop.Result[string, error])
	values := make(chan int)
	results := make(chan rop.Result[int, string])
	out := SwitchMap(ctx, source, func(_ context.Context, k string) Inner[int, error] {
		if k == "values" {
			return Values[error](values)
		}
		return Widened(results, func(e string) error { return errors.New(e) })
	})

	source <- rop.Success[string, error]("values")
	values <- 1
	assert.Equal(t, 1, next(t, out).Result())

	source <- rop.Success[string, error]("widened")
	results <- rop.Success[int, string](2)
	assert.Equal(t, 2, next(t, out).Result())

	cancel()
	closed(t, out)

	unread(t, values, 3)
	unread(t, results, rop.Success[int, string](4))
}

func TestMergeMap_CancelReleasesWrappers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	raw := map[string]chan int{"a": make(chan int), "b": make(chan int)}
	out := MergeMap(ctx, core.Successes[string, error](ctx, "a", "b"),
		func(_ context.Context, k string) Inner[int, error] {
			return Values[error](raw[k])
		})

	raw["a"] <- 1
	raw["b"] <- 2
	assert.ElementsMatch(t, []int{1, 2}, []int{next(t, out).Result(), next(t, out).Result()})

	cancel()
	closed(t, out)

	unread(t, raw["a"], 3)
	unread(t, raw["b"], 4)
}

func TestMergeMap_UnionOfInners(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	in := core.Successes[string, error](ctx, "a", "b")
	out := MergeMap(ctx, in, func(ctx context.Context, k string) Inner[string, error] {
		return Values[error](core.FromValues(ctx, k+"1", k+"2"))
	})

	res := core.Collect(ctx, out)
	for _, r := range res {
		assert.True(t, r.IsSuccess())
	}
	assert.ElementsMatch(t, []string{"a1", "a2", "b1", "b2"}, core.Collect(ctx,
		FilterSuccess(ctx, core.FromResults(ctx, res...))))
}

func TestMergeMap_ConcurrentInners(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	source := make(chan rop.Result[string, error])
	inners := map[string]chan int{"a": make(chan int), "b": make(chan int)}
	out := MergeMap(ctx, source, func(_ context.Context, k string) Inner[int, error] {
		return Values[error](inners[k])
	})

	source <- rop.Success[string, error]("a")
	source <- rop.Success[string, error]("b")
	close(source)

	inners["a"] <- 1
	inners["b"] <- 2
	inners["a"] <- 3
	got := []int{next(t, out).Result(), next(t, out).Result(), next(t, out).Result()}
	assert.ElementsMatch(t, []int{1, 2, 3}, got)

	close(inners["a"])
	inners["b"] <- 4
	assert.Equal(t, 4, next(t, out).Result())
	close(inners["b"])
	closed(t, out)
}

func TestMergeMap_FailureShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	var calls atomic.Int32
	boom := errors.New("boom")
	in := core.FromResults(ctx,
		rop.Success[int, error](1),
		rop.Fail[int](boom),
		rop.Success[int, error](2),
	)
	out := core.Collect(ctx, MergeMap(ctx, in, func(ctx context.Context, v int) Inner[string, error] {
		calls.Add(1)
		return Results(core.Successes[string, error](ctx, fmt.Sprint(v)))
	}))

	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, out, 3)
	var failures []error
	var values []string
	for _, r := range out {
		if r.IsFailure() {
			failures = append(failures, r.Err())
		} else {
			values = append(values, r.Result())
		}
	}
	assert.Equal(t, []error{boom}, failures)
	assert.ElementsMatch(t, []string{"1", "2"}, values)
}

func TestMergeMap_WorkerLimitKeepsOrder(t *testing.T) {
	t.Parallel()
	ctx := core.WithWorkerOptions(testCtx(t), 1)

	in := core.Successes[int, error](ctx, 1, 2, 3)
	out := MergeMap(ctx, in, func(ctx context.Context, v int) Inner[int, error] {
		return Values[error](core.FromValues(ctx, v*10, v*10+1))
	})

	assert.Equal(t, []int{10, 11, 20, 21, 30, 31}, core.Collect(ctx, FilterSuccess(ctx, out)))
}

type notFound struct{ key string }

func TestWidened(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	lookup := func(ctx context.Context, k string) Inner[int, error] {
		if k == "missing" {
			return Widened(core.FromResults(ctx, rop.Failure[int, notFound](notFound{key: k})),
				func(e notFound) error { return fmt.Errorf("not found: %s", e.key) })
		}
		return Widened(core.FromResults(ctx, rop.Success[int, notFound](len(k))),
			func(e notFound) error { return fmt.Errorf("not found: %s", e.key) })
	}

	source := make(chan rop.Result[string, error])
	out := SwitchMap(ctx, source, lookup)

	source <- rop.Success[string, error]("abc")
	assert.Equal(t, 3, next(t, out).Result())

	upstream := errors.New("upstream")
	source <- rop.Fail[string](upstream)
	assert.ErrorIs(t, next(t, out).Err(), upstream)

	source <- rop.Success[string, error]("missing")
	missing := next(t, out)
	require.True(t, missing.IsFailure())
	assert.EqualError(t, missing.Err(), "not found: missing")

	close(source)
	closed(t, out)
}

func TestZeroInnerIsEmpty(t *testing.T) {
	t.Parallel()
	ctx := testCtx(t)

	out := MergeMap(ctx, core.Successes[int, error](ctx, 1, 2),
		func(context.Context, int) Inner[int, error] { return Inner[int, error]{} })
	closed(t, out)
}
