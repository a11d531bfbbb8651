package core

import (
	"context"
	"sync"
	"sync/atomic"
)

// SwitchMap projects every element of in to an inner stream and forwards only
// the latest one. Before a new inner is subscribed the previous inner context
// is cancelled and its forwarder has returned, so nothing the previous inner
// produces can follow anything the new one produces.
//
// When bypass is non-nil and reports true for an element, its value is
// emitted directly and the active inner keeps running.
//
// Every subscribed inner ends with exactly one signal: InnerCompleted when its
// stream closed on its own, InnerCancelled when it was cut off by a newer
// element or by ctx.
//
// Inner channels must close once their context is done. The output closes
// after in has closed and the last inner has completed, or once ctx is done
// and every inner channel has closed.
func SwitchMap[In, Out any](ctx context.Context, in <-chan In,
	project func(ctx context.Context, input In) <-chan Out,
	bypass func(input In) (Out, bool)) <-chan Out {

	out := makeOut[Out](ctx)
	signals, sigCtx := GetSignals(ctx), context.WithoutCancel(ctx)

	type inner struct {
		cancel    context.CancelFunc
		done      chan struct{}
		completed bool
	}

	go func() {
		defer close(out)

		var active *inner

		stop := func() {
			if active == nil {
				return
			}
			active.cancel()
			<-active.done
			if !active.completed {
				signals.Emit(sigCtx, InnerCancelled,
					KeyOperator.Field(switchOperator),
					KeyActive.Field(0),
				)
			}
			active = nil
		}
		defer stop()

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					if active != nil {
						<-active.done
					}
					return
				}

				if bypass != nil {
					if pr, pass := bypass(v); pass {
						signals.Emit(sigCtx, ElementBypassed, KeyOperator.Field(switchOperator))
						select {
						case <-ctx.Done():
							return
						case out <- pr:
						}
						continue
					}
				}

				stop()

				innerCtx, cancel := context.WithCancel(ctx)
				next := &inner{cancel: cancel, done: make(chan struct{})}
				src := project(innerCtx, v)

				go func() {
					defer close(next.done)
					next.completed = forward(innerCtx, src, out)
					if next.completed {
						signals.Emit(sigCtx, InnerCompleted,
							KeyOperator.Field(switchOperator),
							KeyActive.Field(0),
						)
					}
				}()

				active = next
				signals.Emit(sigCtx, InnerSubscribed,
					KeyOperator.Field(switchOperator),
					KeyActive.Field(1),
				)
			}
		}
	}()

	return out
}

// MergeMap projects every element of in to an inner stream and forwards all of
// them concurrently. Emissions of different inners interleave in no particular
// order. The number of simultaneously active inners is unbounded unless ctx
// carries WithWorkerOptions.
//
// When bypass is non-nil and reports true for an element, its value is
// emitted directly without projection.
//
// The output closes after in has closed and every inner has completed, or once
// ctx is done and every inner channel has closed.
func MergeMap[In, Out any](ctx context.Context, in <-chan In,
	project func(ctx context.Context, input In) <-chan Out,
	bypass func(input In) (Out, bool)) <-chan Out {

	out := makeOut[Out](ctx)
	limit := GetWorkerMaxCount(ctx, 0)
	signals, sigCtx := GetSignals(ctx), context.WithoutCancel(ctx)

	go func() {
		var (
			wg     sync.WaitGroup
			active atomic.Int64
			slots  chan struct{}
		)
		if limit > 0 {
			slots = make(chan struct{}, limit)
		}

		defer func() {
			wg.Wait()
			close(out)
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}

				if bypass != nil {
					if pr, pass := bypass(v); pass {
						signals.Emit(sigCtx, ElementBypassed, KeyOperator.Field(mergeOperator))
						select {
						case <-ctx.Done():
							return
						case out <- pr:
						}
						continue
					}
				}

				if slots != nil {
					select {
					case <-ctx.Done():
						return
					case slots <- struct{}{}:
					}
				}

				src := project(ctx, v)
				wg.Add(1)
				signals.Emit(sigCtx, InnerSubscribed,
					KeyOperator.Field(mergeOperator),
					KeyActive.Field(int(active.Add(1))),
				)

				go func() {
					defer wg.Done()
					completed := forward(ctx, src, out)
					n := active.Add(-1)
					if slots != nil {
						<-slots
					}
					if completed {
						signals.Emit(sigCtx, InnerCompleted,
							KeyOperator.Field(mergeOperator),
							KeyActive.Field(int(n)),
						)
					}
				}()
			}
		}
	}()

	return out
}

// forward copies src to out until src closes (true) or ctx is done (false).
// A src that closes because ctx is done counts as cancelled.
// A nil src counts as an empty stream. Producers must close src once ctx is
// done: after cancellation forward discards whatever is left in src and only
// returns when it closes, so no producer outlives its forwarder.
func forward[T any](ctx context.Context, src <-chan T, out chan<- T) bool {
	if src == nil {
		return true
	}

	for {
		select {
		case <-ctx.Done():
			drain(src)
			return false
		case v, ok := <-src:
			if !ok {
				return ctx.Err() == nil
			}
			if ctx.Err() != nil {
				drain(src)
				return false
			}

			select {
			case <-ctx.Done():
				drain(src)
				return false
			case out <- v:
			}
		}
	}
}

func drain[T any](src <-chan T) {
	for range src {
	}
}
