package core

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
)

// Delay emits values one by one, each d after the previous, measured on clock.
// Pass clockz.RealClock in production and a fake clock in tests.
func Delay[T any](ctx context.Context, clock clockz.Clock, d time.Duration, values ...T) <-chan T {
	out := makeOut[T](ctx)

	go func() {
		defer close(out)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			timer := clock.NewTimer(d)

			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C():
			}

			select {
			case <-ctx.Done():
				return
			case out <- v:
			}
		}
	}()

	return out
}
