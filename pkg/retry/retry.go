package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/christophwitzko/waitfor/pkg/logger"
)

// NotifyFunc is called after every failed attempt, before sleeping.
type NotifyFunc func(attempt int, err error)

// Forever calls fn until it succeeds or ctx is done, sleeping interval after
// each failure. It returns the number of attempts made. The sleep is cut
// short by ctx.
func Forever(ctx context.Context, interval time.Duration, fn func(ctx context.Context) error, notify NotifyFunc) (int, error) {
	b := backoff.NewConstantBackOff(interval)
	b.Reset()
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return attempt, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return attempt, ctxErr
		}
		if notify != nil {
			notify(attempt, err)
		}
		timer := time.NewTimer(b.NextBackOff())
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempt, ctx.Err()
		case <-timer.C:
		}
	}
}

func OnError(ctx context.Context, log *logger.Logger, prefix string, fn func() error) error {
	var lastErr error
	for i := 1; i <= 3; i++ {
		if i > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(500 * time.Millisecond):
			}
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		log.Warnf("%s error at attempt %d: %v", prefix, i, err)
	}
	return lastErr
}
