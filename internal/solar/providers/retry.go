package providers

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy controls randomized exponential backoff between attempts.
type RetryPolicy struct {
	// Retries is the number of additional attempts after the first one.
	Retries  int
	MinDelay time.Duration
	MaxDelay time.Duration
}

// DefaultRetryPolicy allows 3 retries with delays between 500ms and 2.5s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Retries:  3,
		MinDelay: 500 * time.Millisecond,
		MaxDelay: 2500 * time.Millisecond,
	}
}

func (p RetryPolicy) backOff() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.MinDelay
	exp.MaxInterval = p.MaxDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0.5
	exp.MaxElapsedTime = 0
	exp.Reset()

	retries := p.Retries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithMaxRetries(&boundedBackOff{inner: exp, min: p.MinDelay, max: p.MaxDelay}, uint64(retries))
}

// boundedBackOff keeps jittered delays inside [min, max].
type boundedBackOff struct {
	inner    backoff.BackOff
	min, max time.Duration
}

func (b *boundedBackOff) NextBackOff() time.Duration {
	d := b.inner.NextBackOff()
	if d == backoff.Stop {
		return d
	}
	if d < b.min {
		d = b.min
	}
	if b.max > 0 && d > b.max {
		d = b.max
	}
	return d
}

func (b *boundedBackOff) Reset() {
	b.inner.Reset()
}

// permanentError reports whether retrying err cannot help.
func permanentError(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, ErrCircuitOpen) || errors.Is(err, ErrNoHTTPClient)
}

// WithRetry wraps call with the policy. The last error is returned once the
// retries are exhausted. notify, if set, runs before every backoff sleep.
func WithRetry[T any](p RetryPolicy, call Call[T], notify func(err error, next time.Duration)) Call[T] {
	return func(ctx context.Context) (T, error) {
		var result T
		op := func() error {
			v, err := call(ctx)
			if err != nil {
				if permanentError(ctx, err) {
					return backoff.Permanent(err)
				}
				return err
			}
			result = v
			return nil
		}

		err := backoff.RetryNotify(op, backoff.WithContext(p.backOff(), ctx), notify)
		if err != nil {
			var zero T
			return zero, err
		}
		return result, nil
	}
}
