package providers

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Limiter is the single admission-control point for outbound provider calls.
// It caps in-flight requests and spaces successive dispatches.
type Limiter struct {
	slots *semaphore.Weighted
	pace  *rate.Limiter
}

// NewLimiter creates a Limiter. maxConcurrent <= 0 is treated as 1; a zero
// minSpacing disables spacing.
func NewLimiter(maxConcurrent int, minSpacing time.Duration) *Limiter {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	l := &Limiter{slots: semaphore.NewWeighted(int64(maxConcurrent))}
	if minSpacing > 0 {
		l.pace = rate.NewLimiter(rate.Every(minSpacing), 1)
	}
	return l
}

// Acquire blocks until a slot is free and the spacing window has passed.
// The returned release must be called once the request completes.
func (l *Limiter) Acquire(ctx context.Context) (func(), error) {
	if err := l.slots.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	if l.pace != nil {
		if err := l.pace.Wait(ctx); err != nil {
			l.slots.Release(1)
			return nil, err
		}
	}
	return func() { l.slots.Release(1) }, nil
}

// Call is a single context-aware operation producing T.
type Call[T any] func(ctx context.Context) (T, error)

// WithRateLimit wraps call so that each invocation holds a limiter slot.
func WithRateLimit[T any](l *Limiter, call Call[T]) Call[T] {
	return func(ctx context.Context) (T, error) {
		release, err := l.Acquire(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		defer release()
		return call(ctx)
	}
}
