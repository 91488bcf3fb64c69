package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = RetryPolicy{Retries: 3, MinDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond}

func TestWithRetrySucceedsAfterFailures(t *testing.T) {
	attempts := 0
	call := WithRetry(fastRetry, func(ctx context.Context) (string, error) {
		attempts++
		if attempts <= 2 {
			return "", fmt.Errorf("attempt %d failed", attempts)
		}
		return "ok", nil
	}, nil)

	got, err := call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, attempts)
}

func TestWithRetrySurfacesLastError(t *testing.T) {
	attempts := 0
	var notified []time.Duration
	call := WithRetry(fastRetry, func(ctx context.Context) (string, error) {
		attempts++
		return "", fmt.Errorf("attempt %d failed", attempts)
	}, func(err error, next time.Duration) {
		notified = append(notified, next)
	})

	_, err := call(context.Background())
	require.Error(t, err)
	assert.Equal(t, "attempt 4 failed", err.Error())
	assert.Equal(t, 4, attempts)
	require.Len(t, notified, 3)
	for _, d := range notified {
		assert.GreaterOrEqual(t, d, fastRetry.MinDelay)
		assert.LessOrEqual(t, d, fastRetry.MaxDelay)
	}
}

func TestWithRetryStopsOnCircuitOpen(t *testing.T) {
	attempts := 0
	call := WithRetry(fastRetry, func(ctx context.Context) (int, error) {
		attempts++
		return 0, fmt.Errorf("%w: open", ErrCircuitOpen)
	}, nil)

	_, err := call(context.Background())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 1, attempts)
}

func TestWithRetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	call := WithRetry(RetryPolicy{Retries: 3, MinDelay: time.Second, MaxDelay: time.Second}, func(ctx context.Context) (int, error) {
		attempts++
		cancel()
		return 0, errors.New("boom")
	}, nil)

	_, err := call(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithRetryZeroRetries(t *testing.T) {
	attempts := 0
	call := WithRetry(RetryPolicy{MinDelay: time.Millisecond, MaxDelay: time.Millisecond}, func(ctx context.Context) (int, error) {
		attempts++
		return 0, errors.New("boom")
	}, nil)

	_, err := call(context.Background())
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, attempts)
}

func TestBoundedBackOffStaysInRange(t *testing.T) {
	p := DefaultRetryPolicy()
	p.Retries = 50
	b := p.backOff()
	b.Reset()

	for i := 0; i < 50; i++ {
		d := b.NextBackOff()
		assert.GreaterOrEqual(t, d, p.MinDelay)
		assert.LessOrEqual(t, d, p.MaxDelay)
	}
}
