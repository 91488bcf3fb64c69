package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/solar-potential-analysis/internal/metrics"
)

const maxBodyBytes = 64 << 20

var (
	ErrCircuitOpen  = errors.New("circuit breaker open")
	ErrNoHTTPClient = errors.New("http client not configured")
)

// FetchError describes a failed provider request: transport failure, non-2xx
// status or an unparsable body.
type FetchError struct {
	Endpoint   string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetcherConfig bundles HTTP client and resilience settings.
type FetcherConfig struct {
	Client        *http.Client
	MaxConcurrent int
	MinSpacing    time.Duration
	Retry         RetryPolicy

	// BreakerThreshold is the number of consecutive failed attempts that opens
	// the circuit; BreakerTimeout is how long it stays open.
	BreakerThreshold uint32
	BreakerTimeout   time.Duration

	UserAgent string
}

// Fetcher performs rate-limited, retried JSON GETs against the provider.
// All call sites share one Fetcher so its limits apply globally.
type Fetcher struct {
	client    *http.Client
	limiter   *Limiter
	retry     RetryPolicy
	circuit   *gobreaker.CircuitBreaker
	userAgent string
	logger    *slog.Logger
}

// NewFetcher creates a Fetcher.
func NewFetcher(cfg FetcherConfig, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := cfg.BreakerThreshold
	if threshold == 0 {
		threshold = 10
	}
	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	// Half-open admits as many trial requests as the limiter lets through.
	probes := cfg.MaxConcurrent
	if probes <= 0 {
		probes = 1
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "pvgis",
		MaxRequests: uint32(probes),
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Fetcher{
		client:    cfg.Client,
		limiter:   NewLimiter(cfg.MaxConcurrent, cfg.MinSpacing),
		retry:     cfg.Retry,
		circuit:   cb,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// FetchJSON issues a GET to url and decodes the JSON body. Failed attempts are
// retried per the retry policy; each attempt passes through the limiter.
func (f *Fetcher) FetchJSON(ctx context.Context, endpoint, url string) (any, error) {
	if f.client == nil {
		return nil, ErrNoHTTPClient
	}

	attempt := WithRateLimit(f.limiter, func(ctx context.Context) (any, error) {
		return f.do(ctx, endpoint, url)
	})
	call := WithRetry(f.retry, attempt, func(err error, next time.Duration) {
		metrics.UpstreamRetries.WithLabelValues(endpoint).Inc()
		f.logger.Debug("provider request failed, retrying", "endpoint", endpoint, "error", err, "backoff", next)
	})
	return call(ctx)
}

// do executes a single attempt through the circuit breaker.
func (f *Fetcher) do(ctx context.Context, endpoint, url string) (any, error) {
	start := time.Now()
	result, err := f.circuit.Execute(func() (interface{}, error) {
		return f.get(ctx, endpoint, url)
	})
	metrics.UpstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		switch {
		case errors.Is(err, gobreaker.ErrOpenState):
			return nil, &FetchError{Endpoint: endpoint, URL: url, Err: fmt.Errorf("%w: %v", ErrCircuitOpen, err)}
		case errors.Is(err, gobreaker.ErrTooManyRequests):
			// Half-open and out of trial slots; retryable once the trial settles.
			return nil, &FetchError{Endpoint: endpoint, URL: url, Err: err}
		}
		return nil, err
	}
	metrics.UpstreamRequests.WithLabelValues(endpoint, metrics.OutcomeOK).Inc()
	return result, nil
}

func (f *Fetcher) get(ctx context.Context, endpoint, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, URL: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{
			Endpoint:   endpoint,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Endpoint: endpoint, URL: url, Err: fmt.Errorf("decode body: %w", err)}
	}
	return payload, nil
}
