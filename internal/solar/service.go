package solar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/i474232898/solar-potential-analysis/internal/metrics"
)

// ServiceConfig controls the per-location pipeline and the batch policy.
type ServiceConfig struct {
	Economics   Economics
	Suitability Suitability

	// LocationParallelism caps simultaneous location pipelines. 1 processes the
	// batch strictly in order; the fetcher's own cap still applies either way.
	LocationParallelism int

	// TypicalYear issues the typical-meteorological-year call alongside the
	// angle lookup and uses it for sun hours.
	TypicalYear bool
}

// Service orchestrates the three provider calls per location and assembles batch results.
type Service struct {
	provider Provider
	cfg      ServiceConfig
	logger   *slog.Logger
}

// NewService creates a new Service.
func NewService(provider Provider, cfg ServiceConfig, logger *slog.Logger) *Service {
	if cfg.LocationParallelism <= 0 {
		cfg.LocationParallelism = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
	}
}

// Analyze selects locations from the province table and runs the batch over them.
func (s *Service) Analyze(ctx context.Context, sel Selection) BatchResult {
	return s.RunBatch(ctx, Select(Provinces(), sel))
}

// RunBatch processes every location and never aborts on a single failure: each
// location contributes either one spot or one error record, in input order.
func (s *Service) RunBatch(ctx context.Context, locs []Location) BatchResult {
	type outcome struct {
		spot Spot
		err  error
	}
	outcomes := make([]outcome, len(locs))

	var g errgroup.Group
	g.SetLimit(s.cfg.LocationParallelism)
	for i, loc := range locs {
		g.Go(func() error {
			spot, err := s.ProcessLocation(ctx, loc)
			outcomes[i] = outcome{spot: spot, err: err}
			return nil
		})
	}
	_ = g.Wait()

	result := BatchResult{
		Spots:  make([]Spot, 0, len(locs)),
		Errors: []LocationFailure{},
	}
	for i, o := range outcomes {
		if o.err != nil {
			s.logger.Warn("location failed", "location", locs[i].Key(), "error", o.err)
			metrics.LocationsProcessed.WithLabelValues(metrics.OutcomeError).Inc()
			result.Errors = append(result.Errors, LocationFailure{
				Location: locs[i].Name,
				Message:  failureMessage(o.err),
			})
			continue
		}
		metrics.LocationsProcessed.WithLabelValues(metrics.OutcomeOK).Inc()
		result.Spots = append(result.Spots, o.spot)
	}
	result.Total = len(result.Spots)

	s.logger.Info("batch completed", "locations", len(locs), "spots", result.Total, "errors", len(result.Errors))
	return result
}

// ProcessLocation runs angle lookup and typical-year lookup concurrently, then
// the PV-yield call with the resolved angles. Failures come back as *LocationError.
func (s *Service) ProcessLocation(ctx context.Context, loc Location) (spot Spot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &LocationError{Location: loc, Err: fmt.Errorf("pipeline panic: %v", r)}
		}
	}()

	var (
		angleRaw any
		tmyRaw   any
		tmyErr   error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer recoverInto(&err)
		raw, err := s.provider.OptimalAngles(gctx, loc)
		if err != nil {
			return err
		}
		angleRaw = raw
		return nil
	})
	if s.cfg.TypicalYear {
		g.Go(func() error {
			// The typical year only feeds sun hours; it must not fail the location.
			defer recoverInto(&tmyErr)
			tmyRaw, tmyErr = s.provider.TypicalYear(gctx, loc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Spot{}, &LocationError{Location: loc, Err: err}
	}

	angles := DefaultAngles
	if a := ExtractAngles(angleRaw); a != nil {
		angles = *a
	} else {
		s.logger.Debug("no usable optimal angles, using default", "location", loc.Key(),
			"tilt", angles.Tilt, "azimuth", angles.Azimuth)
	}

	pvRaw, err := s.provider.PVYield(ctx, loc, angles)
	if err != nil {
		return Spot{}, &LocationError{Location: loc, Err: err}
	}
	yield := ExtractYield(pvRaw)

	var sunHours *float64
	if s.cfg.TypicalYear {
		if tmyErr != nil {
			s.logger.Warn("typical year unavailable, approximating sun hours", "location", loc.Key(), "error", tmyErr)
		} else {
			sunHours = ExtractSunHours(tmyRaw)
		}
	}

	return BuildSpot(loc, yield, sunHours, s.cfg.Economics, s.cfg.Suitability), nil
}

func failureMessage(err error) string {
	var le *LocationError
	if errors.As(err, &le) && le.Err != nil {
		return le.Err.Error()
	}
	return err.Error()
}

// recoverInto turns a panic on a helper goroutine into an error in *dst.
// Goroutines started by errgroup are outside the caller's recover.
func recoverInto(dst *error) {
	if r := recover(); r != nil {
		*dst = fmt.Errorf("pipeline panic: %v", r)
	}
}
