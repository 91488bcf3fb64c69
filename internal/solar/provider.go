package solar

import "context"

// Provider abstracts the irradiance / PV-simulation data source. Each call
// returns the decoded JSON payload as-is; shape handling lives in the normalizer.
type Provider interface {
	Name() string
	OptimalAngles(ctx context.Context, loc Location) (any, error)
	TypicalYear(ctx context.Context, loc Location) (any, error)
	PVYield(ctx context.Context, loc Location, angles AngleEstimate) (any, error)
}
