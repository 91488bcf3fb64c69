package providers

import (
	"context"

	"github.com/i474232898/solar-potential-analysis/internal/solar"
)

// Endpoint names used for logging and metrics.
const (
	EndpointOptimalAngles = "MRcalc"
	EndpointTypicalYear   = "tmy"
	EndpointPVYield       = "PVcalc"
)

// JSONFetcher retrieves and decodes a JSON document.
type JSONFetcher interface {
	FetchJSON(ctx context.Context, endpoint, url string) (any, error)
}

// PVGISProvider implements the solar.Provider interface for the JRC PVGIS API.
type PVGISProvider struct {
	name    string
	queries QueryBuilder
	fetcher JSONFetcher
}

func NewPVGISProvider(fetcher JSONFetcher, queries QueryBuilder) *PVGISProvider {
	if queries.BaseURL == "" {
		queries.BaseURL = DefaultBaseURL
	}
	return &PVGISProvider{
		name:    "pvgis",
		queries: queries,
		fetcher: fetcher,
	}
}

func (p *PVGISProvider) Name() string {
	return p.name
}

func (p *PVGISProvider) OptimalAngles(ctx context.Context, loc solar.Location) (any, error) {
	return p.fetcher.FetchJSON(ctx, EndpointOptimalAngles, p.queries.OptimalAnglesURL(loc))
}

func (p *PVGISProvider) TypicalYear(ctx context.Context, loc solar.Location) (any, error) {
	return p.fetcher.FetchJSON(ctx, EndpointTypicalYear, p.queries.TypicalYearURL(loc))
}

func (p *PVGISProvider) PVYield(ctx context.Context, loc solar.Location, angles solar.AngleEstimate) (any, error) {
	return p.fetcher.FetchJSON(ctx, EndpointPVYield, p.queries.PVYieldURL(loc, angles))
}
