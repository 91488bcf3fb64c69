package solar

import "fmt"

// Location is a fixed point from the province reference table.
type Location struct {
	ID   string  `json:"id"`
	Name string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lng"`
}

// Key returns a readable identifier used in logs.
func (l Location) Key() string {
	return l.ID + ":" + l.Name
}

// AngleEstimate is the optimal panel mounting for a location.
type AngleEstimate struct {
	Tilt    float64 `json:"tiltAngle"`
	Azimuth float64 `json:"azimuth"`
}

// DefaultAngles is substituted when the provider gives no usable estimate.
var DefaultAngles = AngleEstimate{Tilt: 30, Azimuth: 0}

// YieldEstimate holds the figures recovered from a PV-yield payload.
// A nil field means the value could not be found under any known alias.
type YieldEstimate struct {
	AnnualProductionPerKWp *float64 `json:"annualProductionPerKWp"`
	PerformanceRatio       *float64 `json:"performanceRatio"`
}

// EconomicProfile is derived from the annual production of a 1 kWp system.
type EconomicProfile struct {
	InstallCost      float64  `json:"installCost"`
	AnnualSavings    float64  `json:"annualSavings"`
	PaybackYears     *float64 `json:"paybackYears"`
	CO2ReductionTons float64  `json:"co2ReductionTons"`
}

// Coordinates is the map position of a spot.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Spot is the final per-location record. Nullable metrics stay nil when the
// provider data needed to compute them was unavailable.
type Spot struct {
	ID               string      `json:"id"`
	City             string      `json:"city"`
	Coordinates      Coordinates `json:"coordinates"`
	AreaType         string      `json:"areaType"`
	SunHoursPerDay   *float64    `json:"sunHoursPerDay"`
	Efficiency       *float64    `json:"efficiency"`
	AnnualProduction *float64    `json:"annualProduction"`
	Cost             *float64    `json:"cost"`
	PaybackPeriod    *float64    `json:"paybackPeriod"`
	CO2Reduction     *float64    `json:"co2Reduction"`
	Suitable         bool        `json:"suitable"`
}

// LocationFailure is the error record kept for a location that could not be processed.
type LocationFailure struct {
	Location string `json:"city"`
	Message  string `json:"error"`
}

// BatchResult accumulates the outcome of one batch. Every processed location
// lands in exactly one of Spots or Errors.
type BatchResult struct {
	Spots  []Spot            `json:"data"`
	Errors []LocationFailure `json:"errors"`
	Total  int               `json:"total"`
}

// LocationError wraps the first unrecoverable error of a location pipeline.
type LocationError struct {
	Location Location
	Err      error
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("process %s: %v", e.Location.Name, e.Err)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}
