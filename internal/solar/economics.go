package solar

import "math"

// Economics holds the fixed constants used to price a 1 kWp rooftop system.
type Economics struct {
	CostPerKWp                 float64 `yaml:"cost_per_kwp"`
	ElectricityPricePerKWh     float64 `yaml:"electricity_price_per_kwh"`
	GridEmissionFactorKgPerKWh float64 `yaml:"grid_emission_factor_kg_per_kwh"`
}

// DefaultEconomics returns TRY prices and the Turkish grid emission factor.
func DefaultEconomics() Economics {
	return Economics{
		CostPerKWp:                 15000,
		ElectricityPricePerKWh:     1.4,
		GridEmissionFactorKgPerKWh: 0.43,
	}
}

// Derive computes the economic profile for a system producing annualKWh per year.
// PaybackYears is nil when the system saves nothing.
func (e Economics) Derive(annualKWh float64) EconomicProfile {
	p := EconomicProfile{
		InstallCost:      e.CostPerKWp,
		AnnualSavings:    annualKWh * e.ElectricityPricePerKWh,
		CO2ReductionTons: annualKWh * e.GridEmissionFactorKgPerKWh / 1000,
	}
	if p.AnnualSavings > 0 {
		payback := p.InstallCost / p.AnnualSavings
		p.PaybackYears = &payback
	}
	return p
}

// Suitability holds the nominal minimums and the margins that make the applied
// bar stricter than the nominal one: sun hours + SunHoursMargin, efficiency +
// EfficiencyMargin, annual production * AnnualProductionFactor.
type Suitability struct {
	MinSunHours            float64 `yaml:"min_sun_hours"`
	MinEfficiency          float64 `yaml:"min_efficiency"`
	MinAnnualProduction    float64 `yaml:"min_annual_production"`
	SunHoursMargin         float64 `yaml:"sun_hours_margin"`
	EfficiencyMargin       float64 `yaml:"efficiency_margin"`
	AnnualProductionFactor float64 `yaml:"annual_production_factor"`
}

// DefaultSuitability returns 3 h/day, 15 % and 1000 kWh/kWp, tightened by 1 h, 5 points and 10 %.
func DefaultSuitability() Suitability {
	return Suitability{
		MinSunHours:            3,
		MinEfficiency:          15,
		MinAnnualProduction:    1000,
		SunHoursMargin:         1,
		EfficiencyMargin:       5,
		AnnualProductionFactor: 1.1,
	}
}

// Thresholds returns the bars actually applied. They are rounded to 6 decimals
// so 1000 * 1.1 compares as 1100 rather than 1100.0000000000002.
func (s Suitability) Thresholds() (sunHours, efficiency, annualProduction float64) {
	return roundTo(s.MinSunHours+s.SunHoursMargin, 6),
		roundTo(s.MinEfficiency+s.EfficiencyMargin, 6),
		roundTo(s.MinAnnualProduction*s.AnnualProductionFactor, 6)
}

// IsSuitable reports whether every metric clears its threshold. A nil metric fails.
func (s Suitability) IsSuitable(sunHours, efficiency, annualProduction *float64) bool {
	minSun, minEff, minAnnual := s.Thresholds()
	return sunHours != nil && *sunHours >= minSun &&
		efficiency != nil && *efficiency >= minEff &&
		annualProduction != nil && *annualProduction >= minAnnual
}

// BuildSpot assembles the output record for loc. providerSunHours, when non-nil,
// takes precedence over the annualProduction/365 approximation.
func BuildSpot(loc Location, y YieldEstimate, providerSunHours *float64, econ Economics, suit Suitability) Spot {
	spot := Spot{
		ID:          loc.ID,
		City:        loc.Name,
		Coordinates: Coordinates{Lat: loc.Lat, Lng: loc.Lon},
		AreaType:    "roof",
	}

	annual := y.AnnualProductionPerKWp

	if y.PerformanceRatio != nil {
		pr := *y.PerformanceRatio
		if pr <= 1 {
			pr *= 100
		}
		spot.Efficiency = ptr(math.Round(pr))
	}

	switch {
	case providerSunHours != nil:
		spot.SunHoursPerDay = ptr(*providerSunHours)
	case annual != nil:
		spot.SunHoursPerDay = ptr(roundTo(*annual/365, 2))
	}

	if annual != nil {
		p := econ.Derive(*annual)
		spot.AnnualProduction = ptr(math.Round(*annual))
		spot.Cost = ptr(p.InstallCost)
		spot.CO2Reduction = ptr(roundTo(p.CO2ReductionTons, 2))
		if p.PaybackYears != nil {
			spot.PaybackPeriod = ptr(roundTo(*p.PaybackYears, 1))
		}
	}

	spot.Suitable = suit.IsSuitable(spot.SunHoursPerDay, spot.Efficiency, annual)
	return spot
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func ptr(v float64) *float64 {
	return &v
}
