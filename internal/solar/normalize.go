package solar

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// fieldPath addresses a value inside a decoded JSON document, one object key per step.
type fieldPath []string

// Candidate paths for each logical field, tried in order. The provider has
// renamed and re-nested these between response versions.
var (
	tiltPaths = []fieldPath{
		{"optimal", "tilt"},
		{"optimal", "angle"},
		{"optimal", "optimal_tilt"},
		{"inputs", "mounting_system", "fixed", "slope", "value"},
	}
	azimuthPaths = []fieldPath{
		{"optimal", "azimuth"},
		{"optimal", "aspect"},
		{"optimal", "optimal_azimuth"},
		{"inputs", "mounting_system", "fixed", "azimuth", "value"},
	}
	annualYieldPaths = []fieldPath{
		{"outputs", "totals", "fixed", "E_y", "value"},
		{"outputs", "totals", "fixed", "E_y"},
		{"outputs", "totals", "fixed", "yearly", "energy"},
		{"outputs", "totals", "E_y", "value"},
		{"outputs", "totals", "E_y"},
		{"outputs", "totals", "yearly", "energy"},
	}
	performanceRatioPaths = []fieldPath{
		{"outputs", "performance_ratio", "value"},
		{"outputs", "performance_ratio"},
		{"performance_ratio"},
	}
	planeIrradiationPaths = []fieldPath{
		{"outputs", "totals", "fixed", "H(i)_y", "value"},
		{"outputs", "totals", "fixed", "H(i)_y"},
		{"outputs", "totals", "H(i)_y", "value"},
		{"outputs", "totals", "H(i)_y"},
	}
	typicalYearHourlyPath = fieldPath{"outputs", "tmy_hourly"}
)

// ExtractAngles returns the optimal tilt and azimuth from an angle-optimization
// payload, or nil when either one is missing under every known alias.
func ExtractAngles(raw any) *AngleEstimate {
	tilt, ok := firstNumber(raw, tiltPaths)
	if !ok {
		return nil
	}
	azimuth, ok := firstNumber(raw, azimuthPaths)
	if !ok {
		return nil
	}
	return &AngleEstimate{Tilt: tilt, Azimuth: azimuth}
}

// ExtractYield recovers annual production per kWp and the performance ratio
// from a PV-yield payload. When the ratio is absent it is derived from annual
// yield over plane-of-array irradiation.
func ExtractYield(raw any) YieldEstimate {
	var out YieldEstimate

	if v, ok := firstNumber(raw, annualYieldPaths); ok {
		out.AnnualProductionPerKWp = &v
	}

	if v, ok := firstNumber(raw, performanceRatioPaths); ok {
		out.PerformanceRatio = &v
	} else if out.AnnualProductionPerKWp != nil {
		if h, ok := firstNumber(raw, planeIrradiationPaths); ok && h > 0 {
			pr := *out.AnnualProductionPerKWp / h
			out.PerformanceRatio = &pr
		}
	}

	return out
}

// ExtractSunHours derives peak sun hours per day from a typical-year payload by
// summing hourly global horizontal irradiance (W/m2 over one hour = Wh/m2).
// It returns nil unless at least one full day of hourly records is present.
func ExtractSunHours(raw any) *float64 {
	v, ok := lookup(raw, typicalYearHourlyPath)
	if !ok {
		return nil
	}
	hours, ok := v.([]any)
	if !ok || len(hours) < 24 {
		return nil
	}

	var sumWh float64
	for _, h := range hours {
		g, ok := firstNumber(h, []fieldPath{{"G(h)"}})
		if !ok {
			return nil
		}
		sumWh += g
	}

	days := float64(len(hours)) / 24
	sunHours := roundTo(sumWh/1000/days, 2)
	return &sunHours
}

func firstNumber(raw any, paths []fieldPath) (float64, bool) {
	for _, p := range paths {
		v, ok := lookup(raw, p)
		if !ok {
			continue
		}
		if n, ok := toNumber(v); ok {
			return n, true
		}
	}
	return 0, false
}

func lookup(raw any, p fieldPath) (any, bool) {
	cur := raw
	for _, key := range p {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
