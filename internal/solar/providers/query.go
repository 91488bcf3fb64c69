package providers

import (
	"net/url"
	"strconv"

	"github.com/i474232898/solar-potential-analysis/internal/solar"
)

// DefaultBaseURL is the PVGIS 5.2 API root.
const DefaultBaseURL = "https://re.jrc.ec.europa.eu/api/v5_2"

// TypicalYearParams is the historical window of the typical meteorological year.
type TypicalYearParams struct {
	StartYear int `yaml:"start_year"`
	EndYear   int `yaml:"end_year"`
}

// PVCalcParams are the fixed system parameters of the PV-yield simulation.
type PVCalcParams struct {
	RadDatabase   string  `yaml:"raddatabase"`
	PeakPower     float64 `yaml:"peakpower"`
	Loss          float64 `yaml:"loss"`
	MountingPlace string  `yaml:"mountingplace"`
	PVTechChoice  string  `yaml:"pvtechchoice"`
}

// QueryBuilder constructs the three PVGIS request URLs. It holds no state
// beyond constants, so identical inputs always give identical URLs.
type QueryBuilder struct {
	BaseURL string            `yaml:"base_url"`
	TMY     TypicalYearParams `yaml:"tmy"`
	PVCalc  PVCalcParams      `yaml:"pvcalc"`
}

// DefaultQueryBuilder returns the constants used against PVGIS-SARAH2.
func DefaultQueryBuilder() QueryBuilder {
	return QueryBuilder{
		BaseURL: DefaultBaseURL,
		TMY: TypicalYearParams{
			StartYear: 2005,
			EndYear:   2020,
		},
		PVCalc: PVCalcParams{
			RadDatabase:   "PVGIS-SARAH2",
			PeakPower:     1,
			Loss:          10,
			MountingPlace: "free",
			PVTechChoice:  "crystSi",
		},
	}
}

// OptimalAnglesURL builds the monthly-radiation query asking for optimal angles.
func (q QueryBuilder) OptimalAnglesURL(loc solar.Location) string {
	values := coordinates(loc)
	values.Set("month_min", "1")
	values.Set("month_max", "12")
	values.Set("optimalangles", "1")
	values.Set("horirrad", "1")
	values.Set("globalirrad", "1")
	values.Set("diffuseirrad", "1")
	values.Set("usehorizon", "1")
	return q.build("MRcalc", values)
}

// TypicalYearURL builds the typical-meteorological-year query.
func (q QueryBuilder) TypicalYearURL(loc solar.Location) string {
	values := coordinates(loc)
	values.Set("startyear", strconv.Itoa(q.TMY.StartYear))
	values.Set("endyear", strconv.Itoa(q.TMY.EndYear))
	values.Set("usehorizon", "1")
	return q.build("tmy", values)
}

// PVYieldURL builds the grid-connected PV simulation query for the given mounting.
func (q QueryBuilder) PVYieldURL(loc solar.Location, a solar.AngleEstimate) string {
	values := coordinates(loc)
	values.Set("peakpower", formatFloat(q.PVCalc.PeakPower))
	values.Set("loss", formatFloat(q.PVCalc.Loss))
	values.Set("mountingplace", q.PVCalc.MountingPlace)
	values.Set("pvtechchoice", q.PVCalc.PVTechChoice)
	values.Set("angle", formatFloat(a.Tilt))
	values.Set("aspect", formatFloat(a.Azimuth))
	values.Set("raddatabase", q.PVCalc.RadDatabase)
	return q.build("PVcalc", values)
}

func (q QueryBuilder) build(tool string, values url.Values) string {
	values.Set("outputformat", "json")
	return q.BaseURL + "/" + tool + "?" + values.Encode()
}

func coordinates(loc solar.Location) url.Values {
	values := url.Values{}
	values.Set("lat", formatFloat(loc.Lat))
	values.Set("lon", formatFloat(loc.Lon))
	return values
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
