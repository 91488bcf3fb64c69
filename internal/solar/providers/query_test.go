package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/solar-potential-analysis/internal/solar"
)

var adana = solar.Location{ID: "01", Name: "Adana", Lat: 37.0, Lon: 35.3213}

func TestQueryBuilderGoldenURLs(t *testing.T) {
	q := DefaultQueryBuilder()

	assert.Equal(t,
		"https://re.jrc.ec.europa.eu/api/v5_2/MRcalc?diffuseirrad=1&globalirrad=1&horirrad=1&lat=37&lon=35.3213&month_max=12&month_min=1&optimalangles=1&outputformat=json&usehorizon=1",
		q.OptimalAnglesURL(adana))

	assert.Equal(t,
		"https://re.jrc.ec.europa.eu/api/v5_2/tmy?endyear=2020&lat=37&lon=35.3213&outputformat=json&startyear=2005&usehorizon=1",
		q.TypicalYearURL(adana))

	assert.Equal(t,
		"https://re.jrc.ec.europa.eu/api/v5_2/PVcalc?angle=33&aspect=-2.5&lat=37&lon=35.3213&loss=10&mountingplace=free&outputformat=json&peakpower=1&pvtechchoice=crystSi&raddatabase=PVGIS-SARAH2",
		q.PVYieldURL(adana, solar.AngleEstimate{Tilt: 33, Azimuth: -2.5}))
}

func TestQueryBuilderUsesConfiguredConstants(t *testing.T) {
	q := DefaultQueryBuilder()
	q.BaseURL = "http://pvgis.test/api"
	q.TMY = TypicalYearParams{StartYear: 2010, EndYear: 2015}
	q.PVCalc.Loss = 14
	q.PVCalc.RadDatabase = "PVGIS-ERA5"

	assert.Equal(t,
		"http://pvgis.test/api/tmy?endyear=2015&lat=37&lon=35.3213&outputformat=json&startyear=2010&usehorizon=1",
		q.TypicalYearURL(adana))
	assert.Equal(t,
		"http://pvgis.test/api/PVcalc?angle=30&aspect=0&lat=37&lon=35.3213&loss=14&mountingplace=free&outputformat=json&peakpower=1&pvtechchoice=crystSi&raddatabase=PVGIS-ERA5",
		q.PVYieldURL(adana, solar.DefaultAngles))
}
