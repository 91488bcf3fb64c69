package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "FETCH_MAX_CONCURRENT", "FETCH_MIN_SPACING", "FETCH_RETRIES", "FETCH_BACKOFF_MIN",
		"FETCH_BACKOFF_MAX", "LOCATION_PARALLELISM", "TYPICAL_YEAR_ENABLED", "SOLAR_CONFIG_FILE",
		"PVGIS_BASE_URL", "REFRESH_INTERVAL", "HTTP_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3, cfg.Fetch.MaxConcurrent)
	assert.Equal(t, 350*time.Millisecond, cfg.Fetch.MinSpacing)
	assert.Equal(t, 3, cfg.Fetch.Retries)
	assert.Equal(t, 500*time.Millisecond, cfg.Fetch.BackoffMin)
	assert.Equal(t, 2500*time.Millisecond, cfg.Fetch.BackoffMax)
	assert.Equal(t, 20*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 1, cfg.LocationParallelism)
	assert.True(t, cfg.TypicalYearEnabled)
	assert.Zero(t, cfg.RefreshInterval)

	assert.Equal(t, 15000.0, cfg.Economics.CostPerKWp)
	assert.Equal(t, 1.4, cfg.Economics.ElectricityPricePerKWh)
	assert.Equal(t, 0.43, cfg.Economics.GridEmissionFactorKgPerKWh)
	assert.Equal(t, 2005, cfg.Queries.TMY.StartYear)
	assert.Equal(t, 2020, cfg.Queries.TMY.EndYear)
	assert.Equal(t, "PVGIS-SARAH2", cfg.Queries.PVCalc.RadDatabase)
	assert.Equal(t, "https://re.jrc.ec.europa.eu/api/v5_2", cfg.Queries.BaseURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SOLAR_CONFIG_FILE", "")
	t.Setenv("FETCH_MAX_CONCURRENT", "5")
	t.Setenv("FETCH_MIN_SPACING", "1s")
	t.Setenv("LOCATION_PARALLELISM", "4")
	t.Setenv("TYPICAL_YEAR_ENABLED", "false")
	t.Setenv("REFRESH_INTERVAL", "6h")

	cfg, err := Load(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Fetch.MaxConcurrent)
	assert.Equal(t, time.Second, cfg.Fetch.MinSpacing)
	assert.Equal(t, 4, cfg.LocationParallelism)
	assert.False(t, cfg.TypicalYearEnabled)
	assert.Equal(t, 6*time.Hour, cfg.RefreshInterval)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("SOLAR_CONFIG_FILE", "")
	t.Setenv("FETCH_MIN_SPACING", "soon")

	_, err := Load(discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_MIN_SPACING")
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.yaml")
	raw := `
economics:
  electricity_price_per_kwh: 2.5
suitability:
  min_annual_production: 1200
  annual_production_factor: 1.2
pvgis:
  tmy:
    start_year: 2010
  pvcalc:
    loss: 14
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	t.Setenv("SOLAR_CONFIG_FILE", path)
	t.Setenv("FETCH_MIN_SPACING", "")

	cfg, err := Load(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Economics.ElectricityPricePerKWh)
	assert.Equal(t, 15000.0, cfg.Economics.CostPerKWp)
	assert.Equal(t, 1200.0, cfg.Suitability.MinAnnualProduction)
	assert.Equal(t, 1.2, cfg.Suitability.AnnualProductionFactor)
	assert.Equal(t, 3.0, cfg.Suitability.MinSunHours)
	assert.Equal(t, 2010, cfg.Queries.TMY.StartYear)
	assert.Equal(t, 2020, cfg.Queries.TMY.EndYear)
	assert.Equal(t, 14.0, cfg.Queries.PVCalc.Loss)
	assert.Equal(t, "crystSi", cfg.Queries.PVCalc.PVTechChoice)
}

func TestLoadBaseURLPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pvgis:\n  base_url: http://file.test/api\n"), 0o600))
	t.Setenv("SOLAR_CONFIG_FILE", path)
	t.Setenv("FETCH_MIN_SPACING", "")

	t.Setenv("PVGIS_BASE_URL", "")
	cfg, err := Load(discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "http://file.test/api", cfg.Queries.BaseURL)

	t.Setenv("PVGIS_BASE_URL", "http://env.test/api")
	cfg, err = Load(discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "http://env.test/api", cfg.Queries.BaseURL)
}

func TestLoadDevModeWithoutLogger(t *testing.T) {
	t.Setenv("SOLAR_CONFIG_FILE", "")
	t.Setenv("FETCH_MIN_SPACING", "")
	t.Setenv("DEV_MODE", "true")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.True(t, cfg.DevMode)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pvgis:\n  tmy:\n    start_year: 2030\n"), 0o600))
	t.Setenv("SOLAR_CONFIG_FILE", path)
	t.Setenv("FETCH_MIN_SPACING", "")

	_, err := Load(discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmy start year")

	t.Setenv("SOLAR_CONFIG_FILE", "")
	t.Setenv("LOCATION_PARALLELISM", "0")
	_, err = Load(discardLogger())
	require.Error(t, err)
}
