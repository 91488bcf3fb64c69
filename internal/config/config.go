package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/i474232898/solar-potential-analysis/internal/solar"
	"github.com/i474232898/solar-potential-analysis/internal/solar/providers"
)

// FetchConfig holds the outbound admission-control and retry settings.
type FetchConfig struct {
	MaxConcurrent    int
	MinSpacing       time.Duration
	Retries          int
	BackoffMin       time.Duration
	BackoffMax       time.Duration
	BreakerThreshold uint32
	BreakerTimeout   time.Duration
}

type AppConfig struct {
	Port    string
	DevMode bool

	// HTTPTimeout bounds every outbound request attempt.
	HTTPTimeout time.Duration
	UserAgent   string
	Fetch       FetchConfig

	Queries     providers.QueryBuilder
	Economics   solar.Economics
	Suitability solar.Suitability

	// LocationParallelism is the number of province pipelines run at once.
	LocationParallelism int
	TypicalYearEnabled  bool

	// Scheduled refresh of the full province report (0 = disabled).
	RefreshInterval  time.Duration
	ReportMaxHistory int
	ReportMaxAge     time.Duration
}

// fileConfig is the optional YAML overlay for the domain constants.
type fileConfig struct {
	Economics   solar.Economics        `yaml:"economics"`
	Suitability solar.Suitability      `yaml:"suitability"`
	PVGIS       providers.QueryBuilder `yaml:"pvgis"`
}

// Load reads configuration from environment with sensible defaults, then
// applies the YAML file named by SOLAR_CONFIG_FILE, if any. PVGIS_BASE_URL
// overrides pvgis.base_url from the file.
func Load(logger *slog.Logger) (*AppConfig, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}
	cfg := &AppConfig{
		Queries:     providers.DefaultQueryBuilder(),
		Economics:   solar.DefaultEconomics(),
		Suitability: solar.DefaultSuitability(),
	}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.DevMode = getenvBool("DEV_MODE", false)
	cfg.UserAgent = getenvDefault("USER_AGENT", "solar-analysis-agent/0.1")

	retry := providers.DefaultRetryPolicy()
	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"HTTP_TIMEOUT", 20 * time.Second, &cfg.HTTPTimeout},
		{"FETCH_MIN_SPACING", 350 * time.Millisecond, &cfg.Fetch.MinSpacing},
		{"FETCH_BACKOFF_MIN", retry.MinDelay, &cfg.Fetch.BackoffMin},
		{"FETCH_BACKOFF_MAX", retry.MaxDelay, &cfg.Fetch.BackoffMax},
		{"BREAKER_OPEN_TIMEOUT", 30 * time.Second, &cfg.Fetch.BreakerTimeout},
		{"REFRESH_INTERVAL", 0, &cfg.RefreshInterval},
		{"REPORT_MAX_AGE", 0, &cfg.ReportMaxAge},
	}
	for _, d := range durations {
		v, err := getenvDuration(d.key, d.def)
		if err != nil {
			return nil, err
		}
		*d.dst = v
	}

	cfg.Fetch.MaxConcurrent = getenvInt("FETCH_MAX_CONCURRENT", 3)
	cfg.Fetch.Retries = getenvInt("FETCH_RETRIES", retry.Retries)
	cfg.Fetch.BreakerThreshold = uint32(getenvInt("BREAKER_FAILURE_THRESHOLD", 10))
	cfg.LocationParallelism = getenvInt("LOCATION_PARALLELISM", 1)
	cfg.TypicalYearEnabled = getenvBool("TYPICAL_YEAR_ENABLED", true)
	cfg.ReportMaxHistory = getenvInt("REPORT_MAX_HISTORY", 24)

	if path := os.Getenv("SOLAR_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
		logger.Info("loaded solar configuration file", "path", path)
	}
	// The environment wins over the file for the endpoint.
	if v := os.Getenv("PVGIS_BASE_URL"); v != "" {
		cfg.Queries.BaseURL = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read SOLAR_CONFIG_FILE: %w", err)
	}

	fc := fileConfig{
		Economics:   c.Economics,
		Suitability: c.Suitability,
		PVGIS:       c.Queries,
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse SOLAR_CONFIG_FILE: %w", err)
	}

	c.Economics = fc.Economics
	c.Suitability = fc.Suitability
	c.Queries = fc.PVGIS
	return nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *AppConfig) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Fetch.MaxConcurrent < 1 {
		return errors.New("FETCH_MAX_CONCURRENT must be at least 1")
	}
	if c.Fetch.Retries < 0 {
		return errors.New("FETCH_RETRIES must not be negative")
	}
	if c.Fetch.BackoffMin <= 0 || c.Fetch.BackoffMax < c.Fetch.BackoffMin {
		return errors.New("FETCH_BACKOFF_MIN must be positive and not above FETCH_BACKOFF_MAX")
	}
	if c.LocationParallelism < 1 {
		return errors.New("LOCATION_PARALLELISM must be at least 1")
	}
	if c.Queries.BaseURL == "" {
		return errors.New("pvgis base url is required")
	}
	if c.Queries.TMY.StartYear > c.Queries.TMY.EndYear {
		return fmt.Errorf("tmy start year %d is after end year %d", c.Queries.TMY.StartYear, c.Queries.TMY.EndYear)
	}
	if c.Economics.CostPerKWp <= 0 {
		return errors.New("economics.cost_per_kwp must be positive")
	}
	if c.Suitability.AnnualProductionFactor <= 0 {
		return errors.New("suitability.annual_production_factor must be positive")
	}
	return nil
}

// RetryPolicy returns the fetcher retry policy.
func (c *AppConfig) RetryPolicy() providers.RetryPolicy {
	return providers.RetryPolicy{
		Retries:  c.Fetch.Retries,
		MinDelay: c.Fetch.BackoffMin,
		MaxDelay: c.Fetch.BackoffMax,
	}
}

// NewLogger returns a debug text logger in dev mode and a JSON logger otherwise.
func NewLogger(devMode bool) *slog.Logger {
	if devMode {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
