package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"answersite/internal/prune"
	"answersite/internal/validation"
)

// DefaultConfigFile is read when CONFIG_FILE is unset.
const DefaultConfigFile = "answersite.yaml"

// Config holds all job configuration. Values are layered: defaults, then the
// optional YAML file, then environment variables, then command-line flags.
type Config struct {
	// Site
	BaseURL      string // env: BASE_URL, default: "https://example.com"
	SiteTitle    string // env: SITE_TITLE, default: "Answer Library"
	SiteTagline  string // env: SITE_TAGLINE
	PopularCount int    // env: POPULAR_COUNT, default: 5 (0 disables the popular list)

	// Paths
	KeywordsPath string // env: KEYWORDS_PATH
	MetricsPath  string // env: METRICS_PATH
	SiteDir      string // env: SITE_DIR
	PrunePath    string // env: PRUNE_PATH

	// Metrics
	MetricsDatabaseURL string // env: METRICS_DATABASE_URL, read metrics from Postgres when set
	MetricsTextfile    string // env: METRICS_TEXTFILE, Prometheus textfile output

	// Pruning
	Prune prune.Thresholds

	LogLevel string // env: LOG_LEVEL, default: "info"
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		BaseURL:      "https://example.com",
		SiteTitle:    "Answer Library",
		SiteTagline:  "Search our collection of quick answers.",
		PopularCount: 5,
		KeywordsPath: "data/keywords.csv",
		MetricsPath:  "data/metrics.csv",
		SiteDir:      "site",
		PrunePath:    "data/prune_list.txt",
		Prune:        prune.DefaultThresholds,
		LogLevel:     "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment. An empty path falls back to CONFIG_FILE and then
// DefaultConfigFile; a missing default file is not an error.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("CONFIG_FILE")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultConfigFile
	}

	yc, err := LoadYAMLConfig(path)
	if err != nil {
		return nil, err
	}
	if yc == nil && explicit {
		return nil, fmt.Errorf("config file %s not found", path)
	}
	yc.Apply(cfg)

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads .env.local and then .env. Variables already set in the
// environment are never overridden; missing files are ignored.
func loadEnvFiles() error {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.BaseURL = getEnv("BASE_URL", cfg.BaseURL)
	cfg.SiteTitle = getEnv("SITE_TITLE", cfg.SiteTitle)
	cfg.SiteTagline = getEnv("SITE_TAGLINE", cfg.SiteTagline)
	cfg.KeywordsPath = getEnv("KEYWORDS_PATH", cfg.KeywordsPath)
	cfg.MetricsPath = getEnv("METRICS_PATH", cfg.MetricsPath)
	cfg.SiteDir = getEnv("SITE_DIR", cfg.SiteDir)
	cfg.PrunePath = getEnv("PRUNE_PATH", cfg.PrunePath)
	cfg.MetricsDatabaseURL = getEnv("METRICS_DATABASE_URL", cfg.MetricsDatabaseURL)
	cfg.MetricsTextfile = getEnv("METRICS_TEXTFILE", cfg.MetricsTextfile)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	var errs []error
	var err error
	if cfg.PopularCount, err = getEnvInt("POPULAR_COUNT", cfg.PopularCount); err != nil {
		errs = append(errs, err)
	}
	if cfg.Prune.MinImpressions, err = getEnvInt64("PRUNE_MIN_IMPRESSIONS", cfg.Prune.MinImpressions); err != nil {
		errs = append(errs, err)
	}
	if cfg.Prune.MaxConversions, err = getEnvInt64("PRUNE_MAX_CONVERSIONS", cfg.Prune.MaxConversions); err != nil {
		errs = append(errs, err)
	}
	if cfg.Prune.MinAgeDays, err = getEnvInt("PRUNE_MIN_AGE_DAYS", cfg.Prune.MinAgeDays); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	n, err := getEnvInt64(key, int64(fallback))
	return int(n), err
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return n, nil
}

// Validate checks values the jobs cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if valid, msg := validation.ValidateBaseURL(c.BaseURL); !valid {
		errs = append(errs, fmt.Errorf("base URL %q: %s", c.BaseURL, msg))
	}
	if c.PopularCount < 0 {
		errs = append(errs, fmt.Errorf("popular count must not be negative, got %d", c.PopularCount))
	}
	if err := c.Prune.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
