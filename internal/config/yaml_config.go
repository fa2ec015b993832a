package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config file. Every field is
// optional; unset fields keep the value from the layer below.
type YAMLConfig struct {
	BaseURL  string        `yaml:"base_url"`
	LogLevel string        `yaml:"log_level"`
	Site     SiteConfig    `yaml:"site"`
	Paths    PathsConfig   `yaml:"paths"`
	Prune    PruneConfig   `yaml:"prune"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// SiteConfig holds rendering options.
type SiteConfig struct {
	Title        string `yaml:"title"`
	Tagline      string `yaml:"tagline"`
	PopularCount *int   `yaml:"popular_count"`
}

// PathsConfig holds input and output locations.
type PathsConfig struct {
	Keywords  string `yaml:"keywords"`
	Metrics   string `yaml:"metrics"`
	Site      string `yaml:"site"`
	PruneList string `yaml:"prune_list"`
}

// PruneConfig holds prune thresholds. Pointers distinguish zero from unset.
type PruneConfig struct {
	MinImpressions *int64 `yaml:"min_impressions"`
	MaxConversions *int64 `yaml:"max_conversions"`
	MinAgeDays     *int   `yaml:"min_age_days"`
}

// MetricsConfig holds the metrics source and sink.
type MetricsConfig struct {
	DatabaseURL string `yaml:"database_url"`
	Textfile    string `yaml:"textfile"`
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns nil without error if the file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply copies every set field onto cfg.
func (y *YAMLConfig) Apply(cfg *Config) {
	if y == nil {
		return
	}
	setString(&cfg.BaseURL, y.BaseURL)
	setString(&cfg.LogLevel, y.LogLevel)
	setString(&cfg.SiteTitle, y.Site.Title)
	setString(&cfg.SiteTagline, y.Site.Tagline)
	setString(&cfg.KeywordsPath, y.Paths.Keywords)
	setString(&cfg.MetricsPath, y.Paths.Metrics)
	setString(&cfg.SiteDir, y.Paths.Site)
	setString(&cfg.PrunePath, y.Paths.PruneList)
	setString(&cfg.MetricsDatabaseURL, y.Metrics.DatabaseURL)
	setString(&cfg.MetricsTextfile, y.Metrics.Textfile)

	if y.Site.PopularCount != nil {
		cfg.PopularCount = *y.Site.PopularCount
	}
	if y.Prune.MinImpressions != nil {
		cfg.Prune.MinImpressions = *y.Prune.MinImpressions
	}
	if y.Prune.MaxConversions != nil {
		cfg.Prune.MaxConversions = *y.Prune.MaxConversions
	}
	if y.Prune.MinAgeDays != nil {
		cfg.Prune.MinAgeDays = *y.Prune.MinAgeDays
	}
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
