// Package cli holds the command-line plumbing shared by the generate and
// prune commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"answersite/internal/config"
)

// CommonFlags are accepted by every command.
type CommonFlags struct {
	ConfigFile      string
	MetricsPath     string
	MetricsDB       string
	MetricsTextfile string
	LogLevel        string
}

// Bind registers the common flags on fs.
func (f *CommonFlags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigFile, "config", "", "YAML config file (default $CONFIG_FILE or "+config.DefaultConfigFile+")")
	fs.StringVar(&f.MetricsPath, "metrics", "", "metrics CSV path")
	fs.StringVar(&f.MetricsDB, "metrics-db", "", "Postgres URL to read metrics from instead of the CSV")
	fs.StringVar(&f.MetricsTextfile, "metrics-textfile", "", "write Prometheus run metrics to this file")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn, error")
}

// Load reads the configuration and applies every common flag that was set.
func (f *CommonFlags) Load(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	Override(fs, "metrics", &cfg.MetricsPath, f.MetricsPath)
	Override(fs, "metrics-db", &cfg.MetricsDatabaseURL, f.MetricsDB)
	Override(fs, "metrics-textfile", &cfg.MetricsTextfile, f.MetricsTextfile)
	Override(fs, "log-level", &cfg.LogLevel, f.LogLevel)
	return cfg, nil
}

// Override copies value into dst when the named flag was given.
func Override[T any](fs *pflag.FlagSet, name string, dst *T, value T) {
	if fs.Changed(name) {
		*dst = value
	}
}

// NewLogger returns a text logger tagged with a fresh run id.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run_id", uuid.NewString())
}

// Execute runs cmd and returns the process exit code: 0 on success, 1 on
// any configuration, validation or I/O failure.
func Execute(cmd *cobra.Command) int {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		return 1
	}
	return 0
}
