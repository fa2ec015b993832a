// Package jobs runs the site generation and prune batch jobs end to end.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"answersite/internal/config"
	"answersite/internal/db"
	"answersite/internal/loader"
	"answersite/internal/models"
)

// MetricsSource lists keyword metric rows in source order.
type MetricsSource interface {
	ListKeywordMetrics(ctx context.Context) ([]models.MetricRecord, error)
}

// Runner executes jobs with an explicit configuration.
type Runner struct {
	cfg *config.Config
	log *slog.Logger
	now func() time.Time
}

// NewRunner creates a runner. now is read for run metrics only.
func NewRunner(cfg *config.Config, log *slog.Logger, now func() time.Time) *Runner {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Runner{cfg: cfg, log: log, now: now}
}

// openMetrics returns the configured metrics source and a close function.
func (r *Runner) openMetrics(ctx context.Context) (MetricsSource, func(), error) {
	if r.cfg.MetricsDatabaseURL == "" {
		return loader.CSVMetrics{Path: r.cfg.MetricsPath}, func() {}, nil
	}

	database, err := db.Open(ctx, r.cfg.MetricsDatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open metrics database: %w", err)
	}
	return database, database.Close, nil
}

func sourceName(src MetricsSource) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", src)
}
