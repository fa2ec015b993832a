package jobs

import (
	"context"
	"time"

	"answersite/internal/metrics"
	"answersite/internal/models"
	"answersite/internal/prune"
)

// Prune selects low-value slugs from the metrics source as of today and
// writes them to PrunePath. The list is only written after every row has
// been evaluated.
func (r *Runner) Prune(ctx context.Context, today time.Time) ([]string, error) {
	run := metrics.NewRun("prune", r.now())
	log := r.log.With("job", "prune")

	src, closeSource, err := r.openMetrics(ctx)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	records, err := src.ListKeywordMetrics(ctx)
	if err != nil {
		return nil, err
	}
	run.RowsLoaded("metrics", len(records))
	log.Info("loaded metrics", "source", sourceName(src), "rows", len(records))

	slugs, err := prune.Select(records, r.cfg.Prune, today, sourceName(src))
	if err != nil {
		return nil, err
	}
	log.Debug("prune thresholds",
		"min_impressions", r.cfg.Prune.MinImpressions,
		"max_conversions", r.cfg.Prune.MaxConversions,
		"min_age_days", r.cfg.Prune.MinAgeDays,
		"today", today.Format(models.DateLayout),
	)

	if err := prune.WriteList(r.cfg.PrunePath, slugs); err != nil {
		return nil, err
	}
	log.Info("prune list written", "path", r.cfg.PrunePath, "selected", len(slugs), "evaluated", len(records))

	run.PruneSelected(len(slugs))
	if err := run.ObserveDataset(records); err != nil {
		return slugs, err
	}
	run.Succeeded(r.now())
	if err := run.WriteTextfile(r.cfg.MetricsTextfile); err != nil {
		return slugs, err
	}
	return slugs, nil
}
