package jobs

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"answersite/internal/loader"
	"answersite/internal/metrics"
	"answersite/internal/models"
	"answersite/internal/site"
)

// Generate loads keywords and metrics, renders the site into SiteDir and
// records run metrics. Nothing is written unless every input loads.
func (r *Runner) Generate(ctx context.Context) (site.Result, error) {
	run := metrics.NewRun("generate", r.now())
	log := r.log.With("job", "generate")

	keywords, err := loader.LoadKeywords(r.cfg.KeywordsPath)
	if err != nil {
		return site.Result{}, err
	}
	run.RowsLoaded("keywords", len(keywords))
	log.Info("loaded keywords", "path", r.cfg.KeywordsPath, "rows", len(keywords))

	for _, a := range loader.LintKeywords(keywords) {
		log.Warn("suspicious keyword value", "slug", a.Slug, "field", a.Field, "reason", a.Message)
	}

	records, err := r.loadGenerationMetrics(ctx, log)
	if err != nil {
		return site.Result{}, err
	}
	run.RowsLoaded("metrics", len(records))

	if unmatched := loader.Unmatched(keywords, records); len(unmatched) > 0 {
		log.Info("ignoring metrics without a keyword", "count", len(unmatched), "slugs", unmatched)
	}
	joined := loader.Join(keywords, records)

	gen := site.New(site.Options{
		BaseURL:      r.cfg.BaseURL,
		Title:        r.cfg.SiteTitle,
		Tagline:      r.cfg.SiteTagline,
		PopularCount: r.cfg.PopularCount,
		Logger:       log,
	})
	res, err := gen.Build(r.cfg.SiteDir, joined)
	if err != nil {
		return res, err
	}
	log.Info("site generated", "dir", r.cfg.SiteDir, "pages", res.Pages, "files", len(res.Files))

	run.PagesWritten(res.Pages)
	if err := run.ObserveDataset(records); err != nil {
		return res, err
	}
	run.Succeeded(r.now())
	if err := run.WriteTextfile(r.cfg.MetricsTextfile); err != nil {
		return res, err
	}
	return res, nil
}

// loadGenerationMetrics reads metrics for the join. A missing metrics CSV
// only means no page has metrics; any other failure aborts the run.
func (r *Runner) loadGenerationMetrics(ctx context.Context, log *slog.Logger) ([]models.MetricRecord, error) {
	src, closeSource, err := r.openMetrics(ctx)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	records, err := src.ListKeywordMetrics(ctx)
	var ioErr *loader.IOError
	if errors.As(err, &ioErr) && errors.Is(err, os.ErrNotExist) {
		log.Warn("metrics input not found, generating without metrics", "source", sourceName(src))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	log.Info("loaded metrics", "source", sourceName(src), "rows", len(records))
	return records, nil
}
