package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"answersite/internal/models"
)

// ListKeywordMetrics returns every keyword_metrics row in insertion order.
// Row is set to the row id; a NULL last_seen_date becomes "".
func (d *DB) ListKeywordMetrics(ctx context.Context) ([]models.MetricRecord, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, slug, impressions, clicks, conversions, last_seen_date
		FROM keyword_metrics
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keyword metrics: %w", err)
	}
	defer rows.Close()

	var records []models.MetricRecord
	for rows.Next() {
		var (
			m    models.MetricRecord
			id   int64
			seen *time.Time
		)
		if err := rows.Scan(&id, &m.Slug, &m.Impressions, &m.Clicks, &m.Conversions, &seen); err != nil {
			return nil, fmt.Errorf("failed to scan keyword metrics: %w", err)
		}
		m.Row = int(id)
		if seen != nil {
			m.LastSeenDate = seen.Format(models.DateLayout)
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

// ImportKeywordMetrics bulk-inserts records with COPY, preserving their order.
func (d *DB) ImportKeywordMetrics(ctx context.Context, records []models.MetricRecord) (int64, error) {
	rows := make([][]any, 0, len(records))
	for _, m := range records {
		var seen any
		if m.LastSeenDate != "" {
			t, err := models.ParseDate(m.LastSeenDate)
			if err != nil {
				return 0, fmt.Errorf("keyword metric %q: %w", m.Slug, err)
			}
			seen = t
		}
		rows = append(rows, []any{m.Slug, m.Impressions, m.Clicks, m.Conversions, seen})
	}

	n, err := d.Pool.CopyFrom(ctx,
		pgx.Identifier{"keyword_metrics"},
		[]string{"slug", "impressions", "clicks", "conversions", "last_seen_date"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to import keyword metrics: %w", err)
	}
	return n, nil
}

// String names the source for logs without exposing credentials.
func (d *DB) String() string {
	cfg := d.Pool.Config().ConnConfig
	return fmt.Sprintf("postgres://%s:%d/%s#keyword_metrics", cfg.Host, cfg.Port, cfg.Database)
}
