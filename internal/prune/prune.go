// Package prune selects underperforming slugs from click metrics.
package prune

import (
	"fmt"
	"strings"
	"time"

	"answersite/internal/loader"
	"answersite/internal/models"
	"answersite/internal/output"
)

// Thresholds configures which metrics rows qualify for pruning.
type Thresholds struct {
	MinImpressions int64
	MaxConversions int64
	MinAgeDays     int
}

// DefaultThresholds flags pages that were shown at least 300 times, never
// converted and have not been seen for 30 days.
var DefaultThresholds = Thresholds{MinImpressions: 300, MaxConversions: 0, MinAgeDays: 30}

// Validate rejects negative thresholds.
func (t Thresholds) Validate() error {
	if t.MinImpressions < 0 {
		return fmt.Errorf("min impressions must not be negative, got %d", t.MinImpressions)
	}
	if t.MaxConversions < 0 {
		return fmt.Errorf("max conversions must not be negative, got %d", t.MaxConversions)
	}
	if t.MinAgeDays < 0 {
		return fmt.Errorf("min age days must not be negative, got %d", t.MinAgeDays)
	}
	return nil
}

// Qualifies reports whether a single row meets every threshold as of today.
func (t Thresholds) Qualifies(m *models.MetricRecord, today time.Time) (bool, error) {
	age, err := m.AgeDays(today)
	if err != nil {
		return false, err
	}
	return m.Impressions >= t.MinImpressions &&
		m.Conversions <= t.MaxConversions &&
		age >= t.MinAgeDays, nil
}

// Select returns the slugs of every qualifying row in input order. A row whose
// last_seen_date does not parse fails the whole selection with a
// *loader.MalformedRowError, so callers never write a partial list.
func Select(metrics []models.MetricRecord, t Thresholds, today time.Time, source string) ([]string, error) {
	slugs := []string{}
	for i := range metrics {
		m := &metrics[i]
		ok, err := t.Qualifies(m, today)
		if err != nil {
			row := m.Row
			if row == 0 {
				row = i + 1
			}
			return nil, &loader.MalformedRowError{
				File:   source,
				Row:    row,
				Column: models.ColumnLastSeenDate,
				Value:  m.LastSeenDate,
				Err:    err,
			}
		}
		if ok {
			slugs = append(slugs, m.Slug)
		}
	}
	return slugs, nil
}

// Format renders slugs one per line, with a trailing newline when the list
// is not empty.
func Format(slugs []string) string {
	if len(slugs) == 0 {
		return ""
	}
	return strings.Join(slugs, "\n") + "\n"
}

// WriteList writes the prune list to path, replacing any previous list.
func WriteList(path string, slugs []string) error {
	return output.WriteFile(path, Format(slugs))
}
