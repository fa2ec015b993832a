package models

import (
	"fmt"
	"strings"
	"time"
)

// Required CSV columns for the metrics input.
const (
	ColumnImpressions  = "impressions"
	ColumnClicks       = "clicks"
	ColumnConversions  = "conversions"
	ColumnLastSeenDate = "last_seen_date"
)

// MetricColumns lists the metrics CSV header in canonical order.
var MetricColumns = []string{ColumnSlug, ColumnImpressions, ColumnClicks, ColumnConversions, ColumnLastSeenDate}

// DateLayout is the calendar date format used for last_seen_date values.
const DateLayout = "2006-01-02"

// MetricRecord represents per-slug click metrics.
type MetricRecord struct {
	Slug         string
	Impressions  int64
	Clicks       int64
	Conversions  int64
	LastSeenDate string

	// Row is the 1-based line number the record was read from, or the
	// position in the source when it did not come from a file.
	Row int
}

// ParseDate parses a last_seen_date value. Plain dates and RFC 3339
// timestamps are accepted; timestamps are truncated to their UTC date.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", value, DateLayout)
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// LastSeen parses the record's last_seen_date.
func (m *MetricRecord) LastSeen() (time.Time, error) {
	return ParseDate(m.LastSeenDate)
}

// AgeDays returns the number of whole calendar days between the last seen
// date and today. Only the date part of today is used.
func (m *MetricRecord) AgeDays(today time.Time) (int, error) {
	seen, err := m.LastSeen()
	if err != nil {
		return 0, err
	}
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(ref.Sub(seen).Hours() / 24), nil
}
