package loader

import (
	"context"
	"errors"
	"strconv"

	"answersite/internal/models"
)

// LoadMetrics reads metric records from path in file order.
// Empty numeric cells default to zero; values that are not non-negative
// integers are a MalformedRowError. last_seen_date is kept as text.
func LoadMetrics(path string) ([]models.MetricRecord, error) {
	var records []models.MetricRecord

	err := scanCSV(path, models.MetricColumns, func(row int, cell cellFunc) error {
		rec := models.MetricRecord{
			Slug:         cell(models.ColumnSlug),
			LastSeenDate: cell(models.ColumnLastSeenDate),
			Row:          row,
		}
		if rec.Slug == "" {
			return &MalformedRowError{File: path, Row: row, Column: models.ColumnSlug, Err: errors.New("slug is required")}
		}

		var err error
		if rec.Impressions, err = parseCount(path, row, models.ColumnImpressions, cell); err != nil {
			return err
		}
		if rec.Clicks, err = parseCount(path, row, models.ColumnClicks, cell); err != nil {
			return err
		}
		if rec.Conversions, err = parseCount(path, row, models.ColumnConversions, cell); err != nil {
			return err
		}

		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func parseCount(path string, row int, column string, cell cellFunc) (int64, error) {
	value := cell(column)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &MalformedRowError{File: path, Row: row, Column: column, Value: value, Err: errors.New("not an integer")}
	}
	if n < 0 {
		return 0, &MalformedRowError{File: path, Row: row, Column: column, Value: value, Err: errors.New("must not be negative")}
	}
	return n, nil
}

// CSVMetrics reads metrics from a CSV file.
type CSVMetrics struct {
	Path string
}

// ListKeywordMetrics loads every metrics row from the file.
func (s CSVMetrics) ListKeywordMetrics(ctx context.Context) ([]models.MetricRecord, error) {
	return LoadMetrics(s.Path)
}

// String names the source for logs.
func (s CSVMetrics) String() string {
	return s.Path
}
