package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"answersite/internal/models"
	"answersite/internal/testutil"
)

func TestLoadMetrics(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteMetricsCSV(t, dir,
		[]string{"alpha", "120", "7", "1", "2024-04-01"},
		[]string{"beta", " 5 ", "", "", ""},
		[]string{"orphan", "0", "0", "0", "2024-01-01"},
	)

	got, err := LoadMetrics(path)
	require.NoError(t, err)
	assert.Equal(t, []models.MetricRecord{
		{Slug: "alpha", Impressions: 120, Clicks: 7, Conversions: 1, LastSeenDate: "2024-04-01", Row: 2},
		{Slug: "beta", Impressions: 5, Row: 3},
		{Slug: "orphan", LastSeenDate: "2024-01-01", Row: 4},
	}, got)
}

func TestLoadMetrics_ShortRowDefaultsToZero(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteMetricsCSV(t, dir, []string{"alpha", "9"})

	got, err := LoadMetrics(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].Impressions)
	assert.Zero(t, got[0].Clicks)
	assert.Zero(t, got[0].Conversions)
	assert.Empty(t, got[0].LastSeenDate)
}

func TestLoadMetrics_MalformedNumber(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		column string
		value  string
	}{
		{"text impressions", []string{"a", "lots", "0", "0", "2024-01-01"}, "impressions", "lots"},
		{"decimal clicks", []string{"a", "1", "1.5", "0", "2024-01-01"}, "clicks", "1.5"},
		{"negative conversions", []string{"a", "1", "1", "-1", "2024-01-01"}, "conversions", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteMetricsCSV(t, t.TempDir(), []string{"ok", "1", "1", "1", "2024-01-01"}, tt.row)

			_, err := LoadMetrics(path)
			var rowErr *MalformedRowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, 3, rowErr.Row)
			assert.Equal(t, tt.column, rowErr.Column)
			assert.Equal(t, tt.value, rowErr.Value)
			assert.Contains(t, err.Error(), "row 3")
		})
	}
}

func TestLoadMetrics_InvalidUTF8Slug(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteMetricsCSV(t, dir, []string{"bad\xff", "1", "0", "0", "2024-01-01"})

	_, err := LoadMetrics(path)
	var rowErr *MalformedRowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, path, rowErr.File)
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, "slug", rowErr.Column)
	assert.Equal(t, "bad\xff", rowErr.Value)
}

func TestLoadMetrics_SchemaError(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "metrics.csv", "slug,impressions,clicks,conversions\n")

	_, err := LoadMetrics(path)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"last_seen_date"}, schemaErr.Missing)
}

func TestCSVMetrics_ListKeywordMetrics(t *testing.T) {
	path := testutil.WriteMetricsCSV(t, t.TempDir(), []string{"alpha", "1", "0", "0", "2024-01-01"})

	src := CSVMetrics{Path: path}
	got, err := src.ListKeywordMetrics(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alpha", got[0].Slug)
	assert.Equal(t, path, src.String())
}
