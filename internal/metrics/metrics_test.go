package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"answersite/internal/models"
)

func TestDatasetCollector(t *testing.T) {
	c := NewDatasetCollector([]models.MetricRecord{
		{Slug: "a", Impressions: 10, Clicks: 2, Conversions: 1},
		{Slug: "b", Impressions: 5},
		{Slug: "a", Impressions: 99},
	})

	assert.Equal(t, 6, testutil.CollectAndCount(c))

	expected := `
# HELP answersite_keyword_impressions Impressions per slug from the latest metrics input
# TYPE answersite_keyword_impressions gauge
answersite_keyword_impressions{slug="a"} 10
answersite_keyword_impressions{slug="b"} 5
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "answersite_keyword_impressions"))
}

func TestRun(t *testing.T) {
	start := time.Unix(1700000000, 0)
	r := NewRun("generate", start)

	r.RowsLoaded("keywords", 3)
	r.PagesWritten(3)
	r.Succeeded(start.Add(1500 * time.Millisecond))

	assert.Equal(t, 3.0, testutil.ToFloat64(r.pagesWritten))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.rowsLoaded.WithLabelValues("keywords")))
	assert.Equal(t, 1.5, testutil.ToFloat64(r.duration))
	assert.Equal(t, 1700000001.0, testutil.ToFloat64(r.lastSuccess))
}

func TestRun_WriteTextfile(t *testing.T) {
	r := NewRun("prune", time.Unix(0, 0))
	r.PruneSelected(2)
	require.NoError(t, r.ObserveDataset([]models.MetricRecord{{Slug: "a", Clicks: 4}}))

	path := filepath.Join(t.TempDir(), "answersite.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `answersite_prune_selected{job_name="prune"} 2`)
	assert.Contains(t, string(data), `answersite_keyword_clicks{slug="a"} 4`)

	assert.NoError(t, r.WriteTextfile(""))
}

func TestRun_WriteTextfileInvalidSlug(t *testing.T) {
	r := NewRun("prune", time.Unix(0, 0))
	require.NoError(t, r.ObserveDataset([]models.MetricRecord{{Slug: "bad\xff", Clicks: 1}}))

	path := filepath.Join(t.TempDir(), "answersite.prom")
	var err error
	require.NotPanics(t, func() { err = r.WriteTextfile(path) })
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}
