// Package metrics records batch run metrics and writes them in the Prometheus
// text format for the node_exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"answersite/internal/models"
)

var (
	keywordImpressionsDesc = prometheus.NewDesc(
		"answersite_keyword_impressions",
		"Impressions per slug from the latest metrics input",
		[]string{"slug"},
		nil,
	)
	keywordClicksDesc = prometheus.NewDesc(
		"answersite_keyword_clicks",
		"Clicks per slug from the latest metrics input",
		[]string{"slug"},
		nil,
	)
	keywordConversionsDesc = prometheus.NewDesc(
		"answersite_keyword_conversions",
		"Conversions per slug from the latest metrics input",
		[]string{"slug"},
		nil,
	)
)

// DatasetCollector is a custom Prometheus collector that exports the metric
// rows loaded for a run. Repeated slugs report their first row.
type DatasetCollector struct {
	records []models.MetricRecord
}

// NewDatasetCollector creates a collector over records.
func NewDatasetCollector(records []models.MetricRecord) *DatasetCollector {
	return &DatasetCollector{records: records}
}

// Describe sends the metric descriptors to the channel.
func (c *DatasetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- keywordImpressionsDesc
	ch <- keywordClicksDesc
	ch <- keywordConversionsDesc
}

// Collect emits one gauge per slug and measure. A slug that cannot be used
// as a label value surfaces as an invalid metric, failing the gather.
func (c *DatasetCollector) Collect(ch chan<- prometheus.Metric) {
	seen := make(map[string]struct{}, len(c.records))
	for _, r := range c.records {
		if _, ok := seen[r.Slug]; ok {
			continue
		}
		seen[r.Slug] = struct{}{}
		emit(ch, keywordImpressionsDesc, r.Impressions, r.Slug)
		emit(ch, keywordClicksDesc, r.Clicks, r.Slug)
		emit(ch, keywordConversionsDesc, r.Conversions, r.Slug)
	}
}

func emit(ch chan<- prometheus.Metric, desc *prometheus.Desc, value int64, slug string) {
	m, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, float64(value), slug)
	if err != nil {
		m = prometheus.NewInvalidMetric(desc, err)
	}
	ch <- m
}

// Run holds the metrics of one job invocation in a private registry.
type Run struct {
	started  time.Time
	registry *prometheus.Registry

	rowsLoaded    *prometheus.GaugeVec
	pagesWritten  prometheus.Gauge
	pruneSelected prometheus.Gauge
	duration      prometheus.Gauge
	lastSuccess   prometheus.Gauge
}

// NewRun creates the metrics for job, starting its clock at now.
func NewRun(job string, now time.Time) *Run {
	labels := prometheus.Labels{"job_name": job}
	r := &Run{
		started:  now,
		registry: prometheus.NewRegistry(),
		rowsLoaded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "answersite_rows_loaded",
			Help:        "Rows read from each input",
			ConstLabels: labels,
		}, []string{"input"}),
		pagesWritten: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "answersite_pages_written",
			Help:        "Detail pages written by the last site build",
			ConstLabels: labels,
		}),
		pruneSelected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "answersite_prune_selected",
			Help:        "Slugs written to the last prune list",
			ConstLabels: labels,
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "answersite_run_duration_seconds",
			Help:        "Wall time of the last successful run",
			ConstLabels: labels,
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "answersite_last_success_timestamp_seconds",
			Help:        "Unix time the last successful run finished",
			ConstLabels: labels,
		}),
	}
	r.registry.MustRegister(r.rowsLoaded, r.pagesWritten, r.pruneSelected, r.duration, r.lastSuccess)
	return r
}

// RowsLoaded records how many rows an input produced.
func (r *Run) RowsLoaded(input string, n int) {
	r.rowsLoaded.WithLabelValues(input).Set(float64(n))
}

// PagesWritten records the number of detail pages built.
func (r *Run) PagesWritten(n int) {
	r.pagesWritten.Set(float64(n))
}

// PruneSelected records the length of the prune list.
func (r *Run) PruneSelected(n int) {
	r.pruneSelected.Set(float64(n))
}

// ObserveDataset registers a per-slug collector for records.
func (r *Run) ObserveDataset(records []models.MetricRecord) error {
	if err := r.registry.Register(NewDatasetCollector(records)); err != nil {
		return fmt.Errorf("register dataset collector: %w", err)
	}
	return nil
}

// Succeeded stamps the run duration and completion time.
func (r *Run) Succeeded(now time.Time) {
	r.duration.Set(now.Sub(r.started).Seconds())
	r.lastSuccess.Set(float64(now.Unix()))
}

// WriteTextfile writes the registry to path. An empty path is a no-op.
func (r *Run) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
