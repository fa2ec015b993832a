package models

// Required CSV columns for the keyword input.
const (
	ColumnSlug        = "slug"
	ColumnQuestion    = "question"
	ColumnShortAnswer = "short_answer"
	ColumnOfferURL    = "offer_url"
	ColumnCTAText     = "cta_text"
)

// KeywordColumns lists the keyword CSV header in canonical order.
var KeywordColumns = []string{ColumnSlug, ColumnQuestion, ColumnShortAnswer, ColumnOfferURL, ColumnCTAText}

// KeywordRecord represents one answer page: a slug mapped to its question,
// short answer and call-to-action offer.
type KeywordRecord struct {
	Slug        string
	Question    string
	ShortAnswer string
	OfferURL    string
	CTAText     string
}

// JoinedRecord pairs a keyword with its metrics row, if any.
type JoinedRecord struct {
	KeywordRecord
	Metric *MetricRecord
}

// HasMetric reports whether a metrics row was joined to the keyword.
func (r *JoinedRecord) HasMetric() bool {
	return r.Metric != nil
}

// Impressions returns the joined impressions, or zero without metrics.
func (r *JoinedRecord) Impressions() int64 {
	if r.Metric == nil {
		return 0
	}
	return r.Metric.Impressions
}

// Clicks returns the joined clicks, or zero without metrics.
func (r *JoinedRecord) Clicks() int64 {
	if r.Metric == nil {
		return 0
	}
	return r.Metric.Clicks
}

// Conversions returns the joined conversions, or zero without metrics.
func (r *JoinedRecord) Conversions() int64 {
	if r.Metric == nil {
		return 0
	}
	return r.Metric.Conversions
}
