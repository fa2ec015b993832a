package loader

import "answersite/internal/models"

// Join pairs each keyword with the first metrics row that has the same slug.
// Keyword order is preserved; metrics without a keyword are dropped.
func Join(keywords []models.KeywordRecord, metrics []models.MetricRecord) []models.JoinedRecord {
	bySlug := make(map[string]*models.MetricRecord, len(metrics))
	for i := range metrics {
		if _, ok := bySlug[metrics[i].Slug]; !ok {
			bySlug[metrics[i].Slug] = &metrics[i]
		}
	}

	joined := make([]models.JoinedRecord, len(keywords))
	for i, kw := range keywords {
		joined[i] = models.JoinedRecord{KeywordRecord: kw, Metric: bySlug[kw.Slug]}
	}
	return joined
}

// Unmatched returns metric slugs, in order and without repeats, that have no
// keyword record.
func Unmatched(keywords []models.KeywordRecord, metrics []models.MetricRecord) []string {
	known := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		known[kw.Slug] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{})
	for _, m := range metrics {
		if _, ok := known[m.Slug]; ok {
			continue
		}
		if _, ok := seen[m.Slug]; ok {
			continue
		}
		seen[m.Slug] = struct{}{}
		out = append(out, m.Slug)
	}
	return out
}
