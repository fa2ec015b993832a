// Package loader reads keyword and metric CSV inputs into records and joins
// them by slug.
package loader

import (
	"errors"

	"answersite/internal/models"
	"answersite/internal/validation"
)

// LoadKeywords reads keyword records from path in file order.
// Missing text cells default to "". An empty slug is a MalformedRowError and
// a repeated slug is a DuplicateSlugError.
func LoadKeywords(path string) ([]models.KeywordRecord, error) {
	var records []models.KeywordRecord
	firstRow := make(map[string]int)

	err := scanCSV(path, models.KeywordColumns, func(row int, cell cellFunc) error {
		rec := models.KeywordRecord{
			Slug:        cell(models.ColumnSlug),
			Question:    cell(models.ColumnQuestion),
			ShortAnswer: cell(models.ColumnShortAnswer),
			OfferURL:    cell(models.ColumnOfferURL),
			CTAText:     cell(models.ColumnCTAText),
		}
		if rec.Slug == "" {
			return &MalformedRowError{File: path, Row: row, Column: models.ColumnSlug, Err: errors.New("slug is required")}
		}
		if first, ok := firstRow[rec.Slug]; ok {
			return &DuplicateSlugError{File: path, Slug: rec.Slug, FirstRow: first, Row: row}
		}
		firstRow[rec.Slug] = row
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Advisory describes a keyword value that is accepted but likely wrong.
type Advisory struct {
	Slug    string
	Field   string
	Message string
}

// LintKeywords reports slugs that are not URL-safe and offer URLs that are
// not absolute http(s) links. Records are never modified.
func LintKeywords(records []models.KeywordRecord) []Advisory {
	var out []Advisory
	for _, rec := range records {
		if !validation.ValidateSlug(rec.Slug) {
			out = append(out, Advisory{Slug: rec.Slug, Field: models.ColumnSlug, Message: "slug is not URL-safe"})
		}
		if valid, msg := validation.ValidateURL(rec.OfferURL); !valid {
			out = append(out, Advisory{Slug: rec.Slug, Field: models.ColumnOfferURL, Message: msg})
		}
	}
	return out
}
