// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"answersite/internal/db"
	"answersite/internal/models"
)

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// WriteCSV writes a header line followed by rows, one comma-joined line each.
// Cells are written verbatim, so callers quote them when needed.
func WriteCSV(t *testing.T, dir, name string, header []string, rows ...[]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return WriteFile(t, dir, name, b.String())
}

// WriteKeywordsCSV writes a keywords.csv fixture with the canonical header.
func WriteKeywordsCSV(t *testing.T, dir string, rows ...[]string) string {
	t.Helper()
	return WriteCSV(t, dir, "keywords.csv", models.KeywordColumns, rows...)
}

// WriteMetricsCSV writes a metrics.csv fixture with the canonical header.
func WriteMetricsCSV(t *testing.T, dir string, rows ...[]string) string {
	t.Helper()
	return WriteCSV(t, dir, "metrics.csv", models.MetricColumns, rows...)
}

// Keyword builds a keyword fixture row with predictable text for slug.
func Keyword(slug string) []string {
	return []string{slug, "What is " + slug + "?", slug + " explained.", "https://offers.example.net/" + slug, "Get " + slug}
}

// TestDB connects to the database named by TEST_DATABASE_URL and runs
// migrations. The test is skipped when the variable is unset.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	database.Pool.Exec(ctx, "DELETE FROM keyword_metrics")

	cleanup := func() {
		database.Pool.Exec(ctx, "DELETE FROM keyword_metrics")
		database.Close()
	}

	return database, cleanup
}
