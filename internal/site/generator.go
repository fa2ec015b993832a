// Package site renders the static answer site: an index page, one page per
// slug, a sitemap and a robots file.
package site

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"answersite/internal/loader"
	"answersite/internal/models"
	"answersite/internal/output"
)

// Output file names.
const (
	IndexFile   = "index.html"
	SitemapFile = "sitemap.xml"
	RobotsFile  = "robots.txt"
)

// Options configures rendering.
type Options struct {
	BaseURL      string
	Title        string
	Tagline      string
	PopularCount int
	Logger       *slog.Logger
}

// Generator writes the site for a joined dataset.
type Generator struct {
	opts Options
	log  *slog.Logger
}

// Result summarizes a build.
type Result struct {
	Pages int
	Files []string
}

// New creates a generator. Trailing slashes are removed from the base URL.
func New(opts Options) *Generator {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.Title == "" {
		opts.Title = "Answer Library"
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Generator{opts: opts, log: log}
}

// Build renders every file under outDir, creating directories as needed and
// overwriting existing files. Slugs are used as path segments unmodified.
func (g *Generator) Build(outDir string, records []models.JoinedRecord) (Result, error) {
	var res Result

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, &loader.IOError{Op: "mkdir", Path: outDir, Err: err}
	}

	for i := range records {
		rec := &records[i]
		path := filepath.Join(outDir, rec.Slug, IndexFile)
		if err := output.WriteFile(path, g.renderPage(rec)); err != nil {
			return res, err
		}
		res.Pages++
		res.Files = append(res.Files, path)
		g.log.Debug("wrote page", "slug", rec.Slug, "path", path)
	}

	sitemap, err := g.renderSitemap(records)
	if err != nil {
		return res, err
	}

	files := []struct {
		name    string
		content string
	}{
		{IndexFile, g.renderIndex(records)},
		{SitemapFile, sitemap},
		{RobotsFile, g.renderRobots()},
	}
	for _, f := range files {
		path := filepath.Join(outDir, f.name)
		if err := output.WriteFile(path, f.content); err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)
	}

	return res, nil
}

// pageURL returns the absolute URL of a detail page.
func (g *Generator) pageURL(slug string) string {
	return g.opts.BaseURL + "/" + slug + "/"
}
