package site

import (
	"encoding/xml"
	"fmt"
	"time"

	"answersite/internal/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// xmlURLSet is the root element of a standard sitemap XML file.
type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

// xmlURL is a single <url> entry inside a <urlset>.
type xmlURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// renderSitemap lists the root followed by every page in input order.
// lastmod comes from the joined last_seen_date so the output depends only on
// the input; the root carries the most recent of them.
func (g *Generator) renderSitemap(records []models.JoinedRecord) (string, error) {
	urls := make([]xmlURL, 0, len(records)+1)
	urls = append(urls, xmlURL{Loc: g.opts.BaseURL + "/"})

	var latest time.Time
	for i := range records {
		entry := xmlURL{Loc: g.pageURL(records[i].Slug)}
		if seen, ok := g.lastSeen(&records[i]); ok {
			entry.LastMod = seen.Format(models.DateLayout)
			if seen.After(latest) {
				latest = seen
			}
		}
		urls = append(urls, entry)
	}
	if !latest.IsZero() {
		urls[0].LastMod = latest.Format(models.DateLayout)
	}

	out, err := xml.MarshalIndent(xmlURLSet{XMLNS: sitemapNamespace, URLs: urls}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sitemap: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}

func (g *Generator) lastSeen(rec *models.JoinedRecord) (time.Time, bool) {
	if rec.Metric == nil || rec.Metric.LastSeenDate == "" {
		return time.Time{}, false
	}
	seen, err := rec.Metric.LastSeen()
	if err != nil {
		g.log.Warn("ignoring unparseable last_seen_date for sitemap", "slug", rec.Slug, "value", rec.Metric.LastSeenDate)
		return time.Time{}, false
	}
	return seen, true
}

// renderRobots allows every crawler and points at the sitemap.
func (g *Generator) renderRobots() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", g.opts.BaseURL)
}
