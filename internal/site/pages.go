package site

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"answersite/internal/models"
)

const pageStyle = `body { font-family: system-ui, -apple-system, sans-serif; max-width: 720px; margin: 40px auto; padding: 0 16px; line-height: 1.5; }`

// baseHTML wraps body content in the shared page skeleton.
func baseHTML(title, description, canonical, style, body string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <meta name="description" content="%s" />
  <link rel="canonical" href="%s" />
  <style>
    %s
    %s
  </style>
</head>
<body>
%s
</body>
</html>
`,
		html.EscapeString(title),
		html.EscapeString(description),
		html.EscapeString(canonical),
		pageStyle,
		style,
		body,
	)
}

// renderPage renders the detail page for one answer.
func (g *Generator) renderPage(rec *models.JoinedRecord) string {
	style := `.disclosure { background: #fff4d1; border: 1px solid #f2d68a; padding: 12px; border-radius: 6px; }
    .cta { display: inline-block; background: #1a56db; color: #fff; padding: 12px 18px; border-radius: 6px; text-decoration: none; font-weight: 600; }`

	body := fmt.Sprintf(`  <p class="disclosure"><strong>Disclosure:</strong> This page may contain affiliate links. If you choose to purchase, we may earn a commission at no extra cost to you.</p>
  <h1>%s</h1>
  <p>%s</p>
  <p>
    <a class="cta" href="%s" rel="sponsored nofollow">%s</a>
  </p>
  <p><a href="../">%s</a></p>`,
		html.EscapeString(rec.Question),
		html.EscapeString(rec.ShortAnswer),
		html.EscapeString(rec.OfferURL),
		html.EscapeString(rec.CTAText),
		html.EscapeString("← "+g.opts.Title),
	)

	return baseHTML(rec.Question, rec.ShortAnswer, g.pageURL(rec.Slug), style, body)
}

// renderIndex renders the listing of every answer in input order.
func (g *Generator) renderIndex(records []models.JoinedRecord) string {
	style := `input { width: 100%; padding: 10px; font-size: 16px; margin-bottom: 16px; }
    .popular { background: #f3f4f6; padding: 12px 16px; border-radius: 6px; }`

	var b strings.Builder
	fmt.Fprintf(&b, "  <h1>%s</h1>\n", html.EscapeString(g.opts.Title))
	fmt.Fprintf(&b, "  <p>%s</p>\n", html.EscapeString(g.opts.Tagline))

	if popular := rankPopular(records, g.opts.PopularCount); len(popular) > 0 {
		b.WriteString("  <section class=\"popular\">\n    <h2>Popular answers</h2>\n    <ol id=\"popular\">\n")
		for _, rec := range popular {
			fmt.Fprintf(&b, "      %s\n", listItem(rec))
		}
		b.WriteString("    </ol>\n  </section>\n")
	}

	b.WriteString("  <input id=\"search\" type=\"search\" placeholder=\"Search questions...\" />\n")
	b.WriteString("  <ul id=\"results\">\n")
	for i := range records {
		fmt.Fprintf(&b, "    %s\n", listItem(&records[i]))
	}
	b.WriteString("  </ul>\n")
	b.WriteString(searchScript)

	return baseHTML(g.opts.Title, g.opts.Tagline, g.opts.BaseURL+"/", style, strings.TrimRight(b.String(), "\n"))
}

func listItem(rec *models.JoinedRecord) string {
	return fmt.Sprintf(`<li><a href="%s/">%s</a></li>`, html.EscapeString(rec.Slug), html.EscapeString(rec.Question))
}

const searchScript = `  <script>
    const searchInput = document.getElementById('search');
    const results = document.getElementById('results');
    const items = Array.from(results.querySelectorAll('li'));

    searchInput.addEventListener('input', () => {
      const query = searchInput.value.toLowerCase().trim();
      items.forEach((item) => {
        const text = item.textContent.toLowerCase();
        item.style.display = text.includes(query) ? '' : 'none';
      });
    });
  </script>
`

// rankPopular returns up to limit records with clicks, most clicked first.
// Ties keep input order.
func rankPopular(records []models.JoinedRecord, limit int) []*models.JoinedRecord {
	if limit <= 0 {
		return nil
	}

	var ranked []*models.JoinedRecord
	for i := range records {
		if records[i].Clicks() > 0 {
			ranked = append(ranked, &records[i])
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Clicks() > ranked[j].Clicks()
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
