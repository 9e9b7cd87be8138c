package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLStripper converts markup message bodies to plain text.
type HTMLStripper struct {
	tagRegex     *regexp.Regexp
	spaceRegex   *regexp.Regexp
	newlineRegex *regexp.Regexp
}

// NewHTMLStripper creates a new HTML stripper
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		tagRegex:     regexp.MustCompile(`<[^>]*>`),
		spaceRegex:   regexp.MustCompile(`[^\S\n]+`),
		newlineRegex: regexp.MustCompile(`\n{3,}`),
	}
}

// Strip converts HTML to clean plain text. Markup the parser cannot make
// sense of is stripped best-effort with a tag pattern instead. Plain-text
// input passes through with only whitespace normalization.
func (p *HTMLStripper) Strip(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return p.clean(p.tagRegex.ReplaceAllString(html, " "))
	}

	doc.Find("script, style, head, meta, link").Remove()

	// Keep block boundaries readable in the flattened text
	doc.Find("p, div, br, h1, h2, h3, h4, h5, h6, li, tr").Each(func(i int, s *goquery.Selection) {
		s.PrependHtml("\n")
	})

	return p.clean(doc.Text())
}

// clean collapses whitespace and drops empty lines.
func (p *HTMLStripper) clean(text string) string {
	text = p.spaceRegex.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	text = strings.Join(cleaned, "\n")

	text = p.newlineRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
