package wikipedia_api

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// htmlToText converts an extract returned as HTML into plain text. Tables,
// inline citations and edit-section links carry no readable prose and are
// dropped before stripping the remaining markup.
func htmlToText(raw string) string {
	if raw == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return normalizeWhitespace(html.UnescapeString(stripPolicy.Sanitize(raw)))
	}

	doc.Find("table, style, sup.reference, .mw-editsection").Remove()

	text, err := doc.Html()
	if err != nil {
		text = raw
	}

	return normalizeWhitespace(html.UnescapeString(stripPolicy.Sanitize(text)))
}

// firstParagraph returns the leading paragraph of plain text, used as the
// short extract shown in feed entries.
func firstParagraph(text string) string {
	if idx := strings.Index(text, "\n"); idx > 0 {
		return strings.TrimSpace(text[:idx])
	}
	return text
}

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
