// Package htmltext reduces raw HTML to the visible text that is worth
// storing and sending to the model.
package htmltext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const nonVisibleSelector = "script, style, head, title, meta"

// Extract parses markup and returns its visible text: each text node is
// trimmed and non-empty fragments are joined with single spaces, so text
// from adjacent elements never merges into one word. Non-visible tags and
// elements hidden with inline styles are dropped together with their
// subtrees. The result is empty when the markup carries no visible text.
func Extract(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("create document from reader: %w", err)
	}

	doc.Find(nonVisibleSelector).Remove()

	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		if isHiddenStyle(s.AttrOr("style", "")) {
			s.Remove()
		}
	})

	var fragments []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
				fragments = append(fragments, text)
			}
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range doc.Selection.Nodes {
		walk(n)
	}

	return strings.Join(fragments, " "), nil
}

func isHiddenStyle(style string) bool {
	style = strings.ToLower(strings.ReplaceAll(style, " ", ""))

	return strings.Contains(style, "display:none") ||
		strings.Contains(style, "visibility:hidden")
}
