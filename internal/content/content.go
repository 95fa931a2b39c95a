// Package content extracts plain text from the rich-text (HTML) story body.
// The publish gate and word counts operate on plain text so markup-only
// bodies do not pass as content.
package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// PlainText strips HTML markup from a story body and collapses whitespace.
// Invalid markup degrades to whatever text goquery can recover; it never
// fails the caller.
func PlainText(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return strings.TrimSpace(body)
	}

	doc.Find("script, style").Remove()

	var sb strings.Builder
	for _, n := range doc.Selection.Nodes {
		appendText(&sb, n)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// appendText collects text nodes separated by a space so text in adjacent
// elements does not run together.
func appendText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(sb, c)
	}
}

// WordCount returns the number of whitespace-separated words in the plain
// text of an HTML body.
func WordCount(body string) int {
	text := PlainText(body)
	if text == "" {
		return 0
	}
	return len(strings.Fields(text))
}
