package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// pageText returns the visible text of a document with text segments
// joined by single spaces. Script, style and noscript contents are
// excluded.
func pageText(doc *goquery.Document) string {
	return nodesText(doc.Selection.Nodes)
}

// selectionText returns the visible text of a selection, joined like
// pageText.
func selectionText(sel *goquery.Selection) string {
	return nodesText(sel.Nodes)
}

func nodesText(nodes []*html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return b.String()
}
