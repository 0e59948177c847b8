package page

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	refPairRe = regexp.MustCompile(`(?s)<ref[^>/]*>.*?</ref>`)
	refSelfRe = regexp.MustCompile(`<ref[^>]*/>`)
)

// StripMarkup removes HTML comments, <ref> citations and residual HTML
// tags from wikitext, keeping only visible text. Wiki template and link
// syntax is left in place.
func StripMarkup(text string) string {
	text = htmlCommentRe.ReplaceAllString(text, "")
	text = refSelfRe.ReplaceAllString(text, "")
	text = refPairRe.ReplaceAllString(text, "")

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return text
	}
	return visibleText(doc)
}

// visibleText collects text nodes, skipping script-like elements.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return strings.TrimSpace(buf.String())
}
