package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Normalize collapses every run of Unicode whitespace to a single space and
// trims both ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Elements whose text never renders.
var hiddenElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
}

// visibleText joins the trimmed text nodes under sel in document order with
// no separator, so "<b>big</b> news" becomes "bignews". Subtrees of
// hiddenElements are skipped.
func visibleText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		collectText(&b, n)
	}
	return b.String()
}

func collectText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(strings.TrimSpace(n.Data))
		return
	case html.ElementNode:
		if hiddenElements[n.DataAtom] {
			return
		}
	case html.CommentNode:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
