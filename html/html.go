package html

import (
	"io"
	"strings"

	"github.com/corbalt/threadtree"
	"golang.org/x/net/html"
)

// InnerText collects the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", threadtree.ErrIllegalArguments
	}
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String(), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// TextFromHTML extracts the pure text of an HTML fragment. It does no
// interpretation of layout and styling.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	return sb.String(), nil
}

// CommentText extracts the plain text of a comment's body. Remote sources
// deliver bodies as HTML fragments; a body that fails to parse is returned
// verbatim.
func CommentText(c threadtree.Comment) string {
	if !strings.ContainsRune(c.Body, '<') {
		return c.Body
	}
	text, err := TextFromHTML(strings.NewReader(c.Body))
	if err != nil {
		tracer().Errorf("comment %q: cannot parse body as HTML: %v", c.ID, err)
		return c.Body
	}
	return text
}
