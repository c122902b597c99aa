package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// StripHTML removes markup from a text fragment and returns plain text.
// Block elements become line breaks so credit blocks keep their line
// structure; within a line, whitespace is collapsed. Credit blocks
// occasionally arrive as markup when a caller posts raw page snippets
// instead of a URL.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return stripHTMLFallback(s)
	}

	var buf strings.Builder
	extractText(doc, &buf)

	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if line = CollapseWhitespace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func extractText(n *html.Node, buf *strings.Builder) {
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "br", "li", "td", "tr":
			buf.WriteString("\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, buf)
	}
}

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

func stripHTMLFallback(s string) string {
	s = htmlTagRegex.ReplaceAllString(s, " ")
	return CollapseWhitespace(html.UnescapeString(s))
}
