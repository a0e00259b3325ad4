package jenkins

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlToText flattens a build description, which Jenkins stores as HTML.
func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return strings.TrimSpace(builder.String())
}

func extractText(node *html.Node, builder *strings.Builder) {
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}

	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune('\n')
	}
}
