package engine

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// BuildJobText synthesizes a single job-description text block from the
// structured fields of a posting. Empty fields are skipped; the result is
// what the matching engine tokenizes.
func BuildJobText(title, company, body, requirements string) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{title, company, body, requirements} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

var multiBlankRe = regexp.MustCompile(`\n{3,}`)

// JobTextFromHTML converts an HTML job posting into plain text suitable
// for keyword extraction. Primary path is html-to-markdown; on conversion
// failure it falls back to a tree walk that collects text nodes.
func JobTextFromHTML(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("jobtext: empty HTML input")
	}

	md, err := htmltomarkdown.ConvertString(src)
	if err == nil && strings.TrimSpace(md) != "" {
		return strings.TrimSpace(multiBlankRe.ReplaceAllString(md, "\n\n")), nil
	}

	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("jobtext: parse HTML: %w", err)
	}
	text := strings.TrimSpace(collectText(doc))
	if text == "" {
		return "", fmt.Errorf("jobtext: no text content in HTML")
	}
	return text, nil
}

// collectText walks the node tree gathering text content, skipping
// script/style subtrees.
func collectText(n *html.Node) string {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(collectText(c))
		if c.Type == html.ElementNode {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
