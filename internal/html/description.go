package html

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParagraphFormatter renders descriptions as div.description with one p per
// blank-line separated paragraph. Blank descriptions render nothing.
type ParagraphFormatter struct{}

// Format implements DescriptionFormatter.
func (ParagraphFormatter) Format(description string) *html.Node {
	paragraphs := splitParagraphs(description)
	if len(paragraphs) == 0 {
		return nil
	}
	div := element(atom.Div, "description")
	for _, p := range paragraphs {
		div.AppendChild(withText(atom.P, "", p))
	}
	return div
}

// splitParagraphs trims every line and joins consecutive non-blank lines with
// a single space.
func splitParagraphs(s string) []string {
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}
