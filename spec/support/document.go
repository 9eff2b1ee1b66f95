package support

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed living documentation page.
type Document struct {
	root *html.Node
}

// ParseDocument parses an HTML page.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// FindByClass returns every element carrying class, in document order.
func (d *Document) FindByClass(class string) []*html.Node {
	return findAll(d.root, func(n *html.Node) bool { return HasClass(n, class) })
}

// FindByTag returns every element with the given tag name, in document order.
func (d *Document) FindByTag(tag string) []*html.Node {
	return FindTag(d.root, tag)
}

// FindTag returns every element below n with the given tag name.
func FindTag(n *html.Node, tag string) []*html.Node {
	return findAll(n, func(c *html.Node) bool { return c.Data == tag })
}

// Scenario returns the li.scenario whose h2 heading reads name.
func (d *Document) Scenario(name string) *html.Node {
	for _, li := range d.FindByClass("scenario") {
		for _, h := range FindTag(li, "h2") {
			if strings.TrimSpace(Text(h)) == name {
				return li
			}
		}
	}
	return nil
}

// Result returns the status of the first span.result below n, or "".
func Result(n *html.Node) string {
	spans := findAll(n, func(c *html.Node) bool { return HasClass(c, "result") })
	if len(spans) == 0 {
		return ""
	}
	for _, class := range classes(spans[0]) {
		if class != "result" {
			return class
		}
	}
	return ""
}

// HasClass reports whether n is an element carrying class.
func HasClass(n *html.Node, class string) bool {
	return slices.Contains(classes(n), class)
}

// Text returns the concatenated text below n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func classes(n *html.Node) []string {
	if n.Type != html.ElementNode {
		return nil
	}
	for _, a := range n.Attr {
		if a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			out = append(out, c)
		}
		out = append(out, findAll(c, match)...)
	}
	return out
}
