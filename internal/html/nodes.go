// Package html renders the feature model into an XHTML node tree.
package html

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// element creates an element node with an optional class attribute and
// appends the non-nil children in order.
func element(a atom.Atom, class string, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	appendChildren(n, children...)
	return n
}

// text creates a text node.
func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// withText creates an element holding a single text node.
func withText(a atom.Atom, class, s string) *html.Node {
	return element(a, class, text(s))
}

func appendChildren(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
