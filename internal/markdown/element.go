package markdown

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// elem builds an element html.Node for the given atom, with the supplied
// children appended via AppendChild so the result is a properly linked
// tree (FirstChild/NextSibling/Parent), not a slice.
func elem(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		n.AppendChild(c)
	}

	return n
}

// elemAttr is like elem but also sets attributes.
func elemAttr(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := elem(a, children...)
	n.Attr = attrs

	return n
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// voidElem builds a self-closing void element (br, hr, img, input) with
// no children, per HTML's void-element rules.
func voidElem(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

// appendAll appends each non-nil node to parent, in order, then returns
// the now-empty-contents children slice to its pool (see pool.go):
// AppendChild relinks each node into parent's own FirstChild/NextSibling
// chain, so the slice header that briefly held them is pure scratch.
func appendAll(parent *html.Node, children []*html.Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		parent.AppendChild(c)
	}
	putHTMLNodeSlice(children)
}
