package markdown

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Map is a pure function from an AST Node to an element tree, applied
// recursively. It never mutates its input and never shares Node data
// with the html.Node it returns.
func Map(n *Node) *html.Node {
	return mapNode(n)
}

func mapNode(n *Node) *html.Node {
	if n == nil {
		return nil
	}

	switch n.Type {
	case NodeDocument:
		div := elemAttr(atom.Div, []html.Attribute{attr("class", "markdown-content")})
		appendAll(div, mapChildren(n.Children))

		return div

	case NodeHeader:
		h := elem(headerAtom(n.Meta.HeaderLevel))
		appendAll(h, mapChildren(n.Children))

		return h

	case NodeBlockquote:
		bq := elem(atom.Blockquote)
		appendAll(bq, mapChildren(n.Children))

		return bq

	case NodeParagraph:
		p := elem(atom.P)
		appendAll(p, mapChildren(n.Children))

		return p

	case NodeCodeBlock:
		var codeAttrs []html.Attribute
		if n.Meta.CodeLanguage != "" {
			codeAttrs = []html.Attribute{attr("class", "language-"+n.Meta.CodeLanguage)}
		}
		code := elemAttr(atom.Code, codeAttrs, textNode(n.Value))
		pre := elem(atom.Pre, code)

		return pre

	case NodeInlineCode:
		return elem(atom.Code, textNode(n.Value))

	case NodeEmphasis:
		return mapEmphasis(n)

	case NodeStrikethrough:
		del := elem(atom.Del)
		appendAll(del, mapChildren(n.Children))

		return del

	case NodeText:
		return elem(atom.Span, textNode(n.Value))

	case NodeLineBreak:
		return voidElem(atom.Br)

	case NodeHorizontalRule:
		return voidElem(atom.Hr)

	case NodeLink:
		return mapLink(n)

	case NodeImage:
		return mapImage(n)

	case NodeList:
		tag := atom.Ul
		if n.Meta.ListType == ListOrdered {
			tag = atom.Ol
		}
		list := elem(tag)
		appendAll(list, mapChildren(n.Children))

		return list

	case NodeListItem:
		li := elem(atom.Li)
		appendAll(li, mapChildren(n.Children))

		return li

	case NodeTaskList:
		ul := elemAttr(atom.Ul, []html.Attribute{attr("class", "task-list")})
		appendAll(ul, mapChildren(n.Children))

		return ul

	case NodeTaskListItem:
		return mapTaskListItem(n)

	default:
		return elem(atom.Span, textNode(n.Value))
	}
}

func headerAtom(level int) atom.Atom {
	switch clampHeaderLevel(level) {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

func clampHeaderLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}

	return level
}

func mapEmphasis(n *Node) *html.Node {
	children := mapChildren(n.Children)

	switch n.Value {
	case "***":
		em := elem(atom.Em)
		appendAll(em, children)
		strong := elem(atom.Strong, em)

		return strong
	case "**":
		strong := elem(atom.Strong)
		appendAll(strong, children)

		return strong
	default:
		em := elem(atom.Em)
		appendAll(em, children)

		return em
	}
}

func mapLink(n *Node) *html.Node {
	attrs := []html.Attribute{attr("href", linkHref(n))}
	if n.Meta.LinkTitle != "" {
		attrs = append(attrs, attr("title", n.Meta.LinkTitle))
	}

	a := elemAttr(atom.A, attrs)
	appendAll(a, mapChildren(n.Children))

	return a
}

func linkHref(n *Node) string {
	if n.Meta.IsReference {
		return n.Meta.RefLabel
	}

	return n.Meta.LinkURL
}

func mapImage(n *Node) *html.Node {
	src := n.Meta.ImageSrc
	if n.Meta.IsReference {
		src = n.Meta.RefLabel
	}

	attrs := []html.Attribute{attr("src", src), attr("alt", n.Meta.ImageAlt)}
	if n.Meta.ImageTitle != "" {
		attrs = append(attrs, attr("title", n.Meta.ImageTitle))
	}

	return voidElem(atom.Img, attrs...)
}

func mapTaskListItem(n *Node) *html.Node {
	inputAttrs := []html.Attribute{attr("type", "checkbox"), attr("disabled", "")}
	if n.Meta.TaskChecked {
		inputAttrs = append(inputAttrs, attr("checked", ""))
	}
	input := voidElem(atom.Input, inputAttrs...)

	label := elem(atom.Label, input)
	appendAll(label, mapChildren(n.Children))

	li := elem(atom.Li, label)

	return li
}

func mapChildren(children []*Node) []*html.Node {
	out := getHTMLNodeSlice()
	for _, c := range children {
		if m := mapNode(c); m != nil {
			out = append(out, m)
		}
	}

	return out
}
