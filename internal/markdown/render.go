package markdown

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Renderer walks an element tree depth-first and serializes it to an
// HTML string, applying sanitization per its Options. It does not use
// golang.org/x/net/html's own Render: that applies its own escaping
// rules, where this package needs the specific dangerous-char entity set
// and URL-scheme gating described by its sanitization options.
type Renderer struct {
	Options Options
}

// NewRenderer returns a Renderer configured with opts.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{Options: opts}
}

// Render serializes root (and its subtree) to an HTML string.
func (r *Renderer) Render(root *html.Node) string {
	var sb strings.Builder
	r.renderNode(&sb, root)

	return sb.String()
}

func (r *Renderer) renderNode(sb *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}

	switch n.Type {
	case html.TextNode:
		sb.WriteString(encodeContent(n.Data, r.Options.SanitizeContent))

		return
	default:
		// Falls through to element handling below; the tree the mapper
		// produces contains only ElementNode and TextNode values.
	}

	isVoid := isVoidAtom(n.DataAtom)

	sb.WriteByte('<')
	sb.WriteString(n.Data)

	for _, a := range n.Attr {
		val := a.Val
		full := r.Options.SanitizeContent
		if a.Key == "href" || a.Key == "src" {
			val = r.resolveURL(val)
			// A URL already vetted by sanitizeURL gets only the minimal
			// entity set, so e.g. its "#" fallback stays a literal "#".
			full = full && !r.Options.SanitizeURL
		}

		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		if val != "" {
			sb.WriteString(`="`)
			sb.WriteString(encodeContent(val, full))
			sb.WriteByte('"')
		}
	}

	if isVoid {
		sb.WriteString(" />")

		return
	}

	sb.WriteByte('>')

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.renderNode(sb, c)
	}

	sb.WriteString("</")
	sb.WriteString(n.Data)
	sb.WriteByte('>')
}

func (r *Renderer) resolveURL(v string) string {
	if r.Options.SanitizeURL {
		return sanitizeURL(v)
	}
	if v == "" {
		return "#"
	}

	return v
}

func isVoidAtom(a atom.Atom) bool {
	switch a {
	case atom.Br, atom.Hr, atom.Img, atom.Input:
		return true
	default:
		return false
	}
}
