package markdown

import "testing"

func build(t *testing.T, text string) *Node {
	t.Helper()
	segs := NewSegmenter().ExtractSegments(text, true)

	return NewBuilder().Build(segs)
}

func TestBuilderHeaderHasSingleTextChild(t *testing.T) {
	doc := build(t, "# Hello\n")
	if len(doc.Children) != 1 {
		t.Fatalf("got %d blocks: %+v", len(doc.Children), doc.Children)
	}

	h := doc.Children[0]
	if h.Type != NodeHeader || h.Meta.HeaderLevel != 1 {
		t.Fatalf("header = %+v", h)
	}
	if len(h.Children) != 1 || h.Children[0].Type != NodeText || h.Children[0].Value != "Hello" {
		t.Fatalf("header children = %+v", h.Children)
	}
}

func TestBuilderEmphasisDelimiterForm(t *testing.T) {
	doc := build(t, "**a** *b*")
	if len(doc.Children) != 1 || doc.Children[0].Type != NodeParagraph {
		t.Fatalf("got %+v", doc.Children)
	}

	p := doc.Children[0]
	if len(p.Children) < 3 {
		t.Fatalf("paragraph children = %+v", p.Children)
	}
	if p.Children[0].Type != NodeEmphasis || p.Children[0].Value != "**" {
		t.Fatalf("first child = %+v", p.Children[0])
	}
	if p.Children[len(p.Children)-1].Type != NodeEmphasis || p.Children[len(p.Children)-1].Value != "*" {
		t.Fatalf("last child = %+v", p.Children[len(p.Children)-1])
	}
}

func TestBuilderInlineCodeRetainsBackticks(t *testing.T) {
	doc := build(t, "`x`")
	p := doc.Children[0]
	if p.Children[0].Type != NodeInlineCode || p.Children[0].Value != "`x`" {
		t.Fatalf("got %+v", p.Children[0])
	}
}

func TestBuilderCodeBlockExtractsLanguage(t *testing.T) {
	doc := build(t, "```js\nlet a=1\n```")
	if len(doc.Children) != 1 {
		t.Fatalf("got %+v", doc.Children)
	}

	cb := doc.Children[0]
	if cb.Type != NodeCodeBlock || cb.Meta.CodeLanguage != "js" || cb.Value != "let a=1" {
		t.Fatalf("code block = %+v", cb)
	}
}

func TestBuilderTaskListUnwrapsParagraph(t *testing.T) {
	doc := build(t, "- [x] done\n- [ ] todo\n")
	if len(doc.Children) != 1 || doc.Children[0].Type != NodeTaskList {
		t.Fatalf("got %+v", doc.Children)
	}

	list := doc.Children[0]
	if len(list.Children) != 2 {
		t.Fatalf("items = %+v", list.Children)
	}

	first := list.Children[0]
	if first.Type != NodeTaskListItem || !first.Meta.TaskChecked {
		t.Fatalf("first item = %+v", first)
	}
	// Unwrapped: no PARAGRAPH wrapper, direct TEXT child.
	if len(first.Children) != 1 || first.Children[0].Type != NodeText {
		t.Fatalf("first item children = %+v", first.Children)
	}
}

func TestBuilderListGroupsByType(t *testing.T) {
	doc := build(t, "- one\n1. two\n")
	if len(doc.Children) != 2 {
		t.Fatalf("expected two distinct lists, got %+v", doc.Children)
	}
	if doc.Children[0].Type != NodeList || doc.Children[1].Type != NodeList {
		t.Fatalf("got %+v", doc.Children)
	}
	if doc.Children[0].Meta.ListType != ListUnordered {
		t.Fatalf("first list type = %v", doc.Children[0].Meta.ListType)
	}
	if doc.Children[1].Meta.ListType != ListOrdered {
		t.Fatalf("second list type = %v", doc.Children[1].Meta.ListType)
	}
}

func TestBuilderBlockquoteRecursesIntoNestedParagraph(t *testing.T) {
	doc := build(t, "> quoted text\n")
	bq := doc.Children[0]
	if bq.Type != NodeBlockquote {
		t.Fatalf("got %+v", bq)
	}
	if len(bq.Children) != 1 || bq.Children[0].Type != NodeParagraph {
		t.Fatalf("blockquote children = %+v", bq.Children)
	}
}

func TestBuilderLinkIsLeafWithRawText(t *testing.T) {
	doc := build(t, "[go](https://go.dev)")
	p := doc.Children[0]
	link := p.Children[0]
	if link.Type != NodeLink || link.Meta.LinkURL != "https://go.dev" {
		t.Fatalf("got %+v", link)
	}
	if len(link.Children) != 1 || link.Children[0].Type != NodeText || link.Children[0].Value != "go" {
		t.Fatalf("link children = %+v", link.Children)
	}
}

func TestBuilderDepthCapFlattens(t *testing.T) {
	text := ""
	for i := 0; i < 50; i++ {
		text += "> "
	}
	text += "deep\n"

	b := NewBuilder()
	b.MaxDepth = 3
	segs := NewSegmenter().ExtractSegments(text, true)
	doc := b.Build(segs)

	var maxDepth func(n *Node, d int) int
	maxDepth = func(n *Node, d int) int {
		best := d
		for _, c := range n.Children {
			if v := maxDepth(c, d+1); v > best {
				best = v
			}
		}

		return best
	}

	if got := maxDepth(doc, 0); got > b.MaxDepth+2 {
		t.Fatalf("tree depth %d exceeds bound %d", got, b.MaxDepth+2)
	}
}
