package markdown

import "strings"

// DefaultMaxDepth bounds how deeply nested container constructs
// (blockquotes inside blockquotes, list item bodies, strikethrough
// re-tokenization)
// the builder will recurse before giving up and flattening the remainder
// to a single TEXT node.
const DefaultMaxDepth = 10

// Builder assembles a Document AST from a flat Segment stream via
// recursive descent: it groups adjacent segments into block nodes, then
// recursively re-tokenizes and re-descends into each block's inner
// content (blockquote bodies, list item content) to build their
// children. Depth is counted once per entry into the builder, whether
// from a container or from re-tokenization.
type Builder struct {
	MaxDepth int
}

// NewBuilder returns a Builder configured with DefaultMaxDepth.
func NewBuilder() *Builder {
	return &Builder{MaxDepth: DefaultMaxDepth}
}

// Build assembles a DOCUMENT node from segments.
func (b *Builder) Build(segments []Segment) *Node {
	doc := newNode(NodeDocument)
	doc.Children = b.buildBlocks(segments, 0)

	return doc
}

func (b *Builder) maxDepth() int {
	if b.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return b.MaxDepth
}

// buildBlocks groups a flat segment slice into block-level nodes.
func (b *Builder) buildBlocks(segments []Segment, depth int) []*Node {
	if depth > b.maxDepth() {
		return []*Node{b.flatten(segments)}
	}

	var nodes []*Node
	i := 0

	for i < len(segments) {
		seg := segments[i]

		switch seg.Kind {
		case KindParagraphBreak:
			i++

			continue
		case KindHeader:
			nodes = append(nodes, b.buildHeader(seg))
			i++
		case KindBlockquote:
			nodes = append(nodes, b.buildBlockquote(seg, depth))
			i++
		case KindCodeBlock:
			nodes = append(nodes, b.buildCodeBlock(seg))
			i++
		case KindHorizontalRule:
			nodes = append(nodes, b.buildHorizontalRule(seg))
			i++
		case KindListItem, KindTaskListItem:
			listNode, next := b.buildList(segments, i, depth)
			nodes = append(nodes, listNode)
			i = next
		case KindUnknown:
			if strings.TrimSpace(seg.Content) != "" {
				nodes = append(nodes, &Node{Type: NodeText, Value: seg.Content})
			}
			i++
		default:
			para, next := b.buildParagraph(segments, i, depth)
			if para != nil {
				nodes = append(nodes, para)
			}
			i = next
		}
	}

	return nodes
}

// buildHeader parses the '#' run (capped at 6) as the level; the child is
// a single TEXT leaf holding the stripped title, unparsed.
func (b *Builder) buildHeader(seg Segment) *Node {
	line := seg.Content
	level := 0
	for level < len(line) && level < 6 && line[level] == '#' {
		level++
	}
	title := strings.TrimPrefix(line[level:], " ")
	title = strings.TrimSpace(title)

	n := newNode(NodeHeader)
	n.Meta.HeaderLevel = level
	n.Children = []*Node{{Type: NodeText, Value: title}}

	return n
}

// buildBlockquote re-tokenizes the absorbed inner text through a fresh
// Segmenter and recurses into buildBlocks; its children become the
// blockquote's children.
func (b *Builder) buildBlockquote(seg Segment, depth int) *Node {
	n := newNode(NodeBlockquote)
	n.Meta.BlockquoteLevel = seg.Metadata.BlockquoteLevel

	if depth >= b.maxDepth() {
		n.Children = []*Node{{Type: NodeText, Value: seg.Content}}

		return n
	}

	inner := NewSegmenter().ExtractSegments(seg.Content, true)
	n.Children = b.buildBlocks(inner, depth+1)

	return n
}

func (b *Builder) buildCodeBlock(seg Segment) *Node {
	lang, body := parseCodeBlock(seg.Content)

	n := newNode(NodeCodeBlock)
	n.Meta.CodeLanguage = lang
	n.Value = body

	return n
}

// parseCodeBlock strips the outer fences and splits the remainder on its
// first newline: the first line (if non-empty once trimmed) is the
// language tag, the rest (trimmed) is the body.
func parseCodeBlock(content string) (lang, body string) {
	fenceLen := 0
	for fenceLen < len(content) && content[fenceLen] == '`' {
		fenceLen++
	}
	rest := content[fenceLen:]

	closing := strings.Repeat("`", fenceLen)
	if fenceLen > 0 && strings.HasSuffix(rest, closing) {
		rest = rest[:len(rest)-fenceLen]
	}

	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return strings.TrimSpace(rest), ""
	}

	lang = strings.TrimSpace(rest[:nl])
	body = strings.TrimSpace(rest[nl+1:])

	return lang, body
}

func (b *Builder) buildHorizontalRule(seg Segment) *Node {
	n := newNode(NodeHorizontalRule)
	n.Meta.HRMarker = seg.Metadata.HRMarker

	return n
}

// buildList groups a contiguous run of LIST_ITEM/TASK_LIST_ITEM segments
// of the same family into one LIST or TASK_LIST node, returning the
// index just past the consumed run.
func (b *Builder) buildList(segments []Segment, start, depth int) (*Node, int) {
	first := segments[start]
	isTask := first.Kind == KindTaskListItem

	listType := NodeList
	if isTask {
		listType = NodeTaskList
	}

	n := newNode(listType)
	n.Meta.ListType = first.Metadata.ListType

	i := start
	for i < len(segments) {
		seg := segments[i]
		if seg.Kind != KindListItem && seg.Kind != KindTaskListItem {
			break
		}
		if (seg.Kind == KindTaskListItem) != isTask {
			break
		}
		if seg.Metadata.ListType != first.Metadata.ListType {
			break
		}

		n.addChild(b.buildListItem(seg, depth, isTask))
		i++
	}

	return n, i
}

// buildListItem recurses into a nested build of the item's content; for
// task items a lone wrapping PARAGRAPH is unwrapped so inline content is
// flattened directly into the item.
func (b *Builder) buildListItem(seg Segment, depth int, isTask bool) *Node {
	itemType := NodeListItem
	if isTask {
		itemType = NodeTaskListItem
	}

	n := newNode(itemType)
	n.Meta.ListOrdinal = seg.Metadata.ListOrdinal
	n.Meta.TaskChecked = seg.Metadata.TaskChecked

	if depth >= b.maxDepth() {
		n.Children = []*Node{{Type: NodeText, Value: seg.Metadata.ItemContent}}

		return n
	}

	inner := NewSegmenter().ExtractSegments(seg.Metadata.ItemContent, true)
	children := b.buildBlocks(inner, depth+1)

	if isTask && len(children) == 1 && children[0].Type == NodeParagraph {
		children = children[0].Children
	}

	n.Children = children

	return n
}

// buildParagraph consumes a run of inline-bearing segments up to the next
// block boundary (a PARAGRAPH_BREAK or a segment kind that starts a new
// block), wrapping them in a PARAGRAPH node. An empty collection yields
// no paragraph.
func (b *Builder) buildParagraph(segments []Segment, start, depth int) (*Node, int) {
	i := start
	inline := getSegmentSlice()
	defer func() { putSegmentSlice(inline) }()

	for i < len(segments) {
		seg := segments[i]
		if isBlockStarting(seg.Kind) {
			break
		}
		if seg.Kind == KindParagraphBreak {
			i++

			break
		}
		inline = append(inline, seg)
		i++
	}

	if len(inline) == 0 {
		return nil, i
	}

	n := newNode(NodeParagraph)
	n.Children = b.buildInlineSegments(inline, depth+1)

	return n, i
}

func isBlockStarting(k Kind) bool {
	switch k {
	case KindHeader, KindBlockquote, KindCodeBlock, KindHorizontalRule,
		KindListItem, KindTaskListItem:
		return true
	default:
		return false
	}
}

// buildInlineSegments converts an inline segment run into AST nodes. It
// does not re-tokenize; each segment maps to exactly one node (LINK and
// IMAGE become leaves built straight from metadata, per spec, with no
// re-tokenization of their text).
func (b *Builder) buildInlineSegments(segs []Segment, depth int) []*Node {
	var nodes []*Node

	for _, seg := range segs {
		switch seg.Kind {
		case KindText:
			nodes = append(nodes, &Node{Type: NodeText, Value: seg.Content})
		case KindLineBreak:
			nodes = append(nodes, newNode(NodeLineBreak))
		case KindParagraphBreak:
			nodes = append(nodes, &Node{Type: NodeText, Value: "\n\n"})
		case KindInlineCode:
			nodes = append(nodes, &Node{Type: NodeInlineCode, Value: seg.Content})
		case KindEmphasis:
			nodes = append(nodes, buildEmphasis(seg))
		case KindStrikethrough:
			nodes = append(nodes, b.buildStrikethrough(seg, depth))
		case KindLink:
			nodes = append(nodes, buildLink(seg))
		case KindImage:
			nodes = append(nodes, buildImage(seg))
		default:
			nodes = append(nodes, &Node{Type: NodeText, Value: seg.Content})
		}
	}

	return nodes
}

// buildEmphasis strips the delimiter pair and splits the inner content on
// lines: children are TEXT leaves interleaved with LINEBREAK nodes when
// the content spans multiple lines. The delimiter form is recorded on
// Value so the mapper can pick strong/em/nested form.
func buildEmphasis(seg Segment) *Node {
	content := seg.Content
	if len(content) == 0 {
		return &Node{Type: NodeText, Value: ""}
	}

	marker := content[0]
	runLen := 0
	for runLen < len(content) && content[runLen] == marker {
		runLen++
	}
	inner := content[runLen : len(content)-runLen]

	n := newNode(NodeEmphasis)
	n.Value = strings.Repeat(string(marker), runLen)

	lines := strings.Split(inner, "\n")
	if len(lines) == 1 {
		n.Children = []*Node{{Type: NodeText, Value: inner}}

		return n
	}

	for i, line := range lines {
		if i > 0 {
			n.addChild(newNode(NodeLineBreak))
		}
		n.addChild(&Node{Type: NodeText, Value: line})
	}

	return n
}

// buildStrikethrough only recurses into the struck text when doing so
// could matter: near the depth cap, or when the text carries no
// block-level markers, it degrades to a single TEXT child instead.
func (b *Builder) buildStrikethrough(seg Segment, depth int) *Node {
	n := newNode(NodeStrikethrough)

	if depth >= b.maxDepth()-1 || !containsBlockMarker(seg.Content) {
		n.Children = []*Node{{Type: NodeText, Value: seg.Content}}

		return n
	}

	inner := NewSegmenter().ExtractSegments(seg.Content, true)
	children := b.buildBlocks(inner, depth+1)

	if len(children) == 1 && children[0].Type == NodeParagraph {
		children = children[0].Children
	}

	n.Children = children

	return n
}

// containsBlockMarker reports whether s has any line that looks like it
// opens a block-level construct (list item, header, fenced code,
// blockquote, or thematic break).
func containsBlockMarker(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		switch trimmed[0] {
		case '#', '>':
			return true
		case '`':
			if strings.HasPrefix(trimmed, "```") {
				return true
			}
		}
		if _, ok := matchListMarker(line, 0); ok {
			return true
		}
		if _, status := matchRuleLine(line, 0, true); status == ruleComplete {
			return true
		}
	}

	return false
}

func buildLink(seg Segment) *Node {
	n := newNode(NodeLink)
	n.Meta.IsReference = seg.Metadata.IsReference
	n.Meta.LinkTitle = seg.Metadata.LinkTitle
	if seg.Metadata.IsReference {
		n.Meta.RefLabel = seg.Metadata.LinkURL
	} else {
		n.Meta.LinkURL = seg.Metadata.LinkURL
	}
	n.Children = []*Node{{Type: NodeText, Value: seg.Metadata.LinkText}}

	return n
}

func buildImage(seg Segment) *Node {
	n := newNode(NodeImage)
	n.Meta.ImageAlt = seg.Metadata.ImageAlt
	n.Meta.ImageTitle = seg.Metadata.LinkTitle
	n.Meta.IsReference = seg.Metadata.IsReference
	if seg.Metadata.IsReference {
		n.Meta.RefLabel = seg.Metadata.ImageSrc
	} else {
		n.Meta.ImageSrc = seg.Metadata.ImageSrc
	}

	return n
}

// flatten collapses a segment run whose nesting exceeded MaxDepth into a
// single TEXT node, concatenating each segment's raw content.
func (b *Builder) flatten(segments []Segment) *Node {
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(seg.Content)
	}

	return &Node{Type: NodeText, Value: sb.String()}
}
