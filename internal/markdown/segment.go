// Package markdown implements the markdown-to-HTML pipeline: a
// priority-dispatched segmenter, a recursive-descent document builder, a
// pure AST-to-element-tree mapper, and a sanitizing renderer.
package markdown

// Kind classifies a Segment emitted by the Segmenter.
type Kind uint8

const (
	// KindText is a run of plain text.
	KindText Kind = iota
	// KindHeader is an ATX header line ("# Title").
	KindHeader
	// KindBlockquote is a run of one or more quoted lines.
	KindBlockquote
	// KindCodeBlock is a fenced code block, delimiters included.
	KindCodeBlock
	// KindInlineCode is a code span delimited by one or two backticks.
	KindInlineCode
	// KindEmphasis is a *, **, or *** delimited run.
	KindEmphasis
	// KindStrikethrough is a ~~-delimited run.
	KindStrikethrough
	// KindLink is an inline or reference-style link.
	KindLink
	// KindImage is an inline or reference-style image.
	KindImage
	// KindListItem is one unordered or ordered list item line.
	KindListItem
	// KindTaskListItem is one task-list item line ("- [ ] ..." / "- [x] ...").
	KindTaskListItem
	// KindHorizontalRule is a thematic break line.
	KindHorizontalRule
	// KindLineBreak is a hard line break (two trailing spaces + newline).
	KindLineBreak
	// KindParagraphBreak is a blank line separating paragraphs.
	KindParagraphBreak
	// KindUnknown is content no processor claimed.
	KindUnknown
)

// String returns a human-readable name for the Kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "TEXT"
	case KindHeader:
		return "HEADER"
	case KindBlockquote:
		return "BLOCKQUOTE"
	case KindCodeBlock:
		return "CODE_BLOCK"
	case KindInlineCode:
		return "INLINE_CODE"
	case KindEmphasis:
		return "EMPHASIS"
	case KindStrikethrough:
		return "STRIKETHROUGH"
	case KindLink:
		return "LINK"
	case KindImage:
		return "IMAGE"
	case KindListItem:
		return "LIST_ITEM"
	case KindTaskListItem:
		return "TASK_LIST_ITEM"
	case KindHorizontalRule:
		return "HORIZONTAL_RULE"
	case KindLineBreak:
		return "LINE_BREAK"
	case KindParagraphBreak:
		return "PARAGRAPH_BREAK"
	default:
		return "UNKNOWN"
	}
}

// ListType classifies the marker family of a list-bearing segment.
type ListType uint8

const (
	// ListUnordered is a "-"/"*" bulleted item.
	ListUnordered ListType = iota
	// ListOrdered is a "1." numbered item.
	ListOrdered
	// ListTask is a "- [ ]"/"- [x]" checkbox item.
	ListTask
)

// Metadata carries the kind-specific fields a Segment needs. Only the
// fields relevant to the segment's Kind are populated; the rest are left
// at their zero value. This mirrors the teacher's NodeBuilder, which
// likewise keeps all type-specific fields on one struct rather than
// a per-kind type, because segments flow through one flat channel.
type Metadata struct {
	// HeaderLevel is the "#" run length (1-6) for KindHeader.
	HeaderLevel int

	// BlockquoteLevel is the leading ">" run length (capped at 6) for
	// KindBlockquote.
	BlockquoteLevel int

	// ListMarker is the literal marker text ("-", "*", "12.") for
	// KindListItem / KindTaskListItem.
	ListMarker string
	// ListOrdinal is the parsed number for an ordered list item, else 0.
	ListOrdinal int
	// ListIndent is the item's indent level (4 spaces or 1 tab == 1 level).
	ListIndent int
	// ListType classifies the item's marker family.
	ListType ListType
	// TaskChecked is true when a task item's checkbox is "[x]"/"[X]".
	TaskChecked bool
	// ItemContent is the list item's inline content, with the marker and
	// any checkbox syntax stripped, ready for nested re-tokenization.
	ItemContent string

	// LinkText / LinkURL / LinkTitle / IsReference describe KindLink.
	LinkText    string
	LinkURL     string
	LinkTitle   string
	IsReference bool

	// ImageAlt / ImageSrc describe KindImage (an image's title and
	// IsReference are carried in the LinkTitle and IsReference fields above).
	ImageAlt string
	ImageSrc string

	// HRMarker is the rule character ('-', '*', or '_') for
	// KindHorizontalRule.
	HRMarker byte

	// LineBreakSpaces is the count of trailing spaces that produced a
	// KindLineBreak.
	LineBreakSpaces int
}

// Segment is a single flat token produced by the Segmenter. For most kinds
// Content is the exact source slice, delimiters included. It is not for
// these: a blockquote carries its unwrapped inner text, a list item its
// text after the marker, a strikethrough its text between the "~~" pairs,
// and a link or image only its bracketed text (the rest is in Metadata).
type Segment struct {
	Kind     Kind
	Content  string
	Metadata Metadata
}
