package markdown

// imageProcessor handles "![alt](src \"title\")" and "![alt][ref]" forms.
// It must outrank linkProcessor since both start scanning from '!'/'['
// respectively but an image's '!' would otherwise just fall through to
// text.
type imageProcessor struct{}

func (*imageProcessor) Priority() float64 { return 5 }

func (*imageProcessor) CanProcess(ch byte, ctx *Context) bool {
	if ch != '!' {
		return false
	}
	if ctx.Position+1 >= len(ctx.Buffer) {
		// Lone trailing '!' at a chunk boundary: give it a chance, Process
		// will decide pending-vs-literal once more input (or isEnd) tells
		// it whether a '[' was ever coming.
		return !ctx.IsEnd
	}
	if ctx.Buffer[ctx.Position+1] != '[' {
		return false
	}
	_, status := matchLinkLike(ctx.Buffer, ctx.Position+1)

	return status != linkLikeNoMatch
}

func (*imageProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer

	if start+1 >= len(buf) {
		return ProcessResult{PendingContent: buf[start:]}, true
	}

	m, status := matchLinkLike(buf, start+1)
	if status == linkLikeIncomplete {
		if !ctx.IsEnd {
			return ProcessResult{PendingContent: buf[start:]}, true
		}

		return ProcessResult{}, false
	}
	if status == linkLikeNoMatch {
		return ProcessResult{}, false
	}

	meta := Metadata{
		ImageAlt:    m.text,
		ImageSrc:    m.url,
		LinkTitle:   m.title,
		IsReference: m.isReference,
	}
	if m.isReference {
		meta.ImageSrc = m.refLabel
	}

	return ProcessResult{
		Tokens:      []Segment{{Kind: KindImage, Content: m.text, Metadata: meta}},
		NewPosition: m.end,
		Consumed:    true,
	}, true
}
