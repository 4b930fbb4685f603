package markdown

// linkProcessor handles "[text](url \"title\")" and "[text][ref]" forms.
type linkProcessor struct{}

func (*linkProcessor) Priority() float64 { return 4 }

func (*linkProcessor) CanProcess(ch byte, ctx *Context) bool {
	if ch != '[' {
		return false
	}
	_, status := matchLinkLike(ctx.Buffer, ctx.Position)

	return status != linkLikeNoMatch
}

func (*linkProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer

	m, status := matchLinkLike(buf, start)
	if status == linkLikeIncomplete {
		if !ctx.IsEnd {
			return ProcessResult{PendingContent: buf[start:]}, true
		}
		// Never completed by the time the stream ended: the leading '['
		// was never really a link; let a lower-priority processor (text)
		// claim it instead.
		return ProcessResult{}, false
	}
	if status == linkLikeNoMatch {
		return ProcessResult{}, false
	}

	meta := Metadata{
		LinkText:    m.text,
		LinkURL:     m.url,
		LinkTitle:   m.title,
		IsReference: m.isReference,
	}
	if m.isReference {
		meta.LinkURL = m.refLabel
	}

	return ProcessResult{
		Tokens:      []Segment{{Kind: KindLink, Content: m.text, Metadata: meta}},
		NewPosition: m.end,
		Consumed:    true,
	}, true
}
