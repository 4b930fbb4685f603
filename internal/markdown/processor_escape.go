package markdown

// escapeProcessor handles backslash escapes. It has the highest priority
// so that e.g. "\*" never reaches the emphasis processor.
type escapeProcessor struct{}

func (*escapeProcessor) Priority() float64 { return 15 }

func (*escapeProcessor) CanProcess(ch byte, _ *Context) bool {
	return ch == '\\'
}

func (*escapeProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer
	if start+1 >= len(buf) {
		// Trailing lone backslash: nothing to escape, not end of stream yet.
		if !ctx.IsEnd {
			return ProcessResult{PendingContent: buf[start:]}, true
		}
		// At true end of stream, emit the backslash literally.
		return ProcessResult{
			Tokens:      []Segment{{Kind: KindText, Content: "\\"}},
			NewPosition: start + 1,
			Consumed:    true,
		}, true
	}

	next := buf[start+1]
	if !isEscapable(next) {
		// Not an escapable character: the backslash is emitted literally
		// and scanning resumes at the next character, leaving it for
		// whichever processor wants it.
		return ProcessResult{
			Tokens:      []Segment{{Kind: KindText, Content: "\\"}},
			NewPosition: start + 1,
			Consumed:    true,
		}, true
	}

	return ProcessResult{
		Tokens:      []Segment{{Kind: KindText, Content: string(next)}},
		NewPosition: start + 2,
		Consumed:    true,
	}, true
}
