package markdown

// headerProcessor handles ATX headers ("# Title" .. "###### Title"). It
// requires line-start context so stray '#' characters mid-paragraph fall
// through to the text processor.
type headerProcessor struct{}

func (*headerProcessor) Priority() float64 { return 10 }

func (*headerProcessor) CanProcess(ch byte, ctx *Context) bool {
	return ch == '#' && ctx.IsAtLineStart
}

func (*headerProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer
	end := lineEnd(buf, start)
	hasNewline := end < len(buf)
	if !hasNewline && !ctx.IsEnd {
		return ProcessResult{PendingContent: buf[start:]}, true
	}
	line := trimTrailingCR(buf[start:end])

	level := 0
	for level < len(line) && level < 6 && line[level] == '#' {
		level++
	}

	newPos := end
	if newPos < len(buf) {
		newPos++ // consume the newline itself
	}

	return ProcessResult{
		Tokens:      []Segment{{Kind: KindHeader, Content: line, Metadata: Metadata{HeaderLevel: level}}},
		NewPosition: newPos,
		Consumed:    true,
	}, true
}
