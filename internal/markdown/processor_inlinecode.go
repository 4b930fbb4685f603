package markdown

import "strings"

// inlineCodeProcessor handles `code` and ``code with ` backtick`` spans.
// Unlike code blocks, the segment's Content retains the delimiting
// backticks; the builder and renderer pass them through to the rendered
// value verbatim.
type inlineCodeProcessor struct{}

func (*inlineCodeProcessor) Priority() float64 { return 3 }

func (*inlineCodeProcessor) CanProcess(ch byte, ctx *Context) bool {
	return ch == '`'
}

func (*inlineCodeProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer

	runLen := 0
	for i := start; i < len(buf) && buf[i] == '`'; i++ {
		runLen++
	}
	if runLen >= codeFenceLen {
		// A fence-length run belongs to codeBlockProcessor; decline.
		return ProcessResult{}, false
	}

	delim := strings.Repeat("`", runLen)
	closeIdx := strings.Index(buf[start+runLen:], delim)
	if closeIdx < 0 {
		if !ctx.IsEnd {
			return ProcessResult{PendingContent: buf[start:]}, true
		}
		// Unterminated at end of stream: degrade to literal text.
		return ProcessResult{
			Tokens:      []Segment{{Kind: KindText, Content: buf[start:]}},
			NewPosition: len(buf),
			Consumed:    true,
		}, true
	}

	end := start + runLen + closeIdx + runLen

	return ProcessResult{
		Tokens:      []Segment{{Kind: KindInlineCode, Content: buf[start:end]}},
		NewPosition: end,
		Consumed:    true,
	}, true
}
