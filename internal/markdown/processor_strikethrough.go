package markdown

import "strings"

// strikethroughProcessor handles "~~struck~~" spans.
type strikethroughProcessor struct{}

func (*strikethroughProcessor) Priority() float64 { return 2.5 }

func (*strikethroughProcessor) CanProcess(ch byte, ctx *Context) bool {
	return ch == '~' && strings.HasPrefix(ctx.Buffer[ctx.Position:], "~~")
}

func (*strikethroughProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer

	closeIdx := strings.Index(buf[start+2:], "~~")
	if closeIdx < 0 {
		if !ctx.IsEnd {
			return ProcessResult{PendingContent: buf[start:]}, true
		}
		// No closing delimiter ever arrives: this was never strikethrough,
		// re-emit the two tildes as literal text.
		return ProcessResult{
			Tokens:      []Segment{{Kind: KindText, Content: "~~"}},
			NewPosition: start + 2,
			Consumed:    true,
		}, true
	}

	inner := buf[start+2 : start+2+closeIdx]
	end := start + 2 + closeIdx + 2

	return ProcessResult{
		Tokens:      []Segment{{Kind: KindStrikethrough, Content: inner}},
		NewPosition: end,
		Consumed:    true,
	}, true
}
