package markdown

import "strings"

const codeFenceLen = 3

// codeBlockProcessor handles fenced code blocks delimited by ``` (or more
// backticks). It must outrank inlineCodeProcessor so a fence is never
// mistaken for a run of single-backtick inline code spans.
type codeBlockProcessor struct{}

func (*codeBlockProcessor) Priority() float64 { return 8 }

func (*codeBlockProcessor) CanProcess(ch byte, ctx *Context) bool {
	if ch != '`' {
		return false
	}

	return strings.HasPrefix(ctx.Buffer[ctx.Position:], "```")
}

func (*codeBlockProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer

	fenceLen := 0
	for i := start; i < len(buf) && buf[i] == '`'; i++ {
		fenceLen++
	}
	if fenceLen < codeFenceLen {
		return ProcessResult{}, false
	}

	closeIdx := strings.Index(buf[start+fenceLen:], strings.Repeat("`", fenceLen))
	if closeIdx < 0 {
		if !ctx.IsEnd {
			return ProcessResult{PendingContent: buf[start:]}, true
		}
		// End of stream with no closing fence: the rest of the buffer
		// becomes the code block body, closing implicitly at EOF.
		return ProcessResult{
			Tokens:      []Segment{{Kind: KindCodeBlock, Content: buf[start:]}},
			NewPosition: len(buf),
			Consumed:    true,
		}, true
	}

	closeStart := start + fenceLen + closeIdx
	closeEnd := closeStart + fenceLen
	// Consume to end of the closing fence's line.
	lineEndIdx := lineEnd(buf, closeEnd)
	newPos := lineEndIdx
	if newPos < len(buf) {
		newPos++
	}

	return ProcessResult{
		Tokens:      []Segment{{Kind: KindCodeBlock, Content: buf[start:lineEndIdx]}},
		NewPosition: newPos,
		Consumed:    true,
	}, true
}
