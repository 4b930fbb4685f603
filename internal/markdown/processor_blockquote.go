package markdown

import "strings"

const maxBlockquoteLevel = 6

// blockquoteProcessor handles "> quoted text", absorbing contiguous
// same-level or blank lines into one segment whose Content is the
// unwrapped inner text, left for the document builder to re-tokenize.
type blockquoteProcessor struct{}

func (*blockquoteProcessor) Priority() float64 { return 9 }

func (*blockquoteProcessor) CanProcess(ch byte, ctx *Context) bool {
	return ch == '>' && ctx.IsAtLineStart
}

func (*blockquoteProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer

	level := 0
	for i := start; i < len(buf) && buf[i] == '>' && level < maxBlockquoteLevel; i++ {
		level++
	}
	prefix := strings.Repeat(">", level)

	var inner strings.Builder
	pos := start
	first := true

	for pos < len(buf) {
		end := lineEnd(buf, pos)
		hasNewline := end < len(buf)
		if !hasNewline && !ctx.IsEnd {
			// The final line in this chunk may still be incomplete;
			// defer the whole match until more input (or isEnd) arrives.
			return ProcessResult{PendingContent: buf[start:]}, true
		}

		line := trimTrailingCR(buf[pos:end])
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, prefix):
			rest := line[len(prefix):]
			rest = strings.TrimPrefix(rest, " ")
			if !first {
				inner.WriteByte('\n')
			}
			inner.WriteString(rest)
			first = false
		case trimmed == "":
			if !first {
				inner.WriteByte('\n')
			}
			first = false
		default:
			// Line start not part of this blockquote: stop absorbing.
			return ProcessResult{
				Tokens: []Segment{{
					Kind:     KindBlockquote,
					Content:  inner.String(),
					Metadata: Metadata{BlockquoteLevel: level},
				}},
				NewPosition: pos,
				Consumed:    true,
			}, true
		}

		pos = end
		if hasNewline {
			pos++
		}
	}

	return ProcessResult{
		Tokens: []Segment{{
			Kind:     KindBlockquote,
			Content:  inner.String(),
			Metadata: Metadata{BlockquoteLevel: level},
		}},
		NewPosition: pos,
		Consumed:    true,
	}, true
}
