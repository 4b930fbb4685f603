package markdown

import "strings"

const minRuleLength = 3

// horizontalRuleProcessor handles thematic breaks: a line-start line
// consisting of nothing but 3+ repeats of '-', '*', or '_' (optionally
// interspersed with whitespace).
type horizontalRuleProcessor struct{}

func (*horizontalRuleProcessor) Priority() float64 { return 9 }

func (p *horizontalRuleProcessor) CanProcess(ch byte, ctx *Context) bool {
	if !ctx.IsAtLineStart {
		return false
	}
	if ch != '-' && ch != '*' && ch != '_' {
		return false
	}
	_, status := matchRuleLine(ctx.Buffer, ctx.Position, ctx.IsEnd)

	return status != ruleNoMatch
}

func (*horizontalRuleProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	marker, status := matchRuleLine(ctx.Buffer, start, ctx.IsEnd)
	if status == ruleIncomplete {
		return ProcessResult{PendingContent: ctx.Buffer[start:]}, true
	}
	if status == ruleNoMatch {
		return ProcessResult{}, false
	}

	end := lineEnd(ctx.Buffer, start)
	newPos := end
	if newPos < len(ctx.Buffer) {
		newPos++
	}

	return ProcessResult{
		Tokens: []Segment{{
			Kind:     KindHorizontalRule,
			Content:  trimTrailingCR(ctx.Buffer[start:end]),
			Metadata: Metadata{HRMarker: marker},
		}},
		NewPosition: newPos,
		Consumed:    true,
	}, true
}

// ruleLineStatus distinguishes a confirmed thematic-break line from one
// that simply hasn't seen its terminating newline yet, the same
// incomplete-vs-no-match split matchLinkLike uses for link-like
// constructs.
type ruleLineStatus int

const (
	ruleNoMatch ruleLineStatus = iota
	ruleIncomplete
	ruleComplete
)

// matchRuleLine reports whether the line starting at pos is a thematic
// break line, returning the repeated marker byte if so. isEnd must be
// true on the final call of a stream so a rule line with no trailing
// newline still resolves instead of deferring forever.
func matchRuleLine(buf string, pos int, isEnd bool) (byte, ruleLineStatus) {
	end := lineEnd(buf, pos)
	hasNewline := end < len(buf)
	line := trimTrailingCR(buf[pos:end])

	marker := byte(0)
	count := 0
	for i := 0; i < len(line); i++ {
		b := line[i]
		if b == ' ' || b == '\t' {
			continue
		}
		if b != '-' && b != '*' && b != '_' {
			return 0, ruleNoMatch
		}
		if marker == 0 {
			marker = b
		} else if b != marker {
			return 0, ruleNoMatch
		}
		count++
	}

	if !hasNewline && !isEnd {
		return marker, ruleIncomplete
	}

	if count < minRuleLength || strings.TrimSpace(line) == "" {
		return 0, ruleNoMatch
	}

	return marker, ruleComplete
}
