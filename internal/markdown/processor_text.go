package markdown

// specialChars are the leading bytes every higher-priority processor
// cares about. textProcessor consumes everything up to the next one (or
// a line break, since LINE_BREAK/PARAGRAPH_BREAK are handled separately
// by the Segmenter's newline scan) so plain prose comes through as one
// segment per run rather than one per rune.
//
// '-' is included even though only list items and horizontal rules react
// to it, and only at line start: no processor upstream of textProcessor
// claims a mid-line '-', so leaving it out of this set would not change
// which processor wins, only how many TEXT segments a hyphenated word
// comes out as. It stays in the set so that stays true at every position,
// not just line start — a hyphen anywhere splits the run it sits in.
const specialChars = "\\#>*_~[]!`\n-"

// textProcessor is the catch-all: it never declines, so it must sit at
// the lowest priority.
type textProcessor struct{}

func (*textProcessor) Priority() float64 { return 1 }

func (*textProcessor) CanProcess(_ byte, _ *Context) bool { return true }

func (*textProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer

	i := start + 1
	for i < len(buf) && !isSpecialStart(buf, i) {
		i++
	}

	return ProcessResult{
		Tokens:      []Segment{{Kind: KindText, Content: buf[start:i]}},
		NewPosition: i,
		Consumed:    true,
	}, true
}

// isSpecialStart reports whether position i begins a construct some
// higher-priority processor would claim, so textProcessor knows where to
// stop its run.
func isSpecialStart(buf string, i int) bool {
	b := buf[i]
	for j := 0; j < len(specialChars); j++ {
		if b == specialChars[j] {
			return true
		}
	}
	if (b == ' ' || b == '\t') && isLineStartAt(buf, i) {
		// Could be list-item indentation; let the list processor decide.
		return true
	}

	return false
}

// isLineStartAt reports whether i is the first byte of a line.
func isLineStartAt(buf string, i int) bool {
	return i == 0 || buf[i-1] == '\n'
}
