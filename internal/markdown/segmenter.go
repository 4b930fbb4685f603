package markdown

import "sort"

// Segmenter turns markdown source into a flat stream of Segments by
// priority-dispatching each cursor position to the first registered
// Processor that claims it. It carries pending content across calls so a
// streaming caller can feed it chunks that split a delimiter in half.
type Segmenter struct {
	processors []Processor
	pending    string
}

// NewSegmenter builds a Segmenter with the default processor set,
// ordered by descending Priority.
func NewSegmenter() *Segmenter {
	procs := defaultProcessors()
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Priority() > procs[j].Priority()
	})

	return &Segmenter{processors: procs}
}

// Reset clears any carried-over pending content.
func (s *Segmenter) Reset() {
	s.pending = ""
}

// ExtractSegments scans chunk (prefixed by any content deferred from a
// previous call) and returns the Segments produced. isEnd must be true on
// the final call of a stream so unterminated delimiters degrade to their
// processor-specific end-of-stream behavior instead of deferring forever.
func (s *Segmenter) ExtractSegments(chunk string, isEnd bool) []Segment {
	buf := s.pending + chunk
	s.pending = ""

	var segments []Segment
	pos := 0
	failures := 0
	maxFailures := len(s.processors) + 1

	for pos < len(buf) {
		ctx := &Context{
			Position:      pos,
			Buffer:        buf,
			IsAtLineStart: pos == 0 || buf[pos-1] == '\n',
			IsEnd:         isEnd,
		}

		if buf[pos] == '\n' {
			seg := newlineSegment(buf, pos)
			segments = append(segments, seg)
			if seg.Kind == KindParagraphBreak {
				pos += 2
			} else {
				pos++
			}
			failures = 0

			continue
		}

		matched := false
		for _, p := range s.processors {
			if !p.CanProcess(buf[pos], ctx) {
				continue
			}

			result, ok := p.Process(ctx, pos)
			if !ok {
				continue
			}

			matched = true
			failures = 0

			if result.PendingContent != "" && !isEnd {
				s.pending = result.PendingContent
				pos = len(buf)

				break
			}

			segments = append(segments, result.Tokens...)
			if result.Consumed && result.NewPosition > pos {
				pos = result.NewPosition
			} else {
				pos++
			}

			break
		}

		if !matched {
			failures++
			if failures > maxFailures {
				// Defensive: no processor is making progress. Emit the
				// remainder as a single TEXT segment rather than loop.
				segments = append(segments, Segment{Kind: KindText, Content: buf[pos:]})
				pos = len(buf)

				break
			}
			pos++
		}
	}

	return segments
}

// newlineSegment classifies a '\n' as either a hard LINE_BREAK (when
// preceded by two-or-more trailing spaces) or a PARAGRAPH_BREAK/plain
// newline boundary, per the two trailing-space hard-break rule.
func newlineSegment(buf string, nlPos int) Segment {
	spaces := 0
	for i := nlPos - 1; i >= 0 && buf[i] == ' '; i-- {
		spaces++
	}

	if spaces >= 2 {
		return Segment{
			Kind:     KindLineBreak,
			Content:  "\n",
			Metadata: Metadata{LineBreakSpaces: spaces},
		}
	}

	if nlPos+1 < len(buf) && buf[nlPos+1] == '\n' {
		return Segment{Kind: KindParagraphBreak, Content: "\n\n"}
	}

	return Segment{Kind: KindText, Content: "\n"}
}
