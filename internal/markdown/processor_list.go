package markdown

// listProcessor handles list item lines: unordered ("- ", "* ", "+ "),
// ordered ("1. ", "2. ", ...), and task ("- [ ] ", "- [x] ") markers. It
// claims the leading indentation itself so no separate whitespace-only
// TEXT segment ever reaches the builder ahead of a LIST_ITEM segment.
type listProcessor struct{}

func (*listProcessor) Priority() float64 { return 7 }

func (*listProcessor) CanProcess(ch byte, ctx *Context) bool {
	if !ctx.IsAtLineStart {
		return false
	}
	if ch != ' ' && ch != '\t' && ch != '-' && ch != '*' && ch != '+' && !isDigit(ch) {
		return false
	}

	_, ok := matchListMarker(ctx.Buffer, ctx.Position)

	return ok
}

func (*listProcessor) Process(ctx *Context, start int) (ProcessResult, bool) {
	buf := ctx.Buffer

	m, ok := matchListMarker(buf, start)
	if !ok {
		return ProcessResult{}, false
	}

	end := lineEnd(buf, m.contentStart)
	hasNewline := end < len(buf)
	if !hasNewline && !ctx.IsEnd {
		return ProcessResult{PendingContent: buf[start:]}, true
	}

	content := trimTrailingCR(buf[m.contentStart:end])

	newPos := end
	if hasNewline {
		newPos++
	}

	meta := Metadata{
		ListIndent:  m.indent,
		ListMarker:  m.marker,
		ItemContent: content,
	}

	kind := KindListItem
	switch {
	case m.isTask:
		kind = KindTaskListItem
		meta.ListType = ListTask
		meta.TaskChecked = m.taskChecked
	case m.isOrdered:
		meta.ListType = ListOrdered
		meta.ListOrdinal = m.ordinal
	default:
		meta.ListType = ListUnordered
	}

	return ProcessResult{
		Tokens:      []Segment{{Kind: kind, Content: content, Metadata: meta}},
		NewPosition: newPos,
		Consumed:    true,
	}, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

type listMarkerMatch struct {
	indent       int
	marker       string
	isOrdered    bool
	ordinal      int
	isTask       bool
	taskChecked  bool
	contentStart int
}

// matchListMarker attempts to parse a list marker starting at pos,
// including any leading indentation. It reports ok=false if the line is
// not a list item.
func matchListMarker(buf string, pos int) (listMarkerMatch, bool) {
	i := pos
	units := 0
	for i < len(buf) && (buf[i] == ' ' || buf[i] == '\t') {
		if buf[i] == '\t' {
			units += 4
		} else {
			units++
		}
		i++
	}
	indent := units / 4
	if i >= len(buf) {
		return listMarkerMatch{}, false
	}

	switch buf[i] {
	case '-', '*', '+':
		markerByte := buf[i]
		after := i + 1
		if after >= len(buf) || (buf[after] != ' ' && buf[after] != '\t') {
			return listMarkerMatch{}, false
		}
		contentStart := after + 1
		for contentStart < len(buf) && (buf[contentStart] == ' ' || buf[contentStart] == '\t') {
			if contentStart-after > 3 {
				break
			}
			contentStart++
		}

		if checked, taskStart, ok := matchTaskBox(buf, contentStart); ok {
			return listMarkerMatch{
				indent:       indent,
				marker:       string(markerByte),
				isTask:       true,
				taskChecked:  checked,
				contentStart: taskStart,
			}, true
		}

		return listMarkerMatch{
			indent:       indent,
			marker:       string(markerByte),
			contentStart: contentStart,
		}, true
	}

	if isDigit(buf[i]) {
		digitsStart := i
		for i < len(buf) && isDigit(buf[i]) {
			i++
		}
		if i >= len(buf) || buf[i] != '.' {
			return listMarkerMatch{}, false
		}
		delim := i
		after := delim + 1
		if after >= len(buf) || (buf[after] != ' ' && buf[after] != '\t') {
			return listMarkerMatch{}, false
		}
		contentStart := after + 1
		for contentStart < len(buf) && (buf[contentStart] == ' ' || buf[contentStart] == '\t') {
			contentStart++
		}

		ordinal := 0
		for _, d := range buf[digitsStart:delim] {
			ordinal = ordinal*10 + int(d-'0')
		}

		return listMarkerMatch{
			indent:       indent,
			marker:       buf[digitsStart : delim+1],
			isOrdered:    true,
			ordinal:      ordinal,
			contentStart: contentStart,
		}, true
	}

	return listMarkerMatch{}, false
}

// matchTaskBox recognizes "[ ] " / "[x] " / "[X] " immediately at pos.
func matchTaskBox(buf string, pos int) (checked bool, contentStart int, ok bool) {
	if pos+3 >= len(buf) || buf[pos] != '[' {
		return false, 0, false
	}
	mark := buf[pos+1]
	if buf[pos+2] != ']' {
		return false, 0, false
	}
	if mark != ' ' && mark != 'x' && mark != 'X' {
		return false, 0, false
	}

	after := pos + 3
	if after >= len(buf) || (buf[after] != ' ' && buf[after] != '\t') {
		return false, 0, false
	}
	cs := after + 1
	for cs < len(buf) && (buf[cs] == ' ' || buf[cs] == '\t') {
		cs++
	}

	return mark == 'x' || mark == 'X', cs, true
}
