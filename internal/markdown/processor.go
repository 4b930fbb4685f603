package markdown

// Context is the read-only view a Processor gets of the scan in progress.
type Context struct {
	// Position is the cursor's current byte offset into Buffer.
	Position int
	// Buffer is the full buffer being scanned (the current chunk, with any
	// carried-over pending content prepended).
	Buffer string
	// IsAtLineStart is true iff Position == 0 or Buffer[Position-1] == '\n'.
	IsAtLineStart bool
	// IsEnd is true when this is the final call for the stream (no more
	// chunks will follow), so processors must not return pending content.
	IsEnd bool
}

// ProcessResult is what a Processor returns after a successful Process call.
type ProcessResult struct {
	// Tokens are the segments produced by this invocation, in order.
	Tokens []Segment
	// NewPosition is the cursor position to resume scanning from.
	NewPosition int
	// Consumed is true if the processor advanced the cursor at all.
	Consumed bool
	// PendingContent, when non-empty, is the unconsumed tail starting at
	// this processor's match start; the Segmenter stores it and prepends
	// it to the next chunk instead of emitting any token now. Only
	// returned when Context.IsEnd is false.
	PendingContent string
}

// Processor is a single sub-scanner registered with the Segmenter. Exactly
// one Processor consumes any given cursor position: the Segmenter asks
// each registered Processor, in descending Priority order, whether it
// CanProcess the byte at the cursor, and the first one that can and does
// not decline in Process claims it.
type Processor interface {
	// Priority orders processors for dispatch; higher runs first. Ties are
	// broken by registration order.
	Priority() float64
	// CanProcess reports whether this processor might match starting at
	// the given character, given the current scan Context.
	CanProcess(ch byte, ctx *Context) bool
	// Process attempts the match starting at `start`. The second return
	// value is false if the processor declined after all (e.g. an
	// optimistic CanProcess that didn't pan out), in which case the
	// Segmenter offers the same position to the next processor in
	// priority order.
	Process(ctx *Context, start int) (ProcessResult, bool)
}

// defaultProcessors returns the full set of built-in processors, in
// priority order highest-first (the order is cosmetic here; the Segmenter
// sorts by Priority() regardless, but listing them in spec order keeps
// this file readable as the canonical registry).
func defaultProcessors() []Processor {
	return []Processor{
		&escapeProcessor{},
		&headerProcessor{},
		&blockquoteProcessor{},
		&horizontalRuleProcessor{},
		&codeBlockProcessor{},
		&listProcessor{},
		&imageProcessor{},
		&linkProcessor{},
		&inlineCodeProcessor{},
		&strikethroughProcessor{},
		&emphasisProcessor{},
		&textProcessor{},
	}
}
