// Package mdhtml converts Markdown source text into an HTML string. It
// supports a subset of CommonMark plus GitHub-style extensions: ATX
// headers, emphasis, strikethrough, inline code, fenced code blocks,
// blockquotes, ordered/unordered/task lists, inline and reference-style
// links and images with optional URL sanitization, horizontal rules, hard
// line breaks, and escaped characters.
//
// Parse handles one complete document. Stream supports input that
// arrives in pieces, reusing a persistent scanner so a delimiter split
// across chunk boundaries (an unterminated backtick or emphasis marker)
// is still recognized once the rest arrives.
package mdhtml

import "github.com/connerohnesorge/mdhtml/internal/markdown"

// Options configures a Parse or Stream call.
type Options struct {
	// Sanitize enables both URL sanitization in link/image targets and
	// content sanitization in the renderer's output. Off by default, to
	// match trusted-input use where the literal source should pass
	// through unmodified beyond the minimal well-formedness encoding.
	Sanitize bool

	// MaxDepth caps how deeply nested container constructs (blockquotes,
	// lists, strikethrough re-tokenization) the builder will recurse
	// before flattening the remainder to text. Zero means the default
	// of 10.
	MaxDepth int

	// OutputHandler, if set, receives each Stream flush's rendered HTML.
	OutputHandler func(html string)
	// ErrorHandler, if set, receives errors from Stream's Process/Flush
	// instead of them only being returned.
	ErrorHandler func(err error)

	// ChunkSize is informational only: the size a caller intends to
	// split input into before feeding it to a Streamer via Process. It
	// does not alter correctness.
	ChunkSize int
}

func (o Options) engineOptions() markdown.Options {
	return markdown.Options{
		SanitizeContent: o.Sanitize,
		SanitizeURL:     o.Sanitize,
		MaxDepth:        o.MaxDepth,
	}
}

// Parse converts a complete Markdown document to HTML in one call.
func Parse(text string) (string, error) {
	return markdown.NewPipeline(Options{}.engineOptions()).Run(text)
}

// ParseWithOptions is Parse with explicit Options.
func ParseWithOptions(text string, opts Options) (string, error) {
	return markdown.NewPipeline(opts.engineOptions()).Run(text)
}

// Streamer is the chunked-input driver: feed it input via Process, call
// Flush to render everything accumulated since the previous flush.
type Streamer = markdown.Streamer

// Stream constructs a streaming instance, processes the given text,
// flushes it, and returns the instance for further use.
func Stream(text string, opts Options) (*Streamer, error) {
	s := markdown.NewStreamer(opts.engineOptions())
	if opts.OutputHandler != nil {
		s.SetOutputHandler(opts.OutputHandler)
	}
	if opts.ErrorHandler != nil {
		s.SetErrorHandler(opts.ErrorHandler)
	}

	if err := s.Process(text); err != nil {
		return s, err
	}

	return s, s.Flush()
}
