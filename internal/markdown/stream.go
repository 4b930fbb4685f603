package markdown

import "unicode/utf8"

// OutputHandler receives one complete rendered HTML chunk per flush.
type OutputHandler func(html string)

// ErrorHandler receives an error instead of a panic propagating out of
// Process/Flush; after an error the Streamer remains usable.
type ErrorHandler func(err error)

// Streamer is the chunked-input driver: it owns a persistent Segmenter
// so pending content (an unterminated delimiter split across chunks)
// carries forward, accumulates the segments each chunk produces, and on
// Flush runs the Builder, Mapper, and Renderer once over everything
// accumulated since the previous flush.
type Streamer struct {
	options  Options
	segs     *Segmenter
	buffered []Segment

	outputHandler OutputHandler
	errorHandler  ErrorHandler
}

// NewStreamer constructs a Streamer configured with opts.
func NewStreamer(opts Options) *Streamer {
	return &Streamer{options: opts, segs: NewSegmenter()}
}

// SetOutputHandler registers the callback invoked with each flush's
// rendered HTML (only called when the output is non-empty).
func (s *Streamer) SetOutputHandler(fn OutputHandler) { s.outputHandler = fn }

// SetErrorHandler registers the callback invoked when Process or Flush
// encounters an error; the error is still returned to the caller as well.
func (s *Streamer) SetErrorHandler(fn ErrorHandler) { s.errorHandler = fn }

// Process feeds chunk through the persistent Segmenter and accumulates
// the resulting segments; it performs no building, mapping, or
// rendering, and emits nothing.
func (s *Streamer) Process(chunk string) (err error) {
	defer s.recoverInto(&err)

	if !utf8.ValidString(chunk) {
		err = &DecodeError{Offset: invalidUTF8Offset(chunk)}
		s.dispatchError(err)

		return err
	}

	segs := s.segs.ExtractSegments(chunk, false)
	s.buffered = append(s.buffered, segs...)

	return nil
}

// Flush resolves any pending content, runs the Builder/Mapper/Renderer
// over everything accumulated since the last flush, and — if the result
// is non-empty — invokes the output handler. The buffer is cleared
// afterward regardless of outcome.
func (s *Streamer) Flush() (err error) {
	defer s.recoverInto(&err)
	defer func() { s.buffered = nil }()

	tail := s.segs.ExtractSegments("", true)
	s.buffered = append(s.buffered, tail...)

	if len(s.buffered) == 0 {
		return nil
	}

	builder := &Builder{MaxDepth: s.options.MaxDepth}
	doc := builder.Build(s.buffered)
	tree := Map(doc)
	html := NewRenderer(s.options).Render(tree)

	if html != "" && s.outputHandler != nil {
		s.outputHandler(html)
	}

	return nil
}

// ProcessString is a one-shot bypass: it runs the full pipeline over
// text directly, without touching the Streamer's buffered state or
// invoking either handler.
func (s *Streamer) ProcessString(text string) (string, error) {
	return NewPipeline(s.options).Run(text)
}

// Reset clears the buffer and reconstructs the Segmenter, discarding any
// pending content.
func (s *Streamer) Reset() {
	s.segs = NewSegmenter()
	s.buffered = nil
}

// recoverInto converts a panic during Process/Flush into a *PanicError
// assigned to *errp, so one construct's internal bug cannot take down a
// long-lived streaming caller.
func (s *Streamer) recoverInto(errp *error) {
	if r := recover(); r != nil {
		*errp = &PanicError{Cause: r}
		s.dispatchError(*errp)
	}
}

// dispatchError routes a non-nil error to the registered error handler;
// Process/Flush still return it, so a caller with no handler registered
// still observes it via the return value.
func (s *Streamer) dispatchError(err error) {
	if err != nil && s.errorHandler != nil {
		s.errorHandler(err)
	}
}
