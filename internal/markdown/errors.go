package markdown

import "fmt"

// DecodeError reports that input bytes were not valid UTF-8. It is the
// only error surfaced from ordinary malformed input; depth-exceeded and
// unterminated-delimiter conditions degrade silently per spec rather than
// erroring.
type DecodeError struct {
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("markdown: invalid UTF-8 at byte offset %d", e.Offset)
}

// PanicError wraps a recovered panic from within a single Streamer
// Process/Flush call, so a programming error in one construct's handling
// cannot take down a long-lived streaming caller. The one-shot
// Pipeline.Run does not recover panics. The original panic value is kept
// in Cause for inspection.
type PanicError struct {
	Cause any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("markdown: internal error: %v", e.Cause)
}

// Unwrap lets errors.Is/errors.As reach the recovered value when the
// panic itself was an error; a non-error panic value has nothing to
// unwrap to.
func (e *PanicError) Unwrap() error {
	err, _ := e.Cause.(error)

	return err
}
