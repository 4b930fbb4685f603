package markdown

import "unicode/utf8"

// Pipeline runs the four stages — Segmenter, Builder, Mapper, Renderer —
// once over a complete piece of text.
type Pipeline struct {
	Options Options
}

// NewPipeline returns a Pipeline configured with opts.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{Options: opts}
}

// Run executes the full pipeline over text and returns the rendered
// HTML. It returns a *DecodeError if text is not valid UTF-8.
func (p *Pipeline) Run(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", &DecodeError{Offset: invalidUTF8Offset(text)}
	}

	segments := NewSegmenter().ExtractSegments(text, true)
	builder := &Builder{MaxDepth: p.Options.MaxDepth}
	doc := builder.Build(segments)
	tree := Map(doc)
	renderer := NewRenderer(p.Options)

	return renderer.Render(tree), nil
}

func invalidUTF8Offset(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			_, size := utf8.DecodeRuneInString(s[i:])
			if size == 1 {
				return i
			}
		}
	}

	return len(s)
}
