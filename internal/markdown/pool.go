package markdown

import (
	"sync"

	"golang.org/x/net/html"
)

// segmentSlicePool reuses the scratch slices assembled and discarded
// within a single builder call (e.g. a paragraph's inline-segment
// collector), the same way the teacher's token pool amortizes allocation
// across repeated parses rather than letting every call start from nil.
// It never holds a slice the caller keeps past the call that borrowed it.
var segmentSlicePool = sync.Pool{
	New: func() any {
		s := make([]Segment, 0, 32)

		return &s
	},
}

func getSegmentSlice() []Segment {
	p := segmentSlicePool.Get().(*[]Segment)

	return (*p)[:0]
}

func putSegmentSlice(s []Segment) {
	if cap(s) == 0 {
		return
	}
	s = s[:0]
	segmentSlicePool.Put(&s)
}

// htmlNodeSlicePool reuses the scratch []*html.Node buffers mapChildren
// fills purely to hand to appendAll; once appendAll has relinked each
// element as a child, the slice header itself is discardable.
var htmlNodeSlicePool = sync.Pool{
	New: func() any {
		s := make([]*html.Node, 0, 16)

		return &s
	},
}

func getHTMLNodeSlice() []*html.Node {
	p := htmlNodeSlicePool.Get().(*[]*html.Node)

	return (*p)[:0]
}

func putHTMLNodeSlice(s []*html.Node) {
	if cap(s) == 0 {
		return
	}
	s = s[:0]
	htmlNodeSlicePool.Put(&s)
}
