package pack

import "github.com/packlab/pack/format"

// frame is the codec's record of one currently open object or array.
//
// idLast is the greatest field id already consumed (reader) or emitted
// (writer) at this nesting level. nullTotal is writer-only: the count of
// explicit nulls deferred into the next emitted field's id delta, so that
// callers writing with implicit ids still produce gaps instead of bytes.
type frame struct {
	typ       format.PackType // format.TypeObj or format.TypeArray
	idLast    uint32
	nullTotal uint32
}

// frameStack is a LIFO of frames seeded with the root object frame. The
// root frame is never popped; a pack is implicitly wrapped in it and no
// outer tag is emitted.
type frameStack []frame

func newFrameStack() frameStack {
	return frameStack{{typ: format.TypeObj}}
}

func (s *frameStack) push(typ format.PackType) {
	*s = append(*s, frame{typ: typ})
}

func (s *frameStack) pop() {
	*s = (*s)[:len(*s)-1]
}

func (s frameStack) top() *frame {
	return &s[len(s)-1]
}

// depth returns the number of open frames including the root.
func (s frameStack) depth() int {
	return len(s)
}
