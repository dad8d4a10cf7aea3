package memdom

import (
	"fmt"

	"github.com/vango-dev/rangeui/pkg/surface"
)

// Range is a live span of one container's children. Both boundaries are
// offsets into the container's child list and are kept up to date by the
// document as children are inserted or removed.
type Range struct {
	doc       *Document
	container *Node
	start     int
	end       int
	released  bool
}

var _ surface.Target = (*Range)(nil)

func (d *Document) newRange(container *Node, start, end int) *Range {
	r := &Range{doc: d, container: container, start: start, end: end}
	d.ranges[r] = struct{}{}
	return r
}

// Container returns the node whose children the range spans.
func (r *Range) Container() *Node { return r.container }

// Start returns the start offset.
func (r *Range) Start() int { return r.start }

// End returns the end offset.
func (r *Range) End() int { return r.end }

// Collapsed returns true if the range is zero-width.
func (r *Range) Collapsed() bool { return r.start == r.end }

// Nodes returns the children currently inside the range.
func (r *Range) Nodes() []*Node {
	out := make([]*Node, r.end-r.start)
	copy(out, r.container.children[r.start:r.end])
	return out
}

// String returns a debug representation of the range.
func (r *Range) String() string {
	return fmt.Sprintf("Range(%s#%s [%d,%d))", r.container.tag, r.container.ID(), r.start, r.end)
}

// Clear implements surface.Target.
func (r *Range) Clear() {
	for r.end > r.start {
		r.doc.removeAt(r.container, r.start)
	}
}

// Insert implements surface.Target. Inserting into a collapsed range extends
// the range over the inserted node.
func (r *Range) Insert(n surface.Node) {
	node := r.node(n)
	collapsed := r.Collapsed()
	r.doc.insertAt(r.container, node, r.start)
	if collapsed {
		r.start = node.index()
		r.end = r.start + 1
	}
}

// StartAfter implements surface.Target.
func (r *Range) StartAfter(n surface.Node) {
	node := r.node(n)
	if node.parent == nil {
		panic("memdom: StartAfter on a detached node")
	}
	r.container = node.parent
	r.start = node.index() + 1
	if r.end < r.start {
		r.end = r.start
	}
}

// Narrow implements surface.Target.
func (r *Range) Narrow(n surface.Node) {
	node := r.node(n)
	if node.parent == nil {
		panic("memdom: Narrow on a detached node")
	}
	r.container = node.parent
	r.start = node.index()
	r.end = r.start + 1
}

// After implements surface.Target.
func (r *Range) After() surface.Target {
	return r.doc.newRange(r.container, r.end, r.end)
}

// Release implements surface.Target.
func (r *Range) Release() {
	if r.released {
		return
	}
	r.released = true
	delete(r.doc.ranges, r)
}

func (r *Range) node(n surface.Node) *Node {
	node, ok := n.(*Node)
	if !ok || node == nil {
		panic(fmt.Sprintf("memdom: foreign node %T", n))
	}
	return node
}
