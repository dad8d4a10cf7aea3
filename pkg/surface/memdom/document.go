package memdom

import (
	"github.com/oklog/ulid/v2"

	"github.com/vango-dev/rangeui/internal/errors"
	"github.com/vango-dev/rangeui/pkg/surface"
)

// Stats counts host mutations since the document was created or last reset.
type Stats struct {
	Created  int // Nodes created
	Inserted int // Child insertions
	Removed  int // Child removals
}

// Document is an in-memory host surface rooted at a body element.
type Document struct {
	body   *Node
	ranges map[*Range]struct{}
	stats  Stats
}

var _ surface.Host = (*Document)(nil)

// New creates an empty document.
func New() *Document {
	d := &Document{
		ranges: make(map[*Range]struct{}),
	}
	d.body = d.newNode(ElementNode)
	d.body.tag = "body"
	d.stats = Stats{}
	return d
}

// Body returns the document's root element.
func (d *Document) Body() *Node { return d.body }

// Stats returns the mutation counters.
func (d *Document) Stats() Stats { return d.stats }

// ResetStats zeroes the mutation counters.
func (d *Document) ResetStats() { d.stats = Stats{} }

// LiveRanges returns the number of ranges currently tracked.
func (d *Document) LiveRanges() int { return len(d.ranges) }

// NodeByID looks up a node attached under the body.
func (d *Document) NodeByID(id string) (*Node, bool) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return nil, false
	}
	n := find(d.body, parsed)
	return n, n != nil
}

func find(n *Node, id ulid.ULID) *Node {
	if n.id == id {
		return n
	}
	for _, c := range n.children {
		if found := find(c, id); found != nil {
			return found
		}
	}
	return nil
}

func (d *Document) newNode(typ NodeType) *Node {
	n := &Node{id: ulid.Make(), typ: typ, doc: d}
	d.stats.Created++
	return n
}

// CreateElement implements surface.Host.
func (d *Document) CreateElement(tag string) surface.Element {
	n := d.newNode(ElementNode)
	n.tag = tag
	return n
}

// CreateText implements surface.Host.
func (d *Document) CreateText(content string) surface.Node {
	n := d.newNode(TextNode)
	n.text = content
	return n
}

// Contents implements surface.Host.
func (d *Document) Contents(container surface.Node) (surface.Target, error) {
	c, err := d.container(container)
	if err != nil {
		return nil, err
	}
	return d.newRange(c, 0, len(c.children)), nil
}

// End implements surface.Host. It panics if container is not an element of
// this document.
func (d *Document) End(container surface.Node) surface.Target {
	c, err := d.container(container)
	if err != nil {
		panic(err)
	}
	return d.newRange(c, len(c.children), len(c.children))
}

func (d *Document) container(n surface.Node) (*Node, error) {
	c, ok := n.(*Node)
	if !ok || c == nil {
		return nil, errors.New("E007").WithDetail("container is not a memdom node")
	}
	if c.doc != d {
		return nil, errors.New("E007").WithDetail("container belongs to another document")
	}
	if c.typ != ElementNode {
		return nil, errors.New("E007").WithDetail("text nodes cannot contain children")
	}
	return c, nil
}

// AppendChild appends child to parent, detaching it from any previous parent.
func (d *Document) AppendChild(parent, child *Node) {
	d.insertAt(parent, child, len(parent.children))
}

// RemoveChild detaches child from its parent.
func (d *Document) RemoveChild(child *Node) {
	if child.parent == nil {
		return
	}
	d.removeAt(child.parent, child.index())
}

// insertAt inserts child into parent at index i and moves live range
// boundaries that sit after the insertion point.
func (d *Document) insertAt(parent, child *Node, i int) {
	if child.parent != nil {
		old := child.parent
		oldIdx := child.index()
		d.removeAt(old, oldIdx)
		if old == parent && oldIdx < i {
			i--
		}
	}
	parent.children = append(parent.children, nil)
	copy(parent.children[i+1:], parent.children[i:])
	parent.children[i] = child
	child.parent = parent
	d.stats.Inserted++

	for r := range d.ranges {
		if r.container != parent {
			continue
		}
		if r.start > i {
			r.start++
		}
		if r.end > i {
			r.end++
		}
	}
}

// removeAt removes the child at index i of parent. Ranges inside the removed
// subtree collapse onto the removal point.
func (d *Document) removeAt(parent *Node, i int) {
	child := parent.children[i]
	copy(parent.children[i:], parent.children[i+1:])
	parent.children[len(parent.children)-1] = nil
	parent.children = parent.children[:len(parent.children)-1]
	child.parent = nil
	d.stats.Removed++

	for r := range d.ranges {
		if child.contains(r.container) {
			r.container, r.start, r.end = parent, i, i
			continue
		}
		if r.container != parent {
			continue
		}
		if r.start > i {
			r.start--
		}
		if r.end > i {
			r.end--
		}
	}
}
