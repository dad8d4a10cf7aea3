package vdom

import (
	"fmt"

	"github.com/vango-dev/rangeui/internal/errors"
)

// MaxExpandDepth bounds the number of composites expanded inside one another.
// Deeper chains almost always mean a render function that keeps producing
// fresh instances of itself.
const MaxExpandDepth = 512

// Expand returns the leaf tree of n: elements and text only. Composites are
// replaced by their expanded render output and cache it as their leaf; every
// composite met is bound to u so SetState can trigger updates. Element leaf
// children are recomputed on every call.
func Expand(n Node, u Updater) (Node, error) {
	x := newExpander(u)
	return x.expand(n, nil, 0)
}

// Rerendered is the outcome of Rerender.
type Rerendered struct {
	Prev Node // Leaf before the render
	Next Node // Leaf after the render

	prior map[*Element][]Node
}

// PrevLeafChildren returns the leaf children el held before the render.
// An element handed back by the render function is expanded again in place,
// so its current leaf children already belong to the new tree.
func (r Rerendered) PrevLeafChildren(el *Element) []Node {
	if old, ok := r.prior[el]; ok {
		return old
	}
	return el.LeafChildren()
}

// Rerender re-invokes c's render function, expands the output and stores the
// new leaf on c and in every place that held the previous one (the enclosing
// element's leaf children, enclosing composites). On error every element and
// composite touched by the pass is restored.
func Rerender(c Composite) (Rerendered, error) {
	comp := c.component()
	r := Rerendered{Prev: comp.leaf}

	x := newExpander(comp.updater)
	x.track = true
	next, err := x.composite(c, comp.slots, 0)
	if err != nil {
		x.restore()
		return r, err
	}
	for _, slot := range comp.slots {
		*slot = next
	}
	r.Next = next
	r.prior = x.prior
	return r, nil
}

type expander struct {
	u      Updater
	active map[*Component]bool

	// Saved state of everything re-expanded while tracking.
	track     bool
	prior     map[*Element][]Node
	priorComp map[*Component]Component
}

func newExpander(u Updater) *expander {
	return &expander{
		u:         u,
		active:    make(map[*Component]bool),
		prior:     make(map[*Element][]Node),
		priorComp: make(map[*Component]Component),
	}
}

func (x *expander) restore() {
	for el, old := range x.prior {
		el.vchildren = old
	}
	for c, old := range x.priorComp {
		c.self = old.self
		c.slots = old.slots
		c.updater = old.updater
		c.leaf = old.leaf
	}
}

func (x *expander) expand(n Node, slots []*Node, depth int) (Node, error) {
	switch v := n.(type) {
	case *Text:
		return v, nil

	case *Element:
		if x.track && v.expanded {
			if _, seen := x.prior[v]; !seen {
				x.prior[v] = v.vchildren
			}
		}
		leaves := make([]Node, len(v.children))
		v.vchildren = leaves
		v.expanded = true
		for i, child := range v.children {
			leaf, err := x.expand(child, []*Node{&leaves[i]}, depth)
			if err != nil {
				return nil, err
			}
			leaves[i] = leaf
		}
		return v, nil

	case Composite:
		return x.composite(v, slots, depth)

	default:
		return nil, errors.New("E006").WithDetail(fmt.Sprintf("%T", n))
	}
}

func (x *expander) composite(v Composite, slots []*Node, depth int) (Node, error) {
	c := v.component()
	if x.active[c] {
		return nil, errors.New("E003").WithDetail(fmt.Sprintf("%T renders itself", v))
	}
	if depth >= MaxExpandDepth {
		return nil, errors.New("E003").WithDetail(fmt.Sprintf("more than %d nested composites below %T", MaxExpandDepth, v))
	}
	x.active[c] = true
	defer delete(x.active, c)

	if x.track {
		if _, seen := x.priorComp[c]; !seen {
			x.priorComp[c] = Component{self: c.self, slots: c.slots, updater: c.updater, leaf: c.leaf}
		}
	}
	c.self = v
	c.slots = slots
	if x.u != nil {
		c.updater = x.u
	}

	out, err := callRender(v)
	if err != nil {
		return nil, err
	}

	own := make([]*Node, len(slots), len(slots)+1)
	copy(own, slots)
	own = append(own, &c.leaf)

	leaf, err := x.expand(out, own, depth+1)
	if err != nil {
		return nil, err
	}
	c.leaf = leaf
	return leaf, nil
}

// callRender invokes Render, turning a panic into E001 and a nil result into
// E002.
func callRender(c Composite) (out Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			e := errors.New("E001").WithDetail(fmt.Sprintf("%T.Render: %v", c, r))
			if cause, ok := r.(error); ok {
				e.Wrap(cause)
			}
			err = e
		}
	}()

	out = c.Render()
	if isNilNode(out) {
		return nil, errors.New("E002").WithDetail(fmt.Sprintf("%T.Render returned nil", c))
	}
	return out, nil
}
