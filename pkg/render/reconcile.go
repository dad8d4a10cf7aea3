package render

import (
	"fmt"

	"github.com/vango-dev/rangeui/internal/errors"
	"github.com/vango-dev/rangeui/pkg/surface"
	"github.com/vango-dev/rangeui/pkg/vdom"
)

// patchStats counts the decisions taken by one update pass.
type patchStats struct {
	replaced int // Nodes mounted over a not-same predecessor
	kept     int // Nodes that inherited their predecessor's range
	appended int // Children mounted after the last existing sibling
	removed  int // Trailing children removed
}

// pass is one update: the decisions it took and the leaf children that
// elements reused by the render held before it.
type pass struct {
	prior vdom.Rerendered
	stats patchStats
}

// oldChildren returns el's leaf children as currently mounted. A nil pass
// reads them straight from el.
func (p *pass) oldChildren(el *vdom.Element) []vdom.Node {
	if p == nil {
		return el.LeafChildren()
	}
	return p.prior.PrevLeafChildren(el)
}

// patch transforms the host content of prev into next.
func (e *Engine) patch(prev, next vdom.Node, p *pass) error {
	st := &p.stats
	rec := e.records[prev]
	if rec == nil {
		return errors.New("E004").WithDetail(fmt.Sprintf("no occupied range for previous %s", nodeName(prev)))
	}

	if !vdom.IsSameNode(prev, next) {
		e.release(prev, false, p)
		st.replaced++
		return e.mount(next, rec.target)
	}

	if prev != next {
		delete(e.records, prev)
		e.records[next] = rec
	}
	st.kept++

	prevEl, ok := prev.(*vdom.Element)
	if !ok {
		return nil
	}
	nextEl := next.(*vdom.Element)
	oldChildren := p.oldChildren(prevEl)
	newChildren := nextEl.LeafChildren()

	var tail surface.Target
	for i, child := range newChildren {
		if i < len(oldChildren) {
			if err := e.patch(oldChildren[i], child, p); err != nil {
				return err
			}
			tail = e.records[child].target
			continue
		}

		var t surface.Target
		if tail == nil {
			t = e.host.End(rec.host)
		} else {
			t = tail.After()
		}
		if err := e.mount(child, t); err != nil {
			return err
		}
		st.appended++
		tail = t
	}

	if len(oldChildren) > len(newChildren) {
		for _, stale := range oldChildren[len(newChildren):] {
			e.remove(stale, p)
			st.removed++
		}
	}
	return nil
}

// remove clears a mounted node from the host and forgets its subtree.
func (e *Engine) remove(n vdom.Node, p *pass) {
	if rec := e.records[n]; rec != nil {
		rec.target.Clear()
	}
	e.release(n, true, p)
}

// release drops the mount records of n's subtree and releases their targets.
// The root target is kept when it is about to be reused by a replacement.
func (e *Engine) release(n vdom.Node, root bool, p *pass) {
	if rec := e.records[n]; rec != nil {
		delete(e.records, n)
		if root {
			rec.target.Release()
		}
	}
	if el, ok := n.(*vdom.Element); ok {
		for _, child := range p.oldChildren(el) {
			e.release(child, true, p)
		}
	}
}
