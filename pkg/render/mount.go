package render

import (
	"fmt"

	"github.com/vango-dev/rangeui/internal/errors"
	"github.com/vango-dev/rangeui/pkg/surface"
	"github.com/vango-dev/rangeui/pkg/vdom"
)

// mount renders node into target and records the occupied range of every
// leaf node it creates.
func (e *Engine) mount(node vdom.Node, target surface.Target) error {
	switch v := node.(type) {
	case *vdom.Text:
		hn := e.host.CreateText(v.Content())
		replaceContent(target, hn)
		e.records[v] = &record{target: target, host: hn}
		e.metrics.observeMount(vdom.KindText)
		return nil

	case *vdom.Element:
		el := e.host.CreateElement(v.Tag())
		attrs := v.Attrs()
		for _, name := range attrs.SortedKeys() {
			e.applyAttr(el, name, attrs[name])
		}

		if !v.Expanded() {
			if _, err := vdom.Expand(v, e); err != nil {
				return err
			}
		}
		for _, child := range v.LeafChildren() {
			if err := e.mount(child, e.host.End(el)); err != nil {
				return err
			}
		}

		replaceContent(target, el)
		e.records[v] = &record{target: target, host: el}
		e.metrics.observeMount(vdom.KindElement)
		return nil

	case vdom.Composite:
		leaf, err := vdom.Expand(v, e)
		if err != nil {
			return err
		}
		e.metrics.observeMount(vdom.KindComposite)
		return e.mount(leaf, target)

	default:
		return errors.New("E006").WithDetail(fmt.Sprintf("%T", node))
	}
}

// applyAttr translates one attribute onto a host element: "on<Event>"
// handlers become listeners, className becomes class, other strings are set
// verbatim.
func (e *Engine) applyAttr(el surface.Element, name string, value any) {
	if event, ok := vdom.EventName(name); ok {
		if h, ok := value.(*vdom.Handler); ok {
			el.AddEventListener(event, h.Listener())
			return
		}
	}

	switch v := value.(type) {
	case string:
		el.SetAttribute(vdom.HostAttrName(name), v)
	case *vdom.Handler:
		e.logger.Warn("handler ignored on non-event attribute", "attr", name)
	}
}

// replaceContent makes n the only content of t and narrows t to wrap it.
// n is inserted before the old content is cleared; clearing first would
// collapse t onto the start boundary of the following sibling's range, and
// the insertion would then land inside that range as well.
func replaceContent(t surface.Target, n surface.Node) {
	t.Insert(n)
	t.StartAfter(n)
	t.Clear()
	t.Narrow(n)
}
