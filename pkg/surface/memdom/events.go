package memdom

import (
	"fmt"

	"github.com/vango-dev/rangeui/pkg/surface"
)

// Dispatch delivers an event to target and then to each ancestor, in order.
// Listeners run synchronously on the caller's goroutine. It returns the
// number of listeners invoked.
func (d *Document) Dispatch(target *Node, eventType, value string) int {
	ev := surface.Event{Type: eventType, Target: target, Value: value}
	calls := 0
	for n := target; n != nil; n = n.parent {
		// Copy so listeners added during dispatch wait for the next event.
		listeners := append([]surface.Listener(nil), n.handlers[eventType]...)
		for _, l := range listeners {
			l(ev)
			calls++
		}
	}
	return calls
}

// DispatchByID resolves id under the body and dispatches the event to it.
func (d *Document) DispatchByID(id, eventType, value string) (int, error) {
	n, ok := d.NodeByID(id)
	if !ok {
		return 0, fmt.Errorf("memdom: no node with id %q", id)
	}
	return d.Dispatch(n, eventType, value), nil
}

// Click dispatches a click to the first element (depth-first, document
// order) under the body with the given tag whose text content equals text.
// An empty text matches any element with the tag.
func (d *Document) Click(tag, text string) (int, error) {
	n := findElement(d.body, tag, text)
	if n == nil {
		return 0, fmt.Errorf("memdom: no <%s> with text %q", tag, text)
	}
	return d.Dispatch(n, "click", ""), nil
}

func findElement(n *Node, tag, text string) *Node {
	if n.typ == ElementNode && n.tag == tag && (text == "" || n.TextContent() == text) {
		return n
	}
	for _, c := range n.children {
		if found := findElement(c, tag, text); found != nil {
			return found
		}
	}
	return nil
}
