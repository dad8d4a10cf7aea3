// Package vdom provides the virtual node model of rangeui.
//
// A view is a tree of three node variants discriminated by Kind:
//
//   - *Element: a tag with attributes and ordered children
//   - *Text: literal text
//   - Composite: a user-defined unit that renders one child node
//
// # Building Trees
//
// H (also exported as CreateElement) mirrors a declarative call:
//
//	H("div", Attrs{"className": "card"},
//	    H("h1", nil, "Title"),
//	    items,          // []any or []Node, flattened
//	    nil,            // skipped
//	)
//
// # Composites
//
// User types become composites by embedding Component and implementing
// Render:
//
//	type Counter struct{ vdom.Component }
//
//	func (c *Counter) Render() vdom.Node {
//	    n, _ := state.Lookup(c.State(), "count")
//	    return H("span", nil, fmt.Sprint(n))
//	}
//
// # Leaf Trees
//
// Expand replaces every composite by its render output, recursively, until
// only elements and text remain. The result is the leaf vdom that the render
// package mounts and diffs. IsSameNode is the shallow equivalence used by the
// diff to choose between replacing a node and patching it in place.
package vdom
