package vdom

import (
	"github.com/vango-dev/rangeui/pkg/state"
)

// Composite is a user-defined view unit. Types satisfy it by embedding
// Component and implementing Render.
type Composite interface {
	Node

	// Render returns the unit's single child node. It may return another
	// composite; expansion continues until an element or text is reached.
	Render() Node

	component() *Component
}

// Factory constructs a composite for H.
type Factory func() Composite

// Updater re-renders a mounted composite and patches the host. The render
// package's Engine implements it.
type Updater interface {
	Update(c Composite) error
}

// Component is the embeddable base of every composite. It owns the unit's
// props, children and state, and the leaf tree cached by the last expansion.
type Component struct {
	props    Attrs
	children []Node
	state    map[string]any

	self    Composite
	leaf    Node
	slots   []*Node
	updater Updater
}

// Kind implements Node.
func (c *Component) Kind() Kind { return KindComposite }

func (c *Component) isNode() {}

func (c *Component) component() *Component { return c }

// SetAttribute stores a prop. Composite props keep their raw value.
func (c *Component) SetAttribute(name string, value any) {
	c.SetProps(name, value)
}

// SetProps stores a prop. It does not re-render.
func (c *Component) SetProps(name string, value any) {
	if c.props == nil {
		c.props = make(Attrs)
	}
	c.props[name] = value
}

// Props returns the unit's props.
func (c *Component) Props() Attrs {
	if c.props == nil {
		c.props = make(Attrs)
	}
	return c.props
}

// Prop returns a single prop, or nil.
func (c *Component) Prop(name string) any {
	return c.props[name]
}

// AppendChild appends a child passed to H.
func (c *Component) AppendChild(n Node) {
	c.children = append(c.children, n)
}

// Children returns the children passed to H, for use in Render.
func (c *Component) Children() []Node { return c.children }

// State returns the unit's state object, or nil.
func (c *Component) State() map[string]any { return c.state }

// SetState deep-merges partial into the state (see state.Merge) and then
// re-renders the unit through its updater. No equality check is made: every
// call on a mounted unit runs a full update pass. On a unit that has not been
// mounted yet only the merge happens.
func (c *Component) SetState(partial map[string]any) error {
	c.state = state.Merge(c.state, partial)
	if c.updater == nil || c.self == nil {
		return nil
	}
	return c.updater.Update(c.self)
}

// Leaf returns the leaf tree produced by the last expansion, or nil.
func (c *Component) Leaf() Node { return c.leaf }

// Mounted reports whether the unit has been bound to an updater and has a
// leaf tree.
func (c *Component) Mounted() bool {
	return c.updater != nil && c.leaf != nil
}

// Updater returns the updater bound at expansion time.
func (c *Component) Updater() Updater { return c.updater }

// ComponentOf returns the Component embedded in c.
func ComponentOf(c Composite) *Component {
	return c.component()
}
