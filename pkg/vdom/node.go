package vdom

// Kind is the node variant discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindComposite             // User-defined unit
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComposite:
		return "Composite"
	default:
		return "Unknown"
	}
}

// Node is a virtual node. The variant set is closed: *Element, *Text and
// types embedding Component.
type Node interface {
	Kind() Kind
	isNode()
}

// Element is a renderable markup node.
type Element struct {
	tag       string
	attrs     Attrs
	children  []Node
	vchildren []Node
	expanded  bool
}

// NewElement creates an element with no attributes or children.
func NewElement(tag string) *Element {
	return &Element{tag: tag, attrs: make(Attrs)}
}

// Kind implements Node.
func (e *Element) Kind() Kind { return KindElement }

func (e *Element) isNode() {}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Attrs returns the element's attributes. Values are string or *Handler.
// The map must not be modified; use SetAttribute.
func (e *Element) Attrs() Attrs { return e.attrs }

// Attr returns a single attribute value.
func (e *Element) Attr(name string) (any, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute sets an attribute, overwriting any previous value for name.
// See NormalizeAttr for the accepted value shapes.
func (e *Element) SetAttribute(name string, value any) {
	v, ok := NormalizeAttr(value)
	if !ok {
		delete(e.attrs, name)
		return
	}
	e.attrs[name] = v
}

// AppendChild appends a child node.
func (e *Element) AppendChild(n Node) {
	e.children = append(e.children, n)
}

// Children returns the declared children, composites included.
func (e *Element) Children() []Node { return e.children }

// LeafChildren returns the children expanded to leaf nodes by the last
// Expand, or nil if the element was never expanded.
func (e *Element) LeafChildren() []Node {
	if !e.expanded {
		return nil
	}
	return e.vchildren
}

// Expanded reports whether the leaf children have been computed.
func (e *Element) Expanded() bool { return e.expanded }

// Text is a renderable text leaf.
type Text struct {
	content string
}

// NewText creates a text node.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Kind implements Node.
func (t *Text) Kind() Kind { return KindText }

func (t *Text) isNode() {}

// Content returns the literal text.
func (t *Text) Content() string { return t.content }
