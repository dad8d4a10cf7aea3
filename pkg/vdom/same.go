package vdom

// IsSameNode is the shallow equivalence the reconciler uses to decide
// between replacing a node and patching it in place. Two leaf nodes are the
// same when they have the same variant and tag, the same number of
// attributes, an identical old value for every attribute of next, and for
// text nodes identical content. Children are not compared.
func IsSameNode(prev, next Node) bool {
	if isNilNode(prev) || isNilNode(next) {
		return false
	}
	if prev.Kind() != next.Kind() {
		return false
	}

	switch p := prev.(type) {
	case *Text:
		return p.content == next.(*Text).content

	case *Element:
		n := next.(*Element)
		if p.tag != n.tag {
			return false
		}
		if len(p.attrs) != len(n.attrs) {
			return false
		}
		for name, value := range n.attrs {
			old, ok := p.attrs[name]
			if !ok || !attrEqual(old, value) {
				return false
			}
		}
		return true

	default:
		return false
	}
}
