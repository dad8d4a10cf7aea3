package vdom

import "fmt"

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Text {
	return NewText(fmt.Sprintf(format, args...))
}

// If returns the node if condition is true, nil otherwise. H skips nil
// children.
func If(condition bool, node Node) Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse Node) Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Map renders one node per item.
func Map[T any](items []T, render func(item T, i int) Node) []Node {
	out := make([]Node, 0, len(items))
	for i, item := range items {
		out = append(out, render(item, i))
	}
	return out
}
