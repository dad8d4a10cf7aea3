// Package surface defines the contracts between the rendering core and a host
// rendering surface.
//
// A host owns real nodes (a browser DOM, a terminal buffer, the in-memory
// document in package memdom). The core never touches host nodes directly:
// it creates them through a Host and places them through Targets.
//
// # Targets
//
// A Target is an addressable span inside one container's linear child
// sequence. Its boundaries are tracked by the host, so a Target stays valid
// while siblings before or after it are inserted or removed. Every mount and
// patch in the core is expressed with the Target primitives:
//
//	t.Insert(n)     // place n at the start boundary
//	t.StartAfter(n) // move the start boundary past n
//	t.Clear()       // remove everything between the boundaries
//	t.Narrow(n)     // wrap exactly n
//	t.After()       // zero-width target at t's end
package surface

// Node is an opaque host node.
type Node any

// Event is delivered to listeners registered on host elements.
type Event struct {
	// Type is the event name without the "on" prefix (e.g. "click").
	Type string

	// Target is the host node the event was dispatched to.
	Target Node

	// Value carries an optional payload (e.g. the value of an input).
	Value string
}

// Listener handles a host event.
type Listener func(Event)

// Element is a host node that accepts attributes and listeners.
type Element interface {
	SetAttribute(name, value string)
	AddEventListener(event string, l Listener)
}

// Target is a live span of a container's children.
type Target interface {
	// Clear removes every node between the boundaries.
	Clear()

	// Insert places n at the start boundary.
	Insert(n Node)

	// StartAfter moves the start boundary immediately after n.
	StartAfter(n Node)

	// Narrow redefines the boundaries to start immediately before n and end
	// immediately after it.
	Narrow(n Node)

	// After returns a new zero-width target positioned at this target's end.
	After() Target

	// Release stops the host from tracking the target.
	Release()
}

// Host creates host nodes and root targets.
type Host interface {
	CreateElement(tag string) Element
	CreateText(content string) Node

	// Contents returns a target spanning every current child of container.
	Contents(container Node) (Target, error)

	// End returns a zero-width target after the last child of container.
	End(container Node) Target
}
