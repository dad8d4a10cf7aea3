// Package render mounts virtual trees onto a host surface and keeps the
// surface in sync as composite state changes.
//
// # Mounting
//
// Engine.Render clears a host container and mounts a node into it. Each
// mounted leaf node gets an occupied range: the surface.Target that wraps
// exactly its host node. Ranges are kept in a side table keyed by node
// identity, never on the nodes themselves.
//
// # Updating
//
// Engine.Update (triggered by Component.SetState) re-renders a composite,
// diffs the new leaf tree against the cached one and patches the host:
//
//   - not vdom.IsSameNode: the new node is mounted into the old node's range
//   - same: the new node inherits the old range and children are walked
//     positionally; extra children are appended after the last sibling and
//     missing ones are removed
//
// Everything runs synchronously on the caller's goroutine. An Engine is not
// safe for concurrent use and rejects re-entrant updates.
package render
