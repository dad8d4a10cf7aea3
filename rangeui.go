// Package rangeui provides the public API for the rangeui rendering engine.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/rangeui"
//
// Usage:
//
//	type Counter struct {
//	    rangeui.Component
//	    inc *rangeui.Handler
//	}
//
//	func (c *Counter) Render() rangeui.Node {
//	    return rangeui.H("button", rangeui.Attrs{"onClick": c.inc}, "+")
//	}
//
//	doc := memdom.New()
//	engine, err := rangeui.Render(rangeui.H(NewCounter, nil), doc.Body(), doc)
package rangeui

import (
	"github.com/vango-dev/rangeui/pkg/render"
	"github.com/vango-dev/rangeui/pkg/surface"
	"github.com/vango-dev/rangeui/pkg/vdom"
)

// =============================================================================
// Node model (re-export from pkg/vdom)
// =============================================================================

// Node is a virtual node: an element, a text or a composite.
type Node = vdom.Node

// Attrs holds the attributes or props passed to H.
type Attrs = vdom.Attrs

// Component is embedded by every composite.
type Component = vdom.Component

// Composite is a user-defined view unit.
type Composite = vdom.Composite

// Factory constructs a composite for H.
type Factory = vdom.Factory

// Handler is an event handler attribute value.
type Handler = vdom.Handler

// Event is delivered to handlers.
type Event = surface.Event

// On wraps fn in a new Handler. Store the result in a field to keep it
// stable across renders.
var On = vdom.On

// H instantiates a node from a declarative call.
//
// Example:
//
//	rangeui.H("ul", nil, rangeui.Map(items, func(s string, i int) rangeui.Node {
//	    return rangeui.H("li", nil, s)
//	}))
var H = vdom.H

// CreateElement is an alias of H.
var CreateElement = vdom.CreateElement

// Build is H with failures returned as errors.
var Build = vdom.Build

// Text creates a text node.
func Text(content string) Node { return vdom.NewText(content) }

// Textf creates a formatted text node.
func Textf(format string, args ...any) Node { return vdom.Textf(format, args...) }

// If returns node when condition is true, nil otherwise.
var If = vdom.If

// Map renders one node per item.
func Map[T any](items []T, fn func(item T, i int) Node) []Node {
	return vdom.Map(items, fn)
}

// =============================================================================
// Engine (re-export from pkg/render)
// =============================================================================

// Engine mounts and reconciles trees on a host surface.
type Engine = render.Engine

// Option configures an Engine.
type Option = render.Option

// WithLogger sets the engine's logger.
var WithLogger = render.WithLogger

// WithMetrics records mount and patch activity.
var WithMetrics = render.WithMetrics

// WithTracer sets the engine's tracer.
var WithTracer = render.WithTracer

// Render creates an engine for host, clears container and mounts node into
// it. The returned engine owns every composite in the tree: SetState calls
// on them update the host through it.
func Render(node Node, container surface.Node, host surface.Host, opts ...Option) (*Engine, error) {
	e := render.New(host, opts...)
	if err := e.Render(node, container); err != nil {
		return nil, err
	}
	return e, nil
}
