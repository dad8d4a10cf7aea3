package vdom

import "github.com/vango-dev/rangeui/pkg/surface"

// Test composites shared by the package tests.

type label struct {
	Component
	text string
}

func (l *label) Render() Node { return H("span", nil, l.text) }

type counter struct {
	Component
	n int
}

func (c *counter) Render() Node { return Span(nil, Textf("%d", c.n)) }

type wrapper struct {
	Component
	inner Composite
}

func (w *wrapper) Render() Node { return w.inner }

// passthrough re-emits the children it was given.
type passthrough struct{ Component }

func (p *passthrough) Render() Node { return H("div", nil, p.Children()) }

type selfish struct{ Component }

func (s *selfish) Render() Node { return s }

type endless struct{ Component }

func (e *endless) Render() Node { return &endless{} }

type panicky struct{ Component }

func (p *panicky) Render() Node { panic("boom") }

type empty struct{ Component }

func (e *empty) Render() Node { return nil }

type bogus struct{}

func (bogus) Kind() Kind { return Kind(99) }
func (bogus) isNode()    {}

type fakeUpdater struct {
	calls []Composite
	err   error
}

func (f *fakeUpdater) Update(c Composite) error {
	f.calls = append(f.calls, c)
	return f.err
}

func noop(surface.Event) {}
