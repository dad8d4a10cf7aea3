package render

import (
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/rangeui/pkg/surface"
	"github.com/vango-dev/rangeui/pkg/surface/memdom"
	"github.com/vango-dev/rangeui/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T, opts ...Option) (*memdom.Document, *Engine) {
	t.Helper()
	doc := memdom.New()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return doc, New(doc, opts...)
}

func mustRender(t *testing.T, e *Engine, doc *memdom.Document, n vdom.Node) {
	t.Helper()
	if err := e.Render(n, doc.Body()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
}

func hostOf(t *testing.T, e *Engine, n vdom.Node) *memdom.Node {
	t.Helper()
	hn, ok := e.HostNodeOf(n)
	if !ok {
		t.Fatalf("no host node for %v", n)
	}
	return hn.(*memdom.Node)
}

// counter keeps its click handler in a field so re-renders patch in place.
type counter struct {
	vdom.Component
	inc *vdom.Handler
	err error
}

func newCounter() *counter {
	c := &counter{}
	c.inc = vdom.On(func(surface.Event) {
		c.err = c.SetState(map[string]any{"count": c.count() + 1})
	})
	return c
}

func (c *counter) count() int {
	n, _ := c.State()["count"].(int)
	return n
}

func (c *counter) Render() vdom.Node {
	return vdom.Div(nil,
		vdom.Span(nil, vdom.Textf("%d", c.count())),
		vdom.Button(vdom.Attrs{"onClick": c.inc}, "+"),
	)
}

// toggle swaps its root tag on every flip.
type toggle struct {
	vdom.Component
}

func (t *toggle) on() bool {
	v, _ := t.State()["on"].(bool)
	return v
}

func (t *toggle) flip() error {
	return t.SetState(map[string]any{"on": !t.on()})
}

func (t *toggle) Render() vdom.Node {
	if t.on() {
		return vdom.H("b", nil, "on")
	}
	return vdom.H("i", nil, "off")
}

// list renders one <li> per item in state.
type list struct {
	vdom.Component
}

func (l *list) set(items ...string) error {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return l.SetState(map[string]any{"items": out})
}

func (l *list) Render() vdom.Node {
	items, _ := l.State()["items"].([]any)
	return vdom.Ul(nil, vdom.Map(items, func(item any, i int) vdom.Node {
		return vdom.Li(nil, item.(string))
	}))
}

// shell renders its children inside a <main>.
type shell struct {
	vdom.Component
}

func (s *shell) Render() vdom.Node {
	return vdom.H("main", nil, s.Children())
}

// holder renders whatever composite it holds.
type holder struct {
	vdom.Component
	inner vdom.Composite
}

func (h *holder) Render() vdom.Node { return h.inner }

// reentrant calls SetState from Render once mounted.
type reentrant struct {
	vdom.Component
	err error
}

func (r *reentrant) Render() vdom.Node {
	if r.Mounted() {
		r.err = r.SetState(map[string]any{"again": true})
	}
	return vdom.P(nil, "r")
}

type exploding struct {
	vdom.Component
}

func (x *exploding) Render() vdom.Node {
	if v, _ := x.State()["boom"].(bool); v {
		panic("boom")
	}
	return vdom.P(nil, "fine")
}
