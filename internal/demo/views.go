package demo

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/rangeui/pkg/state"
	"github.com/vango-dev/rangeui/pkg/surface"
	"github.com/vango-dev/rangeui/pkg/vdom"
)

// setState applies partial to c and logs a failed update. Handlers have no
// caller to return the error to.
func setState(c vdom.Composite, partial map[string]any) {
	if err := vdom.ComponentOf(c).SetState(partial); err != nil {
		slog.Default().Error("state update failed", "component", fmt.Sprintf("%T", c), "error", err)
	}
}

// stateOf reads key from c's state as a T, or the zero T when it is missing
// or of another type.
func stateOf[T any](c *vdom.Component, key string) T {
	v, _ := state.Lookup(c.State(), key)
	t, _ := v.(T)
	return t
}

// =============================================================================
// Counter
// =============================================================================

// Counter shows a number with decrement and increment buttons. Props: label.
type Counter struct {
	vdom.Component
	inc *vdom.Handler
	dec *vdom.Handler
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	c := &Counter{}
	c.SetState(map[string]any{"count": 0})
	c.inc = vdom.On(func(surface.Event) { setState(c, map[string]any{"count": c.Count() + 1}) })
	c.dec = vdom.On(func(surface.Event) { setState(c, map[string]any{"count": c.Count() - 1}) })
	return c
}

// Count returns the current value.
func (c *Counter) Count() int {
	return stateOf[int](&c.Component, "count")
}

func (c *Counter) Render() vdom.Node {
	label, _ := c.Prop("label").(string)
	if label == "" {
		label = "count"
	}
	return vdom.Div(vdom.Attrs{"className": "counter"},
		vdom.Span(nil, label),
		vdom.Button(vdom.Attrs{"onClick": c.dec}, "-"),
		vdom.Strong(nil, vdom.Textf("%d", c.Count())),
		vdom.Button(vdom.Attrs{"onClick": c.inc}, "+"),
	)
}

// =============================================================================
// Toggle
// =============================================================================

// Toggle flips between two differently tagged elements.
type Toggle struct {
	vdom.Component
	flip *vdom.Handler
}

// NewToggle creates a toggle in the off position.
func NewToggle() *Toggle {
	t := &Toggle{}
	t.flip = vdom.On(func(surface.Event) { setState(t, map[string]any{"on": !t.On()}) })
	return t
}

// On reports the toggle position.
func (t *Toggle) On() bool {
	return stateOf[bool](&t.Component, "on")
}

func (t *Toggle) Render() vdom.Node {
	return vdom.Div(vdom.Attrs{"className": "toggle"},
		vdom.Button(vdom.Attrs{"onClick": t.flip}, "toggle"),
		vdom.IfElse(t.On(),
			vdom.Strong(nil, "ON"),
			vdom.Em(nil, "off"),
		),
	)
}

// =============================================================================
// TodoList
// =============================================================================

// TodoList keeps a draft and a list of items. Items are only added at and
// removed from the end.
type TodoList struct {
	vdom.Component
	input *vdom.Handler
	add   *vdom.Handler
	pop   *vdom.Handler
	clear *vdom.Handler
}

// NewTodoList creates an empty list.
func NewTodoList() *TodoList {
	l := &TodoList{}
	l.SetState(map[string]any{"draft": "", "items": []any{}})
	l.input = vdom.On(func(ev surface.Event) {
		setState(l, map[string]any{"draft": ev.Value})
	})
	l.add = vdom.On(func(surface.Event) {
		items := l.Items()
		text := l.Draft()
		if text == "" {
			text = fmt.Sprintf("item %d", len(items)+1)
		}
		setState(l, map[string]any{"draft": "", "items": append(toAny(items), text)})
	})
	l.pop = vdom.On(func(surface.Event) {
		items := l.Items()
		if len(items) == 0 {
			return
		}
		setState(l, map[string]any{"items": toAny(items[:len(items)-1])})
	})
	l.clear = vdom.On(func(surface.Event) {
		setState(l, map[string]any{"items": []any{}})
	})
	return l
}

// Items returns the list entries.
func (l *TodoList) Items() []string {
	raw := stateOf[[]any](&l.Component, "items")
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Draft returns the pending input text.
func (l *TodoList) Draft() string {
	return stateOf[string](&l.Component, "draft")
}

func (l *TodoList) Render() vdom.Node {
	items := l.Items()
	return vdom.Div(vdom.Attrs{"className": "todo"},
		vdom.Input(vdom.Attrs{"placeholder": "new item", "onInput": l.input}),
		vdom.Button(vdom.Attrs{"onClick": l.add}, "add"),
		vdom.Button(vdom.Attrs{"onClick": l.pop}, "pop"),
		vdom.Button(vdom.Attrs{"onClick": l.clear}, "clear"),
		vdom.P(nil, vdom.Textf("%d items", len(items))),
		vdom.Ul(nil, vdom.Map(items, func(item string, i int) vdom.Node {
			return vdom.Li(nil, item)
		})),
	)
}

func toAny(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}

// =============================================================================
// App
// =============================================================================

// App renders a title above the children it was given.
type App struct {
	vdom.Component
}

// NewApp creates an App.
func NewApp() *App { return &App{} }

func (a *App) Render() vdom.Node {
	title, _ := a.Prop("title").(string)
	if title == "" {
		title = "rangeui"
	}
	return vdom.Div(nil,
		vdom.H1(nil, title),
		a.Children(),
	)
}
