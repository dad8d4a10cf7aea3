package demo

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/rangeui/internal/errors"
	"github.com/vango-dev/rangeui/pkg/render"
	"github.com/vango-dev/rangeui/pkg/surface/memdom"
)

func mount(t *testing.T, name string) *memdom.Document {
	t.Helper()
	v, err := Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	doc := memdom.New()
	e := render.New(doc, render.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err := e.Render(v.Build(), doc.Body()); err != nil {
		t.Fatalf("Render(%s) error = %v", name, err)
	}
	return doc
}

func click(t *testing.T, doc *memdom.Document, text string) {
	t.Helper()
	if _, err := doc.Click("button", text); err != nil {
		t.Fatal(err)
	}
}

func TestCounter(t *testing.T) {
	doc := mount(t, "counter")
	strong := doc.Body().Child(0).Child(2)

	click(t, doc, "+")
	click(t, doc, "+")
	click(t, doc, "-")

	want := `<div class="counter"><span>count</span><button>-</button><strong>1</strong><button>+</button></div>`
	if got := doc.Body().InnerHTML(); got != want {
		t.Errorf("InnerHTML() =\n%s\nwant\n%s", got, want)
	}
	if doc.Body().Child(0).Child(2) != strong {
		t.Error("the <strong> element should be patched in place")
	}
}

func TestToggle(t *testing.T) {
	doc := mount(t, "toggle")
	if !strings.Contains(doc.Body().InnerHTML(), "<em>off</em>") {
		t.Fatalf("initial = %s", doc.Body().InnerHTML())
	}

	click(t, doc, "toggle")
	if got := doc.Body().InnerHTML(); !strings.Contains(got, "<strong>ON</strong>") || strings.Contains(got, "<em>") {
		t.Errorf("after toggle = %s", got)
	}
}

func TestTodoList(t *testing.T) {
	doc := mount(t, "todo")
	input := doc.Body().Child(0).Child(0)

	doc.Dispatch(input, "input", "milk")
	click(t, doc, "add")
	click(t, doc, "add")
	click(t, doc, "add")

	list := func() string { return doc.Body().Child(0).Child(5).OuterHTML() }
	if got := list(); got != "<ul><li>milk</li><li>item 2</li><li>item 3</li></ul>" {
		t.Errorf("list = %s", got)
	}
	if got := doc.Body().Child(0).Child(4).TextContent(); got != "3 items" {
		t.Errorf("count = %q", got)
	}

	click(t, doc, "pop")
	if got := list(); got != "<ul><li>milk</li><li>item 2</li></ul>" {
		t.Errorf("after pop = %s", got)
	}

	click(t, doc, "clear")
	if got := list(); got != "<ul></ul>" {
		t.Errorf("after clear = %s", got)
	}
	if doc.Body().Child(0).Child(0) != input {
		t.Error("the input should survive every update")
	}
}

func TestApp(t *testing.T) {
	doc := mount(t, "app")
	html := doc.Body().InnerHTML()

	for _, want := range []string{
		"<h1>rangeui</h1>",
		"<div>--------------</div>",
		"<span>rangeui</span>",
		`<div class="counter">`,
		`<div class="toggle">`,
		`<div class="todo">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("app is missing %s", want)
		}
	}

	click(t, doc, "+")
	if !strings.Contains(doc.Body().InnerHTML(), "<strong>1</strong>") {
		t.Error("nested counter should update")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		v, err := Lookup(name)
		if err != nil || v.Name != name || v.Build == nil {
			t.Errorf("Lookup(%q) = %+v, %v", name, v, err)
		}
	}

	_, err := Lookup("nope")
	if !errors.HasCode(err, "E160") {
		t.Errorf("Lookup(nope) error = %v, want E160", err)
	}
	if _, err := Lookup(DefaultView); err != nil {
		t.Errorf("default view missing: %v", err)
	}
	if len(All()) != len(Names()) {
		t.Error("All() and Names() disagree")
	}
}

func TestStateOf(t *testing.T) {
	c := NewCounter()
	if got := stateOf[int](&c.Component, "count"); got != 0 {
		t.Errorf("stateOf[int](count) = %d, want 0", got)
	}
	if got := stateOf[string](&c.Component, "count"); got != "" {
		t.Errorf("stateOf[string](count) = %q, want zero value", got)
	}
	if got := stateOf[int](&c.Component, "missing"); got != 0 {
		t.Errorf("stateOf[int](missing) = %d, want 0", got)
	}
}
