package vdom

import (
	"testing"

	"github.com/vango-dev/rangeui/internal/errors"
)

func textsOf(t *testing.T, nodes []Node) []string {
	t.Helper()
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		txt, ok := n.(*Text)
		if !ok {
			t.Fatalf("child %T is not *Text", n)
		}
		out = append(out, txt.Content())
	}
	return out
}

func TestHFlattensChildren(t *testing.T) {
	n := H("div", nil, "a", []any{"b", nil, []any{"c"}})

	el, ok := n.(*Element)
	if !ok {
		t.Fatalf("H() = %T, want *Element", n)
	}
	got := textsOf(t, el.Children())
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHChildShapes(t *testing.T) {
	var nilText *Text
	n := H("ul", nil,
		[]string{"x", "y"},
		[]Node{NewText("z"), nil},
		nilText,
		If(false, NewText("hidden")),
		Map([]int{1, 2}, func(v, i int) Node { return Textf("%d", v) }),
	)

	got := textsOf(t, n.(*Element).Children())
	want := "x y z 1 2"
	if joined := join(got); joined != want {
		t.Errorf("children = %q, want %q", joined, want)
	}
}

func join(s []string) string {
	out := ""
	for i, v := range s {
		if i > 0 {
			out += " "
		}
		out += v
	}
	return out
}

func TestHElementAttributes(t *testing.T) {
	n := H("input", Attrs{
		"type":     "text",
		"disabled": true,
		"size":     3,
		"title":    nil,
		"onInput":  noop,
	}).(*Element)

	if v, _ := n.Attr("disabled"); v != "true" {
		t.Errorf("disabled = %v, want \"true\"", v)
	}
	if v, _ := n.Attr("size"); v != "3" {
		t.Errorf("size = %v, want \"3\"", v)
	}
	if _, ok := n.Attr("title"); ok {
		t.Error("nil attribute should not be stored")
	}
	if v, _ := n.Attr("onInput"); v == nil {
		t.Error("onInput should be stored")
	} else if _, ok := v.(*Handler); !ok {
		t.Errorf("onInput = %T, want *Handler", v)
	}
}

func TestHComposites(t *testing.T) {
	tests := []struct {
		name string
		typ  any
	}{
		{"Factory", Factory(func() Composite { return &label{text: "f"} })},
		{"func() Composite", func() Composite { return &label{text: "f"} }},
		{"typed constructor", func() *label { return &label{text: "f"} }},
		{"instance", &label{text: "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := H(tt.typ, Attrs{"id": 7}, "child")
			l, ok := n.(*label)
			if !ok {
				t.Fatalf("H() = %T, want *label", n)
			}
			if l.Prop("id") != 7 {
				t.Errorf("Prop(id) = %v, want raw 7", l.Prop("id"))
			}
			if len(l.Children()) != 1 {
				t.Errorf("Children() = %d, want 1", len(l.Children()))
			}
			if n.Kind() != KindComposite {
				t.Errorf("Kind() = %v", n.Kind())
			}
		})
	}
}

func TestCreateElementIsH(t *testing.T) {
	n := CreateElement("p", Attrs{"className": "x"}, "hi").(*Element)
	if n.Tag() != "p" || len(n.Children()) != 1 {
		t.Errorf("CreateElement() = %v", n)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		typ      any
		children []any
		code     string
	}{
		{"unsupported type", 42, nil, "E009"},
		{"nil type", nil, nil, "E009"},
		{"nil factory result", func() *label { return nil }, nil, "E009"},
		{"unsupported child", "div", []any{3.5}, "E008"},
		{"panicking factory", Factory(func() Composite { panic("nope") }), nil, "E009"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Build(tt.typ, nil, tt.children...)
			if n != nil {
				t.Errorf("Build() node = %v, want nil", n)
			}
			if !errors.HasCode(err, tt.code) {
				t.Errorf("Build() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestHPanicsWithRangeError(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*errors.RangeError); !ok {
			t.Errorf("recover() = %T, want *errors.RangeError", r)
		}
	}()
	H(struct{}{}, nil)
}
