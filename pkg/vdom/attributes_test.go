package vdom

import (
	"testing"

	"github.com/vango-dev/rangeui/pkg/surface"
)

type stringer struct{}

func (stringer) String() string { return "str" }

func TestNormalizeAttr(t *testing.T) {
	h := On(noop)
	var nilHandler *Handler

	tests := []struct {
		name   string
		value  any
		want   any
		wantOK bool
	}{
		{"string", "x", "x", true},
		{"handler", h, h, true},
		{"nil", nil, nil, false},
		{"nil handler", nilHandler, nil, false},
		{"bool", false, "false", true},
		{"int", 12, "12", true},
		{"int64", int64(-4), "-4", true},
		{"float", 1.5, "1.5", true},
		{"stringer", stringer{}, "str", true},
		{"other", []int{1}, "[1]", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeAttr(tt.value)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormalizeAttr(%v) = %v, %v; want %v, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeAttrWrapsFuncs(t *testing.T) {
	calls := 0
	values := []any{
		func(surface.Event) { calls++ },
		surface.Listener(func(surface.Event) { calls++ }),
		func() { calls++ },
	}
	for _, v := range values {
		got, ok := NormalizeAttr(v)
		h, isHandler := got.(*Handler)
		if !ok || !isHandler {
			t.Fatalf("NormalizeAttr(%T) = %T", v, got)
		}
		h.Handle(surface.Event{Type: "click"})
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestNilHandlerIsNoop(t *testing.T) {
	var h *Handler
	h.Handle(surface.Event{})
	(&Handler{}).Listener()(surface.Event{})
}

func TestEventName(t *testing.T) {
	tests := []struct {
		attr   string
		want   string
		wantOK bool
	}{
		{"onClick", "click", true},
		{"onmouseover", "mouseover", true},
		{"onKeyDown", "keyDown", true},
		{"on", "", false},
		{"On", "", false},
		{"onclick", "click", true},
		{"class", "", false},
		{"one", "e", true},
	}
	for _, tt := range tests {
		got, ok := EventName(tt.attr)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("EventName(%q) = %q, %v; want %q, %v", tt.attr, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestHostAttrName(t *testing.T) {
	if got := HostAttrName("className"); got != "class" {
		t.Errorf("HostAttrName(className) = %q", got)
	}
	if got := HostAttrName("id"); got != "id" {
		t.Errorf("HostAttrName(id) = %q", got)
	}
}

func TestSetAttributeNilDeletes(t *testing.T) {
	el := NewElement("div")
	el.SetAttribute("id", "a")
	el.SetAttribute("id", nil)
	if _, ok := el.Attr("id"); ok {
		t.Error("nil value should delete the attribute")
	}
}

func TestSortedKeys(t *testing.T) {
	keys := Attrs{"b": 1, "a": 2, "c": 3}.SortedKeys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("SortedKeys() = %v", keys)
	}
	if keys := Attrs(nil).SortedKeys(); len(keys) != 0 {
		t.Errorf("nil SortedKeys() = %v", keys)
	}
}
