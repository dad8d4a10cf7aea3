package vdom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vango-dev/rangeui/pkg/surface"
)

// Attrs holds the attributes passed to H. Element attribute values are
// normalized to string or *Handler; composite props keep the raw value.
type Attrs map[string]any

// ClassAlias is the attribute name translated to the host's "class".
const ClassAlias = "className"

// Handler is an event handler attribute value. Handlers compare by pointer
// identity: keep one *Handler in a struct field to let re-renders patch in
// place, or pass a func literal to get a fresh handler on every render.
type Handler struct {
	fn surface.Listener
}

// On wraps fn in a new Handler.
func On(fn func(surface.Event)) *Handler {
	return &Handler{fn: fn}
}

// Handle invokes the handler. A nil handler is a no-op.
func (h *Handler) Handle(ev surface.Event) {
	if h == nil || h.fn == nil {
		return
	}
	h.fn(ev)
}

// Listener returns the handler as a host listener.
func (h *Handler) Listener() surface.Listener {
	return h.Handle
}

// NormalizeAttr converts an element attribute value to its stored shape.
//
//   - string and *Handler are kept
//   - func(surface.Event), surface.Listener and func() become a new *Handler
//   - bool, integers and floats are formatted
//   - fmt.Stringer uses String()
//   - nil (and a nil *Handler) reports ok=false, which removes the attribute
//
// Anything else is formatted with %v.
func NormalizeAttr(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		return v, true
	case *Handler:
		if v == nil {
			return nil, false
		}
		return v, true
	case func(surface.Event):
		return On(v), true
	case surface.Listener:
		return On(v), true
	case func():
		return On(func(surface.Event) { v() }), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return propToString(v), true
	}
}

// propToString converts a scalar prop value to its attribute text.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// EventName reports whether attr follows the "on<Event>" convention and
// returns the host event name: the remainder with its first letter lowered
// ("onClick" -> "click", "onmouseover" -> "mouseover"). The prefix match is
// case-sensitive and requires at least one character after "on".
func EventName(attr string) (string, bool) {
	if len(attr) <= 2 || !strings.HasPrefix(attr, "on") {
		return "", false
	}
	rest := attr[2:]
	r, size := utf8.DecodeRuneInString(rest)
	return string(unicode.ToLower(r)) + rest[size:], true
}

// HostAttrName maps an attribute name to the name set on the host element.
func HostAttrName(name string) string {
	if name == ClassAlias {
		return "class"
	}
	return name
}

// SortedKeys returns the attribute names in lexical order.
func (a Attrs) SortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// attrEqual compares two normalized attribute values: strings by value,
// handlers by identity.
func attrEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case *Handler:
		bv, ok := b.(*Handler)
		return ok && av == bv
	default:
		return false
	}
}
