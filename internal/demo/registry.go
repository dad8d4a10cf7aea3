package demo

import (
	"sort"
	"strings"

	"github.com/vango-dev/rangeui/internal/errors"
	"github.com/vango-dev/rangeui/pkg/vdom"
)

// View is a named demo tree.
type View struct {
	Name        string
	Description string

	// Build returns a fresh, unmounted tree. Trees must not be shared
	// between engines.
	Build func() vdom.Node
}

// DefaultView is served at "/" and rendered when no view is named.
const DefaultView = "app"

var views = map[string]View{
	"counter": {
		Name:        "counter",
		Description: "Stable handlers: clicks patch only the count text",
		Build:       func() vdom.Node { return vdom.H(NewCounter, nil) },
	},
	"toggle": {
		Name:        "toggle",
		Description: "Tag change: the shown element is replaced",
		Build:       func() vdom.Node { return vdom.H(NewToggle, nil) },
	},
	"todo": {
		Name:        "todo",
		Description: "Child growth and truncation",
		Build:       func() vdom.Node { return vdom.H(NewTodoList, nil) },
	},
	"app": {
		Name:        "app",
		Description: "Composition with children passthrough",
		Build: func() vdom.Node {
			return vdom.H(NewApp, nil,
				vdom.Div(nil, "--------------"),
				vdom.Span(nil, "rangeui"),
				vdom.H(NewCounter, vdom.Attrs{"label": "clicks"}),
				vdom.H(NewToggle, nil),
				vdom.H(NewTodoList, nil),
			)
		},
	},
}

// Lookup returns the view registered under name.
func Lookup(name string) (View, error) {
	v, ok := views[name]
	if !ok {
		return View{}, errors.New("E160").
			WithDetail("No view named " + name).
			WithSuggestion("Available views: " + strings.Join(Names(), ", "))
	}
	return v, nil
}

// Names returns the registered view names in order.
func Names() []string {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered view, sorted by name.
func All() []View {
	out := make([]View, 0, len(views))
	for _, name := range Names() {
		out = append(out, views[name])
	}
	return out
}
