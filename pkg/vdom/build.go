package vdom

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/rangeui/internal/errors"
)

var compositeType = reflect.TypeOf((*Composite)(nil)).Elem()

// H instantiates a node from a declarative call.
//
// typ is a tag name, a Factory, any zero-argument function returning a
// Composite implementation (e.g. func() *Counter), or a Composite value used
// as is. Attributes are applied one by one through SetAttribute in sorted key
// order. Children are flattened depth-first: nil is skipped, a string becomes
// a *Text, slices ([]any, []Node, []string) are flattened recursively and
// nodes are appended in order.
//
// H panics with a *errors.RangeError when typ or a child has an unsupported
// type; a panicking factory propagates unchanged. Use Build to receive the
// failure as an error.
func H(typ any, attrs Attrs, children ...any) Node {
	node := instantiate(typ)

	setter := node.(interface{ SetAttribute(string, any) })
	for _, name := range attrs.SortedKeys() {
		setter.SetAttribute(name, attrs[name])
	}

	parent := node.(interface{ AppendChild(Node) })
	appendChildren(parent, children)

	return node
}

// CreateElement is an alias of H.
func CreateElement(typ any, attrs Attrs, children ...any) Node {
	return H(typ, attrs, children...)
}

// Build is H with failures returned as errors instead of panics. Errors that
// are not already a *errors.RangeError are wrapped in E009.
func Build(typ any, attrs Attrs, children ...any) (node Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			node = nil
			switch v := r.(type) {
			case *errors.RangeError:
				err = v
			case error:
				err = errors.New("E009").WithDetail("factory panicked").Wrap(v)
			default:
				err = errors.New("E009").WithDetail(fmt.Sprintf("factory panicked: %v", v))
			}
		}
	}()
	return H(typ, attrs, children...), nil
}

func instantiate(typ any) Node {
	switch t := typ.(type) {
	case string:
		return NewElement(t)
	case Factory:
		return checkComposite(t(), typ)
	case func() Composite:
		return checkComposite(t(), typ)
	case Composite:
		return checkComposite(t, typ)
	}

	if typ != nil {
		fv := reflect.ValueOf(typ)
		ft := fv.Type()
		if ft.Kind() == reflect.Func && ft.NumIn() == 0 && ft.NumOut() == 1 && ft.Out(0).Implements(compositeType) {
			out := fv.Call(nil)[0]
			if out.Kind() == reflect.Ptr && out.IsNil() {
				return checkComposite(nil, typ)
			}
			return checkComposite(out.Interface().(Composite), typ)
		}
	}

	panic(errors.New("E009").WithDetail(fmt.Sprintf("unsupported type %T", typ)))
}

func checkComposite(c Composite, typ any) Composite {
	if isNilNode(c) {
		panic(errors.New("E009").WithDetail(fmt.Sprintf("factory %T returned nil", typ)))
	}
	return c
}

func appendChildren(parent interface{ AppendChild(Node) }, children []any) {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case string:
			parent.AppendChild(NewText(v))
		case Node:
			if isNilNode(v) {
				continue
			}
			parent.AppendChild(v)
		case []any:
			appendChildren(parent, v)
		case []Node:
			for _, n := range v {
				if !isNilNode(n) {
					parent.AppendChild(n)
				}
			}
		case []string:
			for _, s := range v {
				parent.AppendChild(NewText(s))
			}
		default:
			panic(errors.New("E008").WithDetail(fmt.Sprintf("unsupported child type %T", child)))
		}
	}
}

// isNilNode reports whether n is nil or a typed nil pointer.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
