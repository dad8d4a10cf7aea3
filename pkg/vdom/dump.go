package vdom

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is a serializable view of a node tree.
type Snapshot struct {
	Type     string            `yaml:"type"`
	Text     string            `yaml:"text,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []Snapshot        `yaml:"children,omitempty"`
}

// Dump snapshots n. Expanded elements contribute their leaf children, so the
// dump of a mounted tree shows what is on the host; composites that were
// never expanded are shown by type with their declared children.
func Dump(n Node) Snapshot {
	switch v := n.(type) {
	case *Text:
		return Snapshot{Type: "#text", Text: v.content}

	case *Element:
		s := Snapshot{Type: v.tag}
		if len(v.attrs) > 0 {
			s.Attrs = make(map[string]string, len(v.attrs))
			for name, value := range v.attrs {
				switch val := value.(type) {
				case string:
					s.Attrs[name] = val
				case *Handler:
					s.Attrs[name] = "<handler>"
				}
			}
		}
		children := v.children
		if v.expanded {
			children = v.vchildren
		}
		for _, c := range children {
			s.Children = append(s.Children, Dump(c))
		}
		return s

	case Composite:
		c := v.component()
		if c.leaf != nil {
			return Dump(c.leaf)
		}
		s := Snapshot{Type: fmt.Sprintf("%T", v)}
		for _, child := range c.children {
			s.Children = append(s.Children, Dump(child))
		}
		return s

	default:
		return Snapshot{Type: fmt.Sprintf("%T", n)}
	}
}

// YAML encodes the snapshot.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
