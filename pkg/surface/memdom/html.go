package memdom

import (
	"bytes"
	"io"
	"strings"
)

// HTMLOptions configures serialization.
type HTMLOptions struct {
	// Pretty indents block children one level per depth.
	Pretty bool

	// Indent is the per-level indentation in pretty mode (default two spaces).
	Indent string

	// NodeIDs emits a data-node attribute carrying the node id on every
	// element with listeners, so a remote client can address events to it.
	NodeIDs bool
}

// OuterHTML serializes n and its subtree.
func (n *Node) OuterHTML() string {
	return n.HTML(HTMLOptions{})
}

// InnerHTML serializes n's children.
func (n *Node) InnerHTML() string {
	var buf bytes.Buffer
	w := newWriter(&buf, HTMLOptions{})
	for _, c := range n.children {
		w.node(c, 0)
	}
	return buf.String()
}

// HTML serializes n with the given options.
func (n *Node) HTML(opts HTMLOptions) string {
	var buf bytes.Buffer
	n.WriteHTML(&buf, opts)
	return buf.String()
}

// WriteHTML streams the serialization of n to w.
func (n *Node) WriteHTML(w io.Writer, opts HTMLOptions) {
	newWriter(w, opts).node(n, 0)
}

type htmlWriter struct {
	w    io.Writer
	opts HTMLOptions
}

func newWriter(w io.Writer, opts HTMLOptions) *htmlWriter {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	return &htmlWriter{w: w, opts: opts}
}

func (h *htmlWriter) write(s string) {
	io.WriteString(h.w, s)
}

func (h *htmlWriter) node(n *Node, depth int) {
	if n.typ == TextNode {
		h.write(escapeHTML(n.text))
		return
	}

	if h.opts.Pretty && depth > 0 {
		h.write(strings.Repeat(h.opts.Indent, depth))
	}

	h.write("<")
	h.write(n.tag)
	for _, a := range n.attrs {
		h.write(" ")
		h.write(a.Name)
		h.write(`="`)
		h.write(escapeAttr(a.Value))
		h.write(`"`)
	}
	if h.opts.NodeIDs && n.IsInteractive() {
		h.write(` data-node="`)
		h.write(n.ID())
		h.write(`"`)
	}
	h.write(">")

	if isVoidElement(n.tag) {
		if h.opts.Pretty {
			h.write("\n")
		}
		return
	}

	block := h.opts.Pretty && hasElementChild(n)
	if block {
		h.write("\n")
	}
	for _, c := range n.children {
		if block && c.typ == TextNode {
			h.write(strings.Repeat(h.opts.Indent, depth+1))
			h.node(c, depth+1)
			h.write("\n")
			continue
		}
		h.node(c, depth+1)
	}
	if block {
		h.write(strings.Repeat(h.opts.Indent, depth))
	}

	h.write("</")
	h.write(n.tag)
	h.write(">")
	if h.opts.Pretty {
		h.write("\n")
	}
}

func hasElementChild(n *Node) bool {
	for _, c := range n.children {
		if c.typ == ElementNode {
			return true
		}
	}
	return false
}

// isVoidElement returns true for elements that never have a closing tag.
func isVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "source", "track", "wbr":
		return true
	}
	return false
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for an attribute value. Whitespace that could break
// attribute parsing is escaped as well.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
