package memdom

import (
	"strings"
	"testing"

	"github.com/vango-dev/rangeui/pkg/surface"
)

func TestOuterHTML(t *testing.T) {
	d := New()
	div := el(d, "div")
	div.SetAttribute("class", "box")
	div.SetAttribute("title", `say "hi"`)
	d.AppendChild(div, txt(d, "a < b & c"))
	d.AppendChild(div, el(d, "br"))

	want := `<div class="box" title="say &quot;hi&quot;">a &lt; b &amp; c<br></div>`
	if got := div.OuterHTML(); got != want {
		t.Errorf("OuterHTML() =\n%s\nwant\n%s", got, want)
	}
}

func TestSetAttributeOverwrites(t *testing.T) {
	d := New()
	div := el(d, "div")
	div.SetAttribute("class", "a")
	div.SetAttribute("class", "b")

	if len(div.Attrs()) != 1 {
		t.Fatalf("Attrs() = %v, want one attribute", div.Attrs())
	}
	if v, _ := div.Attribute("class"); v != "b" {
		t.Errorf("class = %q, want b", v)
	}
}

func TestHTMLPretty(t *testing.T) {
	d := New()
	ul := el(d, "ul")
	li := el(d, "li")
	d.AppendChild(ul, li)
	d.AppendChild(li, txt(d, "one"))

	got := ul.HTML(HTMLOptions{Pretty: true})
	want := "<ul>\n  <li>one</li>\n</ul>\n"
	if got != want {
		t.Errorf("HTML(pretty) = %q, want %q", got, want)
	}
}

func TestHTMLNodeIDs(t *testing.T) {
	d := New()
	btn := el(d, "button")
	btn.AddEventListener("click", func(surface.Event) {})
	span := el(d, "span")

	got := btn.HTML(HTMLOptions{NodeIDs: true})
	if !strings.Contains(got, `data-node="`+btn.ID()+`"`) {
		t.Errorf("HTML() = %q, missing data-node", got)
	}
	if got := span.HTML(HTMLOptions{NodeIDs: true}); strings.Contains(got, "data-node") {
		t.Errorf("non-interactive element got data-node: %q", got)
	}
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<b>", "&lt;b&gt;"},
		{"a&b", "a&amp;b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := escapeHTML(tt.in); got != tt.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
