package memdom

import "testing"

func TestRangeInsertIntoCollapsed(t *testing.T) {
	d := New()
	r := d.End(d.Body()).(*Range)
	if !r.Collapsed() {
		t.Fatal("End() should be collapsed")
	}

	a := txt(d, "a")
	r.Insert(a)
	if r.Start() != 0 || r.End() != 1 {
		t.Errorf("range = [%d,%d), want [0,1)", r.Start(), r.End())
	}
	if nodes := r.Nodes(); len(nodes) != 1 || nodes[0] != a {
		t.Errorf("Nodes() = %v", nodes)
	}
}

func TestRangeBoundariesFollowSiblingMutations(t *testing.T) {
	d := New()
	body := d.Body()
	a, b, c := txt(d, "a"), txt(d, "b"), txt(d, "c")
	d.AppendChild(body, a)
	d.AppendChild(body, b)
	d.AppendChild(body, c)

	rb := d.newRange(body, 1, 2)
	rc := d.newRange(body, 2, 3)

	// Insert before b: both ranges shift right.
	d.insertAt(body, txt(d, "z"), 0)
	if rb.Start() != 2 || rb.End() != 3 || rc.Start() != 3 || rc.End() != 4 {
		t.Errorf("after insert: b=%v c=%v", rb, rc)
	}

	// Insert at the b/c boundary: b is unchanged, the node lands in c.
	d.insertAt(body, txt(d, "y"), 3)
	if rb.Start() != 2 || rb.End() != 3 {
		t.Errorf("b moved: %v", rb)
	}
	if rc.Start() != 3 || rc.End() != 5 {
		t.Errorf("c = %v, want [3,5)", rc)
	}

	// Remove the leading node: both shift left.
	d.RemoveChild(body.Child(0))
	if rb.Start() != 1 || rb.End() != 2 || rc.Start() != 2 || rc.End() != 4 {
		t.Errorf("after remove: b=%v c=%v", rb, rc)
	}
	if got := body.TextContent(); got != "abyc" {
		t.Errorf("TextContent() = %q, want abyc", got)
	}
}

func TestRangeCollapsesWhenContainerRemoved(t *testing.T) {
	d := New()
	div := el(d, "div")
	d.AppendChild(d.Body(), el(d, "p"))
	d.AppendChild(d.Body(), div)
	d.AppendChild(div, txt(d, "x"))

	inner := d.End(div).(*Range)
	d.RemoveChild(div)

	if inner.Container() != d.Body() {
		t.Errorf("Container() = %v, want body", inner.Container())
	}
	if inner.Start() != 1 || inner.End() != 1 {
		t.Errorf("range = [%d,%d), want [1,1)", inner.Start(), inner.End())
	}
}

func TestRangeReplaceContentKeepsNeighbours(t *testing.T) {
	d := New()
	body := d.Body()
	old := txt(d, "old")
	next := txt(d, "next")
	d.AppendChild(body, old)
	d.AppendChild(body, next)

	r := d.newRange(body, 0, 1)
	right := d.newRange(body, 1, 2)

	n := txt(d, "new")
	r.Insert(n)
	r.StartAfter(n)
	r.Clear()
	r.Narrow(n)

	if got := body.TextContent(); got != "newnext" {
		t.Errorf("TextContent() = %q, want newnext", got)
	}
	if r.Start() != 0 || r.End() != 1 {
		t.Errorf("r = %v, want [0,1)", r)
	}
	if nodes := right.Nodes(); len(nodes) != 1 || nodes[0] != next {
		t.Errorf("right neighbour = %v", right)
	}
}

func TestRangeClear(t *testing.T) {
	d := New()
	for _, s := range []string{"a", "b", "c", "d"} {
		d.AppendChild(d.Body(), txt(d, s))
	}
	r := d.newRange(d.Body(), 1, 3)
	r.Clear()

	if got := d.Body().TextContent(); got != "ad" {
		t.Errorf("TextContent() = %q, want ad", got)
	}
	if !r.Collapsed() || r.Start() != 1 {
		t.Errorf("r = %v, want collapsed at 1", r)
	}
}

func TestRangeAfter(t *testing.T) {
	d := New()
	a := txt(d, "a")
	d.AppendChild(d.Body(), a)
	r := d.newRange(d.Body(), 0, 1)

	after := r.After().(*Range)
	if after.Start() != 1 || !after.Collapsed() {
		t.Errorf("After() = %v, want [1,1)", after)
	}

	b := txt(d, "b")
	after.Insert(b)
	if r.End() != 1 {
		t.Errorf("first range grew: %v", r)
	}
	if after.Start() != 1 || after.End() != 2 {
		t.Errorf("after = %v, want [1,2)", after)
	}
}

func TestRangeRelease(t *testing.T) {
	d := New()
	r := d.End(d.Body())
	if d.LiveRanges() != 1 {
		t.Fatalf("LiveRanges() = %d, want 1", d.LiveRanges())
	}
	r.Release()
	r.Release()
	if d.LiveRanges() != 0 {
		t.Errorf("LiveRanges() = %d, want 0", d.LiveRanges())
	}
}

func TestRangeNarrowDetachedPanics(t *testing.T) {
	d := New()
	r := d.End(d.Body())
	defer func() {
		if recover() == nil {
			t.Error("Narrow() should panic on a detached node")
		}
	}()
	r.Narrow(txt(d, "x"))
}
