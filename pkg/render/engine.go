package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/rangeui/internal/errors"
	"github.com/vango-dev/rangeui/pkg/surface"
	"github.com/vango-dev/rangeui/pkg/vdom"
)

// Default tracer name for the engine.
const defaultTracerName = "rangeui/render"

// record is the mount record of one leaf node.
type record struct {
	target surface.Target // occupied range
	host   surface.Node   // host node inside the range
}

// Engine mounts and reconciles virtual trees on one host surface.
type Engine struct {
	host    surface.Host
	records map[vdom.Node]*record
	roots   map[surface.Node]vdom.Node // Last node rendered into each container
	busy    bool

	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

var _ vdom.Updater = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Default: slog.Default() with component=render.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics records mount and patch activity on m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithTracer sets the tracer. Default: the global provider's "rangeui/render".
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

// New creates an engine for host.
func New(host surface.Host, opts ...Option) *Engine {
	e := &Engine{
		host:    host,
		records: make(map[vdom.Node]*record),
		roots:   make(map[surface.Node]vdom.Node),
		logger:  slog.Default().With("component", "render"),
		tracer:  otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Host returns the engine's host surface.
func (e *Engine) Host() surface.Host { return e.host }

// Render clears container and mounts node into a target spanning the
// container's children. A tree previously rendered into container is
// unmounted first: its records and ranges are released and its composites
// report E004 on update.
func (e *Engine) Render(node vdom.Node, container surface.Node) error {
	_, span := e.tracer.Start(context.Background(), "rangeui.Render",
		trace.WithAttributes(attribute.String("rangeui.node", nodeName(node))))
	defer span.End()

	err := e.guard(func() error {
		target, err := e.host.Contents(container)
		if err != nil {
			return err
		}
		if old, ok := e.roots[container]; ok {
			delete(e.roots, container)
			if leaf := leafOf(old); leaf != nil {
				e.release(leaf, true, nil)
			}
		}
		target.Clear()
		if err := e.mount(node, target); err != nil {
			return err
		}
		e.roots[container] = node
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Error("render failed", "node", nodeName(node), "error", err)
		return err
	}
	e.logger.Debug("rendered", "node", nodeName(node), "records", len(e.records))
	return nil
}

// Mount mounts node into target.
func (e *Engine) Mount(node vdom.Node, target surface.Target) error {
	return e.guard(func() error {
		return e.mount(node, target)
	})
}

// Update re-renders c and patches the host with the difference between its
// previous and new leaf trees. It implements vdom.Updater.
func (e *Engine) Update(c vdom.Composite) error {
	name := nodeName(c)
	if e.busy {
		return errors.New("E005").WithSuggestion(fmt.Sprintf("%s.SetState was called during a render pass", name))
	}
	if _, ok := e.records[vdom.ComponentOf(c).Leaf()]; !ok {
		return errors.New("E004").WithSuggestion(fmt.Sprintf("mount %s with Render before calling SetState", name))
	}

	_, span := e.tracer.Start(context.Background(), "rangeui.Update",
		trace.WithAttributes(attribute.String("rangeui.component", name)))
	defer span.End()

	start := time.Now()
	p := &pass{}
	err := e.guard(func() error {
		r, err := vdom.Rerender(c)
		if err != nil {
			return err
		}
		p.prior = r
		return e.patch(r.Prev, r.Next, p)
	})
	elapsed := time.Since(start)
	st := p.stats

	span.SetAttributes(
		attribute.Int("rangeui.patch.replaced", st.replaced),
		attribute.Int("rangeui.patch.kept", st.kept),
		attribute.Int("rangeui.patch.appended", st.appended),
		attribute.Int("rangeui.patch.removed", st.removed),
	)
	e.metrics.observeUpdate(elapsed, st, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Error("update failed", "component", name, "error", err)
		return err
	}
	e.logger.Debug("updated",
		"component", name,
		"replaced", st.replaced,
		"kept", st.kept,
		"appended", st.appended,
		"removed", st.removed,
		"duration", elapsed,
	)
	return nil
}

// TargetOf returns the occupied range of a mounted node. A composite's range
// is the range of its leaf root.
func (e *Engine) TargetOf(n vdom.Node) (surface.Target, bool) {
	rec := e.lookup(n)
	if rec == nil {
		return nil, false
	}
	return rec.target, true
}

// HostNodeOf returns the host node a mounted node currently renders to.
func (e *Engine) HostNodeOf(n vdom.Node) (surface.Node, bool) {
	rec := e.lookup(n)
	if rec == nil {
		return nil, false
	}
	return rec.host, true
}

// Records returns the number of mounted leaf nodes being tracked.
func (e *Engine) Records() int { return len(e.records) }

func (e *Engine) lookup(n vdom.Node) *record {
	n = leafOf(n)
	if n == nil {
		return nil
	}
	return e.records[n]
}

// leafOf resolves a composite to its current leaf root.
func leafOf(n vdom.Node) vdom.Node {
	if c, ok := n.(vdom.Composite); ok {
		return vdom.ComponentOf(c).Leaf()
	}
	return n
}

// guard runs fn as a non-reentrant pass.
func (e *Engine) guard(fn func() error) error {
	if e.busy {
		return errors.New("E005")
	}
	e.busy = true
	defer func() { e.busy = false }()
	return fn()
}

func nodeName(n vdom.Node) string {
	switch v := n.(type) {
	case *vdom.Element:
		return "<" + v.Tag() + ">"
	case *vdom.Text:
		return "#text"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", n)
	}
}
