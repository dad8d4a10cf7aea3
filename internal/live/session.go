package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/rangeui/internal/demo"
	"github.com/vango-dev/rangeui/pkg/render"
	"github.com/vango-dev/rangeui/pkg/surface/memdom"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 1 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 8192
)

// ClientMessage is sent by the browser when an event fires on an element
// carrying a data-node id.
type ClientMessage struct {
	Node  string `json:"node"`
	Event string `json:"event"`
	Value string `json:"value,omitempty"`
}

// ServerMessageType is the kind of a ServerMessage.
type ServerMessageType string

const (
	MessageRender ServerMessageType = "render"
	MessageError  ServerMessageType = "error"
)

// ServerMessage is sent to the browser.
type ServerMessage struct {
	Type  ServerMessageType `json:"type"`
	HTML  string            `json:"html,omitempty"`
	Error string            `json:"error,omitempty"`
}

// Session is one websocket connection bound to a mounted view.
type Session struct {
	id     string
	view   demo.View
	conn   *websocket.Conn
	doc    *memdom.Document
	engine *render.Engine
	html   memdom.HTMLOptions
	ping   time.Duration
	logger *slog.Logger

	metrics *sessionMetrics
	tracer  trace.Tracer
}

func newSession(conn *websocket.Conn, view demo.View, s *Server) *Session {
	id := ulid.Make().String()
	logger := s.logger.With("session", id, "view", view.Name)
	doc := memdom.New()

	opts := []render.Option{render.WithLogger(logger)}
	if s.metrics != nil {
		opts = append(opts, render.WithMetrics(s.metrics))
	}

	return &Session{
		id:     id,
		view:   view,
		conn:   conn,
		doc:    doc,
		engine: render.New(doc, opts...),
		html:   s.htmlOptions(),
		ping:   s.cfg.Server.PingInterval,
		logger: logger,

		metrics: s.sessions,
		tracer:  s.tracer,
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Run mounts the view, sends the first render and serves events until the
// peer goes away or ctx is done. It returns nil on a normal close.
func (s *Session) Run(ctx context.Context) error {
	if err := s.engine.Render(s.view.Build(), s.doc.Body()); err != nil {
		s.send(ServerMessage{Type: MessageError, Error: err.Error()})
		return err
	}
	if err := s.sendRender(); err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return s.readMessages()
	})
	group.Go(func() error {
		return s.pingPong(groupCtx)
	})

	// Unblock the reader when the other side of the group fails or ctx ends.
	go func() {
		<-groupCtx.Done()
		s.conn.Close()
	}()

	err := group.Wait()
	if ctx.Err() != nil || isClose(err) {
		return nil
	}
	return err
}

// readMessages applies browser events in arrival order. It is the only
// goroutine touching the document and engine.
func (s *Session) readMessages() error {
	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(2 * s.ping))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(2 * s.ping))
	})

	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			return err
		}

		start := time.Now()
		err := s.handle(msg)
		s.metrics.event(time.Since(start).Seconds(), err)
		if err != nil {
			s.logger.Warn("event rejected", "node", msg.Node, "event", msg.Event, "error", err)
			if err := s.send(ServerMessage{Type: MessageError, Error: err.Error()}); err != nil {
				return err
			}
			continue
		}
		if err := s.sendRender(); err != nil {
			return err
		}
	}
}

func (s *Session) handle(msg ClientMessage) error {
	_, span := s.tracer.Start(context.Background(), "rangeui.live.Event",
		trace.WithAttributes(
			attribute.String("rangeui.session", s.id),
			attribute.String("rangeui.event", msg.Event),
		))
	defer span.End()

	if msg.Event == "" {
		err := fmt.Errorf("event type missing")
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	calls, err := s.doc.DispatchByID(msg.Node, msg.Event, msg.Value)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("rangeui.listeners", calls))
	s.logger.Debug("event", "node", msg.Node, "event", msg.Event, "listeners", calls)
	return nil
}

func (s *Session) pingPong(ctx context.Context) error {
	ticker := time.NewTicker(s.ping)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}
		}
	}
}

func (s *Session) sendRender() error {
	return s.send(ServerMessage{Type: MessageRender, HTML: bodyHTML(s.doc, s.html)})
}

// bodyHTML serializes the children of the document body.
func bodyHTML(doc *memdom.Document, opts memdom.HTMLOptions) string {
	var b strings.Builder
	for _, c := range doc.Body().Children() {
		c.WriteHTML(&b, opts)
	}
	return b.String()
}

func (s *Session) send(msg ServerMessage) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(msg)
}

// isClose reports whether err is an orderly end of the connection.
func isClose(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
