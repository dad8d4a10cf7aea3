package live

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/rangeui/internal/config"
	"github.com/vango-dev/rangeui/internal/demo"
	"github.com/vango-dev/rangeui/pkg/render"
	"github.com/vango-dev/rangeui/pkg/surface/memdom"
)

// Options configures the live server.
type Options struct {
	// Config is the loaded configuration. Defaults to config.New().
	Config *config.Config

	// Logger is the server logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives the engine and session metrics when metrics are
	// enabled. Defaults to a fresh registry.
	Registry *prometheus.Registry
}

// Server is the live preview server.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	router   chi.Router
	upgrader websocket.Upgrader
	hub      *Hub
	tracer   trace.Tracer

	registry *prometheus.Registry
	metrics  *render.Metrics
	sessions *sessionMetrics
}

// New creates a live server.
func New(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:    cfg,
		logger: logger.With("component", "live"),
		hub:    NewHub(),
		tracer: otel.Tracer("rangeui/live"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Local preview only
			},
		},
	}

	if cfg.Metrics.Enabled {
		s.registry = opts.Registry
		if s.registry == nil {
			s.registry = prometheus.NewRegistry()
		}
		s.metrics = render.NewMetrics(
			render.WithRegistry(s.registry),
			render.WithNamespace(cfg.Metrics.Namespace),
		)
		s.sessions = newSessionMetrics(s.registry, cfg.Metrics.Namespace)
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/view/{name}", s.handleView)
	r.Get("/ws/{name}", s.handleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	if s.registry != nil {
		r.Handle(s.cfg.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Hub returns the session hub.
func (s *Server) Hub() *Hub { return s.hub }

// ListenAndServe serves on the configured address until ctx is done, then
// closes every session and shuts the HTTP server down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address(),
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ReadTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func (s *Server) htmlOptions() memdom.HTMLOptions {
	return memdom.HTMLOptions{
		Pretty:  s.cfg.Render.Pretty,
		NodeIDs: true,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><title>rangeui</title></head><body><h1>rangeui views</h1><ul>")
	for _, v := range demo.All() {
		fmt.Fprintf(&b, `<li><a href="/view/%s">%s</a> %s</li>`,
			html.EscapeString(v.Name), html.EscapeString(v.Name), html.EscapeString(v.Description))
	}
	b.WriteString("</ul></body></html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(b.String()))
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	view, err := demo.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	// The page carries a static first render; the websocket session mounts
	// its own tree and takes over.
	doc := memdom.New()
	engine := render.New(doc, render.WithLogger(s.logger))
	if err := engine.Render(view.Build(), doc.Body()); err != nil {
		s.logger.Error("initial render failed", "view", view.Name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><title>")
	b.WriteString(html.EscapeString(view.Name))
	b.WriteString("</title></head><body>")
	b.WriteString(bodyHTML(doc, memdom.HTMLOptions{Pretty: s.cfg.Render.Pretty}))
	b.WriteString(ClientScript(view.Name))
	b.WriteString("</body></html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(b.String()))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	view, err := demo.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.sessions.wsError("upgrade")
		return
	}
	defer conn.Close()

	sess := newSession(conn, view, s)
	s.hub.add(sess)
	s.sessions.sessionOpened()
	defer func() {
		s.hub.remove(sess)
		s.sessions.sessionClosed()
	}()

	sess.logger.Info("session opened")
	if err := sess.Run(r.Context()); err != nil {
		s.sessions.wsError("session")
		sess.logger.Warn("session ended", "error", err)
		return
	}
	sess.logger.Info("session closed")
}
