package live

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/rangeui/internal/config"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	cfg := config.New()
	cfg.Server.PingInterval = time.Second
	s := New(Options{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func dial(t *testing.T, ts *httptest.Server, view string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/" + view
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return msg
}

var plusButton = regexp.MustCompile(`<button data-node="([0-9A-Z]{26})">\+</button>`)

func TestIndex(t *testing.T) {
	_, ts := newTestServer(t)
	code, body := get(t, ts.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("GET / = %d", code)
	}
	for _, name := range []string{"counter", "toggle", "todo", "app"} {
		if !strings.Contains(body, `href="/view/`+name+`"`) {
			t.Errorf("index is missing %s", name)
		}
	}
}

func TestView(t *testing.T) {
	_, ts := newTestServer(t)

	code, body := get(t, ts.URL+"/view/counter")
	if code != http.StatusOK {
		t.Fatalf("GET /view/counter = %d", code)
	}
	if !strings.Contains(body, "<strong>0</strong>") {
		t.Errorf("page is missing the initial render:\n%s", body)
	}
	if !strings.Contains(body, `'/ws/' + "counter"`) {
		t.Error("page is missing the client script")
	}

	code, _ = get(t, ts.URL+"/view/missing")
	if code != http.StatusNotFound {
		t.Errorf("GET /view/missing = %d, want 404", code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	_, ts := newTestServer(t)

	if code, body := get(t, ts.URL+"/healthz"); code != http.StatusOK || body != "ok" {
		t.Errorf("GET /healthz = %d %q", code, body)
	}

	conn := dial(t, ts, "counter")
	read(t, conn)

	code, body := get(t, ts.URL+"/metrics")
	if code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", code)
	}
	for _, want := range []string{"rangeui_render_mounts_total", "rangeui_live_active_sessions 1"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := config.New()
	cfg.Metrics.Enabled = false
	s := New(Options{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	if code, _ := get(t, ts.URL+"/metrics"); code != http.StatusNotFound {
		t.Errorf("GET /metrics = %d, want 404", code)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dial(t, ts, "counter")

	first := read(t, conn)
	if first.Type != MessageRender {
		t.Fatalf("first message = %+v", first)
	}
	m := plusButton.FindStringSubmatch(first.HTML)
	if m == nil {
		t.Fatalf("no + button with a node id in %s", first.HTML)
	}

	if err := conn.WriteJSON(ClientMessage{Node: m[1], Event: "click"}); err != nil {
		t.Fatal(err)
	}
	next := read(t, conn)
	if next.Type != MessageRender || !strings.Contains(next.HTML, "<strong>1</strong>") {
		t.Errorf("after click = %+v", next)
	}
	if !strings.Contains(next.HTML, m[1]) {
		t.Error("the button should keep its node id across updates")
	}

	if s.Hub().Count() != 1 {
		t.Errorf("Hub().Count() = %d, want 1", s.Hub().Count())
	}
}

func TestSessionRejectsUnknownNode(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dial(t, ts, "toggle")
	read(t, conn)

	if err := conn.WriteJSON(ClientMessage{Node: "01ARZ3NDEKTSV4RRFFQ69G5FAV", Event: "click"}); err != nil {
		t.Fatal(err)
	}
	msg := read(t, conn)
	if msg.Type != MessageError || msg.Error == "" {
		t.Errorf("message = %+v, want an error", msg)
	}

	if err := conn.WriteJSON(ClientMessage{Node: "x"}); err != nil {
		t.Fatal(err)
	}
	if msg := read(t, conn); msg.Type != MessageError {
		t.Errorf("missing event type should be rejected: %+v", msg)
	}
}

func TestUnknownViewWebSocket(t *testing.T) {
	_, ts := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/missing"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Dial() should fail for an unknown view")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("response = %v, want 404", resp)
	}
}

func TestHubClose(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dial(t, ts, "counter")
	read(t, conn)

	s.Hub().Close()
	if s.Hub().Count() != 0 {
		t.Errorf("Count() = %d after Close", s.Hub().Count())
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("connection should be closed")
	}
}

func TestListenAndServeStops(t *testing.T) {
	cfg := config.New()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Metrics.Enabled = false
	s := New(Options{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not stop")
	}
}
