// Package live serves the demo views over HTTP and keeps each browser tab in
// sync with a server-side engine over a websocket.
//
// Every websocket connection owns one session: a memdom document, an engine
// and a freshly built view tree. Browser events are sent as JSON naming the
// data-node id of the target element; the session dispatches them to its
// document on the connection's read goroutine, so a session's document and
// engine are only ever touched by one goroutine. After each event the
// session sends back the full serialized body.
//
// # Routes
//
//	GET /             index of views
//	GET /view/{name}  initial HTML for a view plus the client script
//	GET /ws/{name}    websocket session
//	GET /healthz      liveness
//	GET /metrics      Prometheus metrics (path configurable)
package live
