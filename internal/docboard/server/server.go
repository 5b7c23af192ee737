// Package server implements the docs board: an HTTP server that renders the
// extracted docs and pushes live-reload messages over a websocket when the
// watched sources change.
package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mkrogh/annodoc/internal/config"
	"github.com/mkrogh/annodoc/internal/docstore"
	"github.com/mkrogh/annodoc/internal/query"
	"github.com/mkrogh/annodoc/internal/render"
	"github.com/mkrogh/annodoc/internal/scanner"
)

// Server holds the current extraction state and the connected clients.
type Server struct {
	root string
	cfg  config.Config

	mu      sync.RWMutex
	entries []docstore.Entry
	doc     string

	clients   map[*websocket.Conn]struct{}
	clientsMu sync.Mutex

	upgrader websocket.Upgrader
}

// New creates a board server for the given repo root.
func New(root string, cfg config.Config) *Server {
	return &Server{
		root:    root,
		cfg:     cfg,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// Local-only board, any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Rescan re-extracts docs from the source tree and refreshes the rendered
// document. Connected clients are told to reload.
func (s *Server) Rescan() error {
	res, err := scanner.Scan(s.root, s.cfg)
	if err != nil {
		return fmt.Errorf("rescan: %w", err)
	}

	entries := scanner.Entries(res, time.Now().UTC())
	query.SortByLocation(entries)
	doc := render.Markdown(s.cfg.Render.GetTitle(), entries)

	s.mu.Lock()
	s.entries = entries
	s.doc = doc
	s.mu.Unlock()

	s.broadcast([]byte(`{"type":"reload"}`))
	return nil
}

// Entries returns a copy of the current entries.
func (s *Server) Entries() []docstore.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]docstore.Entry(nil), s.entries...)
}

// Handler returns the HTTP handler for the board.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/docs.md", s.handleMarkdown)
	mux.HandleFunc("/api/entries", s.handleEntries)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<pre>{{.Doc}}</pre>
<script>
  const ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = () => location.reload();
</script>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, struct {
		Title string
		Doc   string
	}{Title: s.cfg.Render.GetTitle(), Doc: doc})
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	if err := enc.Encode(s.Entries()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = struct{}{}
	s.clientsMu.Unlock()

	// Drain reads so pings and close frames are processed; drop the client
	// when the connection dies.
	go func() {
		defer s.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.clientsMu.Lock()
	delete(s.clients, conn)
	s.clientsMu.Unlock()
	conn.Close()
}

// broadcast sends a message to every connected client, dropping clients
// whose connection fails.
func (s *Server) broadcast(msg []byte) {
	s.clientsMu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.clientsMu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			s.dropClient(conn)
		}
	}
}

// Watch starts a source watcher and rescans on every event until the
// watcher's event channel closes. Rescan failures are reported through
// onError and do not stop the loop.
func (s *Server) Watch(w *SourceWatcher, onError func(error)) {
	for range w.Events() {
		if err := s.Rescan(); err != nil && onError != nil {
			onError(err)
		}
	}
}
