// SPDX-License-Identifier: MIT
package transport

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"hyperion/internal/log"
)

// ErrServerClosed is returned by Start and Send after Close.
var ErrServerClosed = errors.New("transport: server closed")

const (
	defaultReadLimit    = 64 << 10
	defaultWriteTimeout = 5 * time.Second
	broadcastBuffer     = 256
)

// Server accepts websocket connections on /ws, answers each request frame
// through a Handler, and broadcasts values passed to Send to every client.
type Server struct {
	addr         string
	handler      Handler
	readLimit    int64
	writeTimeout time.Duration

	upgrader  websocket.Upgrader
	server    *http.Server
	listener  net.Listener
	broadcast chan any
	done      chan struct{}

	mu      sync.Mutex
	clients map[*client]struct{}
	started bool
	closed  bool
	wg      sync.WaitGroup
}

// client serialises writes to one connection; gorilla connections support a
// single concurrent writer.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	timeout time.Duration
}

func (c *client) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithReadLimit bounds the size of a single request frame.
func WithReadLimit(n int64) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.readLimit = n
		}
	}
}

// WithWriteTimeout bounds how long writing one response may take.
func WithWriteTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// NewServer creates a Server for addr. It does not listen until Start.
func NewServer(addr string, handler Handler, opts ...ServerOption) *Server {
	s := &Server{
		addr:         addr,
		handler:      handler,
		readLimit:    defaultReadLimit,
		writeTimeout: defaultWriteTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		broadcast: make(chan any, broadcastBuffer),
		done:      make(chan struct{}),
		clients:   make(map[*client]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start binds the listener and serves in the background. Addr is valid once
// Start returns.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrServerClosed
	}
	if s.started {
		return errors.New("transport: server already started")
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "transport: listen on %s", s.addr)
	}
	s.listener = ln
	s.started = true

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		log.Infof("WebSocketServer: listening on %s", ln.Addr())
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("WebSocketServer: serve error: %v", err)
		}
	}()
	go func() {
		defer s.wg.Done()
		s.handleBroadcasts()
	}()

	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// SetHandler replaces the handler for every request read after it returns.
// Requests already being evaluated finish on the previous handler.
func (s *Server) SetHandler(h Handler) {
	s.mu.Lock()
	s.handler = h
	s.mu.Unlock()
}

func (s *Server) currentHandler() Handler {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handler
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("WebSocketServer: upgrade error: %v", err)
		return
	}
	conn.SetReadLimit(s.readLimit)
	c := &client{conn: conn, timeout: s.writeTimeout}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return
	}
	s.clients[c] = struct{}{}
	total := len(s.clients)
	s.wg.Add(1)
	s.mu.Unlock()
	log.Debugf("WebSocketServer: client connected, total: %d", total)

	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		total := len(s.clients)
		s.mu.Unlock()
		conn.Close()
		log.Debugf("WebSocketServer: client disconnected, total: %d", total)
		s.wg.Done()
	}()

	s.serveClient(r.Context(), c)
}

// serveClient answers request frames until the peer goes away.
func (s *Server) serveClient(ctx context.Context, c *client) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debugf("WebSocketServer: read error: %v", err)
			}
			return
		}

		var req Request
		var resp Response
		if err := json.Unmarshal(data, &req); err != nil {
			resp = Response{Error: errors.Wrap(err, "malformed request").Error()}
		} else {
			resp = s.currentHandler().Handle(ctx, req)
		}

		if err := c.writeJSON(resp); err != nil {
			log.Warnf("WebSocketServer: error writing response: %v", err)
			return
		}
	}
}

// handleBroadcasts sends queued values to all connected clients.
func (s *Server) handleBroadcasts() {
	for {
		select {
		case <-s.done:
			return
		case data := <-s.broadcast:
			s.mu.Lock()
			clients := make([]*client, 0, len(s.clients))
			for c := range s.clients {
				clients = append(clients, c)
			}
			s.mu.Unlock()

			for _, c := range clients {
				if err := c.writeJSON(data); err != nil {
					log.Warnf("WebSocketServer: error broadcasting to client: %v", err)
					c.conn.Close()
				}
			}
		}
	}
}

// Send queues data for every connected client. When the queue is full the
// value is dropped.
func (s *Server) Send(data any) error {
	select {
	case <-s.done:
		return ErrServerClosed
	default:
	}

	select {
	case s.broadcast <- data:
	default:
		log.Debug("WebSocketServer: broadcast queue full, dropping message")
	}
	return nil
}

// Close shuts down the listener, disconnects every client and waits for all
// server goroutines to exit.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	for c := range s.clients {
		c.conn.Close()
	}
	srv := s.server
	s.mu.Unlock()

	log.Debug("WebSocketServer: closing server")
	var err error
	if srv != nil {
		err = srv.Close()
	}
	s.wg.Wait()
	return err
}

var _ Transport = (*Server)(nil)
