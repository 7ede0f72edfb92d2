package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/corey/svcdash/internal/adapters/htmldoc"
	"github.com/corey/svcdash/internal/domain/directory"
)

// Options configures a Server.
type Options struct {
	Directory     *directory.Directory
	Bindings      []directory.Binding
	DashboardPath string // empty serves the embedded dashboard
	Metrics       *Metrics
	Logger        *slog.Logger
}

// Server serves the dashboard and JSON API over HTTP.
type Server struct {
	dir           *directory.Directory
	bindings      []directory.Binding
	dashboardPath string
	metrics       *Metrics
	logger        *slog.Logger

	mu       sync.RWMutex
	template []byte

	listener net.Listener
	httpSrv  *http.Server
	started  time.Time
	stopOnce sync.Once
}

// NewServer creates a dashboard server and loads its template.
func NewServer(opts Options) (*Server, error) {
	if opts.Directory == nil {
		return nil, errors.New("web: directory is required")
	}
	s := &Server{
		dir:           opts.Directory,
		bindings:      opts.Bindings,
		dashboardPath: opts.DashboardPath,
		metrics:       opts.Metrics,
		logger:        opts.Logger,
		started:       time.Now(),
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the dashboard file. The previous template is kept on error.
func (s *Server) Reload() error {
	data := defaultDashboard
	if s.dashboardPath != "" {
		b, err := os.ReadFile(s.dashboardPath)
		if err != nil {
			return fmt.Errorf("read dashboard: %w", err)
		}
		if _, err := htmldoc.ParseBytes(b); err != nil {
			return err
		}
		data = b
	}

	s.mu.Lock()
	s.template = data
	s.mu.Unlock()
	return nil
}

// DashboardPath returns the watched dashboard file, or "" when embedded.
func (s *Server) DashboardPath() string {
	return s.dashboardPath
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/services", s.handleServices)
	mux.HandleFunc("GET /api/services/{name}", s.handleService)
	mux.Handle("GET /metrics", s.metrics.Handler())
	return mux
}

// Start begins listening on addr.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.started = time.Now()
	s.httpSrv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("dashboard server stopped", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.httpSrv.Shutdown(ctx)
		}
	})
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// URL returns the dashboard URL.
func (s *Server) URL() string {
	return "http://" + s.Addr()
}

// requestHost returns the hostname the client used, without the port.
func requestHost(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return directory.ResolveHost(strings.Trim(host, "[]"))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	tmpl := s.template
	s.mu.RUnlock()

	doc, err := htmldoc.ParseBytes(tmpl)
	if err != nil {
		http.Error(w, "dashboard unavailable", http.StatusInternalServerError)
		return
	}

	s.dir.WithHost(requestHost(r)).Sync(doc, s.bindings)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		http.Error(w, "dashboard unavailable", http.StatusInternalServerError)
		return
	}
	s.metrics.observeRender()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// HealthResult is the /api/health payload.
type HealthResult struct {
	Status   string `json:"status"`
	Services int    `json:"services"`
	Uptime   string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResult{
		Status:   "ok",
		Services: s.dir.Table().Len(),
		Uptime:   time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dir.WithHost(requestHost(r)).Entries())
}

func (s *Server) handleService(w http.ResponseWriter, r *http.Request) {
	entry, err := s.dir.WithHost(requestHost(r)).Resolve(r.PathValue("name"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
