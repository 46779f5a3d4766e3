package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"
)

const serverVersion = "DropZone/1.1"

// Config carries everything the server needs, established once at
// startup. Tests construct arbitrary Configs without touching the
// environment.
type Config struct {
	Addr           string // e.g. ":9090"
	BaseDir        string // absolute base directory for all writes
	UploadSubdir   string // directory name for routed extensions
	MaxUploadBytes int64  // declared-length cap per upload
	Log            *Logger
}

// Server wraps the HTTP server and the per-process collaborators the
// upload pipeline uses.
type Server struct {
	cfg        Config
	log        *Logger
	metrics    *Metrics
	store      Store
	httpServer *http.Server
}

// New builds a Server from cfg. A nil cfg.Log gets a text logger on
// stdout.
func New(cfg Config) *Server {
	if cfg.Log == nil {
		cfg.Log = NewLogger(os.Stdout, "text", "info")
	}

	s := &Server{
		cfg:     cfg,
		log:     cfg.Log,
		metrics: &Metrics{},
		store:   Store{BaseDir: cfg.BaseDir, Subdir: cfg.UploadSubdir},
	}

	// Wrap middleware: requestID -> logging -> route
	var handler http.Handler = http.HandlerFunc(s.route)
	handler = s.loggingMiddleware(handler)
	handler = requestIDMiddleware(handler)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// route dispatches on (method, path). The surface is one POST
// endpoint; any other method answers 405 with Allow, any other POST
// path answers 404.
func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Server", serverVersion)

	switch {
	case r.Method != http.MethodPost:
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, fail(http.StatusMethodNotAllowed, "Method not allowed"))
	case r.URL.Path != "/upload":
		writeError(w, fail(http.StatusNotFound, "Not found"))
	default:
		s.handleUpload(w, r)
	}
}

// Handler exposes the fully wired handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Metrics returns a snapshot of the server's counters.
func (s *Server) Metrics() MetricsSnapshot {
	return s.metrics.Snapshot()
}

func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.httpServer.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
