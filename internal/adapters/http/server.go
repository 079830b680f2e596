package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/aretw0/objwatch"
	"github.com/aretw0/objwatch/pkg/document"
	"github.com/aretw0/objwatch/pkg/domain"
	"github.com/aretw0/objwatch/pkg/object"
	"github.com/aretw0/objwatch/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultHistory is the number of change events kept for GET /changes.
const DefaultHistory = 100

// Config configures a Server.
type Config struct {
	// Document is the watched graph. The server owns it from now on.
	Document *object.Object
	// Options are applied on top of a no-op change callback for every watch build.
	Options []objwatch.Option
	Logger  *slog.Logger
	// Registry receives the watch metrics and backs GET /metrics. A fresh one is created when nil.
	Registry *prometheus.Registry
	History  int
}

// Server exposes a watched document over HTTP.
// Every request touching the document is serialised, since interception is not safe for concurrent writers.
type Server struct {
	mu       sync.Mutex
	doc      *object.Object
	watcher  *objwatch.Watcher
	options  []objwatch.Option
	logger   *slog.Logger
	registry *prometheus.Registry
	history  *changeLog
}

// NewServer builds the watcher and runs the initial watch build.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Document == nil {
		return nil, domain.ErrNilTarget
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if cfg.History <= 0 {
		cfg.History = DefaultHistory
	}

	s := &Server{
		doc:      cfg.Document,
		logger:   cfg.Logger,
		registry: cfg.Registry,
		history:  newChangeLog(cfg.History),
	}
	s.options = append([]objwatch.Option{
		objwatch.OnNotify(func(object.Container, object.Key, any, any) {}),
	}, cfg.Options...)

	s.watcher = objwatch.New(
		objwatch.WithLogger(cfg.Logger),
		objwatch.WithMetrics(observability.NewMetrics(cfg.Registry)),
		objwatch.WithLifecycleHooks(observability.LogHooks(cfg.Logger)),
		objwatch.WithLifecycleHooks(domain.LifecycleHooks{OnChange: s.history.add}),
	)

	if _, err := s.watcher.Watch(s.doc, s.options...); err != nil {
		return nil, fmt.Errorf("initial watch failed: %w", err)
	}
	return s, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/document", s.GetDocument)
	r.Get("/document/*", s.GetProperty)
	r.Put("/document/*", s.PutProperty)
	r.Get("/changes", s.ListChanges)
	r.Post("/watch", s.Rewatch)
	r.Post("/unwatch", s.Unwatch)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// GetDocument handles GET /document, returning the whole document as YAML.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out, err := document.Encode(s.doc)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, fmt.Sprintf("Encode error: %v", err), http.StatusInternalServerError)
		s.logger.Error("GetDocument: encode failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/yaml")
	if _, err := w.Write(out); err != nil {
		s.logger.Error("GetDocument: write failed", "error", err)
	}
}

// GetProperty handles GET /document/{path}.
func (s *Server) GetProperty(w http.ResponseWriter, r *http.Request) {
	path, err := document.ParsePath(chi.URLParam(r, "*"))
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	v, err := document.Lookup(s.doc, path)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"path": path.String(), "value": jsonValue(v)})
}

// PutProperty handles PUT /document/{path}. The body is the JSON value to write.
func (s *Server) PutProperty(w http.ResponseWriter, r *http.Request) {
	path, err := document.ParsePath(chi.URLParam(r, "*"))
	if err != nil {
		writeError(w, err)
		return
	}

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("PutProperty: invalid request body", "error", err)
		return
	}

	s.mu.Lock()
	before := s.history.total()
	err = document.Assign(s.doc, path, object.FromNative(body))
	changes := s.history.total() - before
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Debug("PutProperty: assigned", "path", path.String(), "changes", changes)
	s.writeJSON(w, map[string]any{"path": path.String(), "changes": changes})
}

// ListChanges handles GET /changes?limit=n, newest last.
func (s *Server) ListChanges(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	s.writeJSON(w, s.history.list(limit))
}

// Rewatch handles POST /watch, running a fresh watch build with the configured options.
func (s *Server) Rewatch(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	report, err := s.watcher.Watch(s.doc, s.options...)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	s.writeJSON(w, report)
}

// Unwatch handles POST /unwatch.
func (s *Server) Unwatch(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	report, err := s.watcher.Unwatch(s.doc)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	s.writeJSON(w, report)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, document.ErrInvalidPath), errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, document.ErrPathNotFound):
		status = http.StatusNotFound
	case errors.Is(err, document.ErrReadOnly):
		status = http.StatusConflict
	}
	http.Error(w, err.Error(), status)
}
