// Package inspect serves live navigation state over HTTP for debugging.
//
// The inspector never touches a controller: controllers are confined to
// the UI goroutine. It reads from a [journal.Journal] instead, which is
// the designed concurrent read point, so attaching an inspector changes
// nothing about the program's threading story.
//
//	jrn := journal.New(0)
//	ctrl := nav.New(root, nav.Options{OnEvent: jrn.Record})
//	go inspect.New(jrn, nil).Serve(ctx, "localhost:6060")
//
// Endpoints:
//
//	GET /healthz       liveness probe
//	GET /api/state     navigation state after the latest applied operation
//	GET /api/journal   retained journal entries, oldest first
//	GET /api/flow.dot  aggregated flow graph as Graphviz DOT
//	GET /api/flow.svg  the same graph rendered to SVG
//	GET /api/flow.json the same graph as JSON
package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/navstack/pkg/journal"
	"github.com/matzehuels/navstack/pkg/render/flow"
)

// Server serves a journal's view of navigation state.
type Server struct {
	journal *journal.Journal
	logger  *log.Logger
	router  chi.Router
}

// New creates an inspector over jrn. A nil logger means log.Default().
func New(jrn *journal.Journal, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{journal: jrn, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/journal", s.handleJournal)
		r.Get("/flow.dot", s.handleFlowDOT)
		r.Get("/flow.svg", s.handleFlowSVG)
		r.Get("/flow.json", s.handleFlowJSON)
	})
	s.router = r
	return s
}

// Handler returns the inspector's HTTP handler, for mounting inside a
// larger server.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on addr until ctx is cancelled, then shuts down
// gracefully. It returns nil on clean shutdown.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("inspector listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start))
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.journal.State())
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	entries := s.journal.Entries()
	if entries == nil {
		entries = []journal.Entry{}
	}
	s.writeJSON(w, entries)
}

func (s *Server) handleFlowDOT(w http.ResponseWriter, r *http.Request) {
	g := flow.Build(s.journal.Entries())
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.Write([]byte(flow.ToDOT(g, flowOptions(r))))
}

func (s *Server) handleFlowSVG(w http.ResponseWriter, r *http.Request) {
	g := flow.Build(s.journal.Entries())
	dot := flow.ToDOT(g, flowOptions(r))

	svg, err := flow.RenderSVG(r.Context(), dot)
	if err != nil {
		s.logger.Error("render flow SVG", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *Server) handleFlowJSON(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, flow.Build(s.journal.Entries()))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func flowOptions(r *http.Request) flow.Options {
	return flow.Options{Detailed: r.URL.Query().Get("detailed") == "true"}
}
