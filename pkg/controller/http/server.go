// Package http exposes the engine to external consumers: the interactive
// graph rendering surface pulls resolved graphs and what-if subgraphs, and
// export generators pull rankings and per-COG summaries. The server owns no
// engine state; every request is computed from the stored snapshot.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/strat-lab/cogward/pkg/usecase"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

// New creates the HTTP server over the given use cases
func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api/analyses", func(r chi.Router) {
		r.Post("/", ingestAnalysisHandler(uc))
		r.Get("/", listAnalysesHandler(uc))

		r.Route("/{analysisID}", func(r chi.Router) {
			r.Get("/", getAnalysisHandler(uc))
			r.Delete("/", deleteAnalysisHandler(uc))
			r.Get("/graph", graphHandler(uc))
			r.Post("/whatif", whatIfHandler(uc))
			r.Get("/rankings", rankingsHandler(uc))
			r.Get("/cogs/{cogID}/summary", summaryHandler(uc))
		})
	})

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
