// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/cultrend/trendseer/internal/catalog"
	"github.com/cultrend/trendseer/internal/recommend"
	"github.com/cultrend/trendseer/internal/tastegraph"
	"github.com/cultrend/trendseer/internal/trends"
)

// Version reported by the service info endpoint.
const Version = "1.0.0"

// Server wires the pipeline components into an HTTP API.
type Server struct {
	analyzer *trends.Analyzer
	taste    *tastegraph.Client
	ranker   *recommend.Ranker
	catalog  *catalog.Store
	log      zerolog.Logger

	httpServer *http.Server
}

// New creates a server listening on addr.
func New(addr string, analyzer *trends.Analyzer, taste *tastegraph.Client, ranker *recommend.Ranker, cat *catalog.Store, log zerolog.Logger) *Server {
	s := &Server{
		analyzer: analyzer,
		taste:    taste,
		ranker:   ranker,
		catalog:  cat,
		log:      log,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleRoot)
	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/predict-trends", s.handlePredictTrends)
		r.Post("/recommendations", s.handleRecommendations)
		r.Get("/similar-profiles/{profileID}", s.handleSimilarProfiles)
		r.Get("/performance", s.handlePerformance)
	})
	return r
}

// ListenAndServe blocks until the context is canceled, then shuts the
// server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
