// Package server exposes the HTTP API: upload HTML, get a summary, ask a
// question. It is the only translator from internal error kinds to HTTP
// status codes.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"htmldigest/internal/database"
	"htmldigest/internal/summarizer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	db         *database.Database
	summarizer summarizer.Summarizer
	retention  time.Duration
	log        *slog.Logger
}

func New(
	db *database.Database,
	s summarizer.Summarizer,
	retention time.Duration,
	log *slog.Logger,
) *Server {
	return &Server{
		db:         db,
		summarizer: s,
		retention:  retention,
		log:        log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Post("/upload_html/", s.handleUploadHTML)
	r.Get("/get_summary/{token}", s.handleGetSummary)
	r.Post("/ask/", s.handleAsk)
	r.Post("/dummy_data", s.handleDummyData)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
