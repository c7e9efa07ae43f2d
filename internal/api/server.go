package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/recruitkit/cvparse/internal/config"
	"github.com/recruitkit/cvparse/internal/llm"
	"github.com/recruitkit/cvparse/internal/parse"
	"github.com/recruitkit/cvparse/internal/pipeline"
	"github.com/recruitkit/cvparse/internal/store"
)

// Server is the HTTP API server for cvparse.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	parser       *parse.Parser
	records      *store.Client
	llmClient    *llm.Client
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. llmClient may be nil
// when the service runs heuristics-only.
func NewServer(orch *pipeline.Orchestrator, parser *parse.Parser, records *store.Client, llmClient *llm.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		parser:       parser,
		records:      records,
		llmClient:    llmClient,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/parse/resume", s.handleParseResume)
		r.Post("/api/parse/job", s.handleParseJob)

		r.Post("/api/ingest/resume", s.handleIngestResume)
		r.Get("/api/ingest/{jobID}/status", s.handleIngestStatus)

		r.Get("/api/applicants/{applicantID}", s.handleGetApplicant)

		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
