package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"arcade-royale/internal/constants"
	"arcade-royale/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server exposes the score submission and leaderboard HTTP API.
type Server struct {
	scoreSvc       *service.ScoreService
	leaderboardSvc *service.LeaderboardService
	catalogSvc     *service.CatalogService
	logger         zerolog.Logger
}

func New(scoreSvc *service.ScoreService, leaderboardSvc *service.LeaderboardService, catalogSvc *service.CatalogService, logger zerolog.Logger) *Server {
	return &Server{
		scoreSvc:       scoreSvc,
		leaderboardSvc: leaderboardSvc,
		catalogSvc:     catalogSvc,
		logger:         logger,
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(constants.RequestTimeout))
	r.Use(middleware.Heartbeat("/health"))

	r.Post("/scores", s.handleSubmitScore)
	r.Get("/leaderboard/global", s.handleGlobalLeaderboard)
	r.Get("/leaderboard/{gameId}", s.handleGameLeaderboard)
	r.Get("/games", s.handleListGames)

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// parseLimit reads the limit query parameter; absent or unparseable
// values fall back to 0, which the services turn into the default
// page size.
func parseLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
