package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"arcade-royale/internal/domain"
	"arcade-royale/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type submitScoreRequest struct {
	TwitterHandle string   `json:"twitterHandle"`
	GameID        string   `json:"gameId"`
	Score         *float64 `json:"score"`
}

type submitScoreResponse struct {
	Success        bool `json:"success"`
	Rank           int  `json:"rank"`
	IsNewHighScore bool `json:"isNewHighScore"`
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req submitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Score == nil {
		s.writeError(w, http.StatusBadRequest, "invalid input: score is required")
		return
	}

	result, err := s.scoreSvc.Submit(r.Context(), req.TwitterHandle, req.GameID, *req.Score)
	if err != nil {
		s.handleServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, submitScoreResponse{
		Success:        true,
		Rank:           result.Rank,
		IsNewHighScore: result.Accepted,
	})
}

func (s *Server) handleGameLeaderboard(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameId")

	records, err := s.leaderboardSvc.TopForGame(r.Context(), gameID, parseLimit(r))
	if err != nil {
		s.handleServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.leaderboardSvc.GlobalTop(r.Context(), parseLimit(r))
	if err != nil {
		s.handleServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.catalogSvc.Games(r.Context())
	if err != nil {
		s.handleServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, games)
}

// handleServiceError maps validation failures to 400s with their
// message and everything else to a generic 500, logged server-side so
// store details never reach the caller.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.Error().Err(err).
		Str("request_id", middleware.GetRequestID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	s.writeError(w, http.StatusInternalServerError, "internal server error")
}
