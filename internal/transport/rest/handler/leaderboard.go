package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"framequiz/internal/service"
)

// LeaderboardHandler handles leaderboard and per-user standing endpoints
type LeaderboardHandler struct {
	lbSvc *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(lbSvc *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{lbSvc: lbSvc}
}

func limitParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return n
	}
	return fallback
}

// Get handles GET /api/leaderboard
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r, service.DefaultLeaderboardLimit)

	entries, err := h.lbSvc.GetLeaderboard(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}

// UserRank handles GET /api/users/{userId}/rank
func (h *LeaderboardHandler) UserRank(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	standing, err := h.lbSvc.GetUserStanding(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if standing == nil {
		// No finalized session yet; rank 0 means unranked.
		writeSuccess(w, http.StatusOK, map[string]interface{}{"rank": 0})
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"rank":  standing.Rank,
		"entry": standing,
	})
}

// UserSessions handles GET /api/users/{userId}/sessions
func (h *LeaderboardHandler) UserSessions(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	limit := limitParam(r, service.DefaultLeaderboardLimit)

	sessions, err := h.lbSvc.GetUserSessions(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}
