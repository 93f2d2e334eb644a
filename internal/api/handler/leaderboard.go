package handler

import (
	"net/http"

	"github.com/pixelbeak/arcade/internal/api/response"
	"github.com/pixelbeak/arcade/internal/services/scoring"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	scoringService *scoring.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(scoringService *scoring.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		scoringService: scoringService,
	}
}

// Weekly handles GET /api/leaderboard/weekly
func (h *LeaderboardHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scoringService.WeeklyLeaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}
