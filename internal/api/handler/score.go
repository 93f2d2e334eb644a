package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pixelbeak/arcade/internal/api/middleware"
	"github.com/pixelbeak/arcade/internal/api/request"
	"github.com/pixelbeak/arcade/internal/api/response"
	"github.com/pixelbeak/arcade/internal/services/scoring"
)

// ScoreHandler handles score submission endpoints
type ScoreHandler struct {
	scoringService *scoring.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoringService *scoring.Service) *ScoreHandler {
	return &ScoreHandler{
		scoringService: scoringService,
	}
}

// Submit handles POST /api/scores/submit
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	deviceID := middleware.MustGetDeviceID(r.Context())

	if _, err := h.scoringService.Submit(r.Context(), deviceID, req.Score); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitScoreResponse{Message: "Score saved"})
}
