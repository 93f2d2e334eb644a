package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pixelbeak/arcade/internal/api/request"
	"github.com/pixelbeak/arcade/internal/api/response"
	"github.com/pixelbeak/arcade/internal/model"
	"github.com/pixelbeak/arcade/internal/services/identity"
)

// AuthHandler handles identity endpoints
type AuthHandler struct {
	identityService *identity.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityService *identity.Service) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
	}
}

// Init handles POST /api/auth/init
func (h *AuthHandler) Init(w http.ResponseWriter, r *http.Request) {
	var req request.InitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.DeviceID == "" {
		WriteError(w, NewInvalidRequestError("device_id is required"))
		return
	}
	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}

	result, err := h.identityService.Initialize(r.Context(), model.DeviceID(req.DeviceID), req.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	// 200 for both new and returning users; the body says which
	response.JSON(w, http.StatusOK, response.InitResponseFromResult(result))
}
