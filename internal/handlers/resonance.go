package handlers

import (
	"net/http"

	"vortex-api/internal/contextutil"
	"vortex-api/internal/service"
)

// ResonanceHandler handles HTTP requests that reclassify the mood.
type ResonanceHandler struct {
	svc service.VortexService
}

// NewResonanceHandler creates a new ResonanceHandler.
func NewResonanceHandler(svc service.VortexService) *ResonanceHandler {
	return &ResonanceHandler{svc: svc}
}

// ResonanceRequest represents the HTTP request payload for a mood update.
// A missing input is treated as the empty string.
type ResonanceRequest struct {
	Input string `json:"input"`
}

// ResonanceResponse represents the HTTP response payload for a mood update.
type ResonanceResponse struct {
	UpdatedResonance string `json:"updated_resonance"`
}

// ServeHTTP classifies the request input and returns the new state.
func (h *ResonanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ResonanceRequest
	if err := decodeJSON(r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	state, err := h.svc.UpdateResonance(ctx, service.UpdateResonanceRequest{Input: req.Input})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update resonance")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ResonanceResponse{UpdatedResonance: state.String()})
}
