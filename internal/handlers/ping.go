package handlers

import (
	"net/http"

	"vortex-api/internal/contextutil"
	"vortex-api/internal/service"
)

// PingHandler handles HTTP requests for the status check.
type PingHandler struct {
	svc service.VortexService
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler(svc service.VortexService) *PingHandler {
	return &PingHandler{svc: svc}
}

// PingResponse represents the status check response.
//
// swagger:model PingResponse
type PingResponse struct {
	// Fixed liveness banner
	Status string `json:"status"`

	// Current mood: "neutral", "harmonic" or "distorted"
	ResonanceState string `json:"resonance_state"`

	// Number of stored notes
	MemoryNodes int `json:"memory_nodes"`
}

// ServeHTTP reports liveness, the current resonance state and the note count.
//
// swagger:route GET /api/ping ping
//
// # Status check endpoint
//
// ---
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Service is alive
//	  schema:
//	    "$ref": "#/definitions/PingResponse"
func (h *PingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status, err := h.svc.Ping(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to read status")
		return
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "ping", "memory_nodes", status.MemoryNodes)
	writeJSON(ctx, w, http.StatusOK, PingResponse{
		Status:         status.Status,
		ResonanceState: status.ResonanceState.String(),
		MemoryNodes:    status.MemoryNodes,
	})
}
