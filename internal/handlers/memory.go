package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vortex-api/internal/contextutil"
	"vortex-api/internal/service"
	"vortex-api/internal/storage"
)

// MemoryHandler serves the note endpoints.
type MemoryHandler struct {
	svc service.VortexService
}

// NewMemoryHandler creates a new MemoryHandler.
func NewMemoryHandler(svc service.VortexService) *MemoryHandler {
	return &MemoryHandler{svc: svc}
}

// StoreRequest represents the HTTP request payload for storing a note.
type StoreRequest struct {
	Content string `json:"content"`
}

// StoreResponse wraps the created note.
type StoreResponse struct {
	Stored storage.NoteEntry `json:"stored"`
}

// Store handles POST /api/memory.
func (h *MemoryHandler) Store(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StoreRequest
	if err := decodeJSON(r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	entry, err := h.svc.SaveNote(ctx, service.SaveNoteRequest{Content: req.Content})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to store note")
		return
	}

	writeJSON(ctx, w, http.StatusOK, StoreResponse{Stored: entry})
}

// List handles GET /api/memory.
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.svc.ListNotes(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list notes")
		return
	}
	if entries == nil {
		entries = []storage.NoteEntry{}
	}

	writeJSON(ctx, w, http.StatusOK, entries)
}

// Get handles GET /api/memory/{id}.
func (h *MemoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := noteIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidNoteID)
		return
	}

	entry, err := h.svc.GetNote(ctx, id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get note")
		return
	}

	writeJSON(ctx, w, http.StatusOK, entry)
}

// noteIDParam parses the {id} URL parameter.
func noteIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
