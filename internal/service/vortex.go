package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vortex_service.go -package=mocks -mock_names=VortexService=MockVortexService vortex-api/internal/service VortexService

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"vortex-api/internal/contextutil"
	"vortex-api/internal/resonance"
	"vortex-api/internal/storage"
)

// StatusActive is the status reported by Ping while the process is serving.
const StatusActive = "🌀 Vortex Active"

// MoodClassifier keeps the current resonance state.
// This interface is defined from the service layer's perspective (consumer-first).
type MoodClassifier interface {
	// UpdateState classifies input and stores the result.
	UpdateState(input string) resonance.State
	// CurrentState returns the stored state.
	CurrentState() resonance.State
}

// SaveNoteRequest represents a request to store a note.
type SaveNoteRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdateResonanceRequest represents a request to reclassify the mood.
// An empty Input is valid and yields the neutral state.
type UpdateResonanceRequest struct {
	Input string `json:"input"`
}

// PingResponse reports liveness plus a summary of the in-memory state.
type PingResponse struct {
	Status         string
	ResonanceState resonance.State
	MemoryNodes    int
}

// VortexService provides note storage and mood classification.
type VortexService interface {
	// Ping returns the current status summary.
	Ping(ctx context.Context) (PingResponse, error)
	// SaveNote validates and stores a note.
	SaveNote(ctx context.Context, req SaveNoteRequest) (storage.NoteEntry, error)
	// ListNotes returns every stored note in insertion order.
	ListNotes(ctx context.Context) ([]storage.NoteEntry, error)
	// GetNote returns a single note by ID.
	GetNote(ctx context.Context, id int) (storage.NoteEntry, error)
	// UpdateResonance reclassifies the mood from the request input.
	UpdateResonance(ctx context.Context, req UpdateResonanceRequest) (resonance.State, error)
}

// vortexService implements VortexService.
type vortexService struct {
	notes    storage.NoteStore
	mood     MoodClassifier
	validate *validator.Validate
}

// NewVortexService creates a new VortexService.
func NewVortexService(notes storage.NoteStore, mood MoodClassifier) VortexService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &vortexService{
		notes:    notes,
		mood:     mood,
		validate: validate,
	}
}

// Ping returns status, current mood and note count.
func (s *vortexService) Ping(ctx context.Context) (PingResponse, error) {
	count, err := s.notes.Count(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to count notes", "error", err)
		return PingResponse{}, WrapError(err, "failed to count notes")
	}

	return PingResponse{
		Status:         StatusActive,
		ResonanceState: s.mood.CurrentState(),
		MemoryNodes:    count,
	}, nil
}

// SaveNote stores req.Content verbatim. Empty content is rejected with a
// ValidationError on the "content" field.
func (s *vortexService) SaveNote(ctx context.Context, req SaveNoteRequest) (storage.NoteEntry, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.validateStruct(req); err != nil {
		logger.WarnContext(ctx, "invalid save note request", "error", err)
		return storage.NoteEntry{}, err
	}

	entry, err := s.notes.Save(ctx, req.Content)
	if err != nil {
		logger.ErrorContext(ctx, "failed to save note", "error", err)
		return storage.NoteEntry{}, WrapError(err, "failed to save note")
	}

	logger.InfoContext(ctx, "note stored", "note_id", entry.ID, "content_length", len(entry.Content))
	return entry, nil
}

// ListNotes returns all notes.
func (s *vortexService) ListNotes(ctx context.Context) ([]storage.NoteEntry, error) {
	entries, err := s.notes.ListAll(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list notes", "error", err)
		return nil, WrapError(err, "failed to list notes")
	}
	if entries == nil {
		entries = []storage.NoteEntry{}
	}
	return entries, nil
}

// GetNote returns the note with the given ID, or ErrNotFound.
func (s *vortexService) GetNote(ctx context.Context, id int) (storage.NoteEntry, error) {
	if id < 1 {
		return storage.NoteEntry{}, &ValidationError{Field: "id", Message: "must be a positive integer"}
	}

	entry, err := s.notes.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.NoteEntry{}, ErrNotFound
	}
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to get note", "note_id", id, "error", err)
		return storage.NoteEntry{}, WrapError(err, "failed to get note")
	}
	return entry, nil
}

// UpdateResonance runs the classifier over req.Input and returns the new state.
func (s *vortexService) UpdateResonance(ctx context.Context, req UpdateResonanceRequest) (resonance.State, error) {
	state := s.mood.UpdateState(req.Input)
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "resonance updated", "state", state, "input_length", len(req.Input))
	return state, nil
}

// validateStruct runs struct tag validation and converts the first failure
// into a ValidationError.
func (s *vortexService) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Message: validationMessage(fe)}
	}
	return WrapError(ErrInvalidInput, err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
