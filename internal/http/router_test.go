package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vortex-api/internal/resonance"
	"vortex-api/internal/service"
	"vortex-api/internal/service/mocks"
	"vortex-api/internal/storage"
)

func newTestRouter(t *testing.T, store storage.NoteStore) http.Handler {
	t.Helper()
	svc := service.NewVortexService(store, resonance.NewEngine())
	return NewRouter(&Deps{VortexService: svc})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(&Deps{VortexService: mocks.NewMockVortexService(ctrl)})
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, storage.NewMemoryStore())

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "GET /api/ping", method: http.MethodGet, path: "/api/ping", wantStatus: http.StatusOK},
		{name: "POST /api/ping not allowed", method: http.MethodPost, path: "/api/ping", wantStatus: http.StatusMethodNotAllowed},
		{name: "POST /api/resonance", method: http.MethodPost, path: "/api/resonance", wantStatus: http.StatusOK},
		{name: "GET /api/resonance not allowed", method: http.MethodGet, path: "/api/resonance", wantStatus: http.StatusMethodNotAllowed},
		{name: "GET /api/memory", method: http.MethodGet, path: "/api/memory", wantStatus: http.StatusOK},
		{name: "POST /api/memory without body", method: http.MethodPost, path: "/api/memory", wantStatus: http.StatusBadRequest},
		{name: "GET /api/memory/1 missing", method: http.MethodGet, path: "/api/memory/1", wantStatus: http.StatusNotFound},
		{name: "GET /api/memory/x invalid", method: http.MethodGet, path: "/api/memory/x", wantStatus: http.StatusBadRequest},
		{name: "GET /api/memory/1/render missing", method: http.MethodGet, path: "/api/memory/1/render", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", wantStatus: http.StatusNotFound},
		{name: "preflight", method: http.MethodOptions, path: "/api/memory", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, "")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router := newTestRouter(t, storage.NewMemoryStore())

	w := do(t, router, http.MethodGet, "/api/ping", "")

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"), "Router should apply CORS middleware")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader), "Router should assign a request ID")
}

type pingBody struct {
	Status         string `json:"status"`
	ResonanceState string `json:"resonance_state"`
	MemoryNodes    int    `json:"memory_nodes"`
}

func ping(t *testing.T, h http.Handler) pingBody {
	t.Helper()
	w := do(t, h, http.MethodGet, "/api/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body pingBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestRouter_EndToEnd(t *testing.T) {
	db, err := storage.Open()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, storage.Migrate(db))

	stores := map[string]storage.NoteStore{
		"memory": storage.NewMemoryStore(),
		"sqlite": storage.NewNoteRepo(db),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			router := newTestRouter(t, store)

			body := ping(t, router)
			assert.Equal(t, service.StatusActive, body.Status)
			assert.Equal(t, "neutral", body.ResonanceState)
			assert.Equal(t, 0, body.MemoryNodes)

			w := do(t, router, http.MethodPost, "/api/memory", `{"content":"first note"}`)
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"stored":{"id":1,"content":"first note"}}`, w.Body.String())

			w = do(t, router, http.MethodGet, "/api/memory", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[{"id":1,"content":"first note"}]`, w.Body.String())

			w = do(t, router, http.MethodPost, "/api/resonance", `{"input":"full of love"}`)
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"updated_resonance":"harmonic"}`, w.Body.String())

			body = ping(t, router)
			assert.Equal(t, "harmonic", body.ResonanceState)
			assert.Equal(t, 1, body.MemoryNodes)

			w = do(t, router, http.MethodGet, "/api/memory/1", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"id":1,"content":"first note"}`, w.Body.String())
		})
	}
}

func TestRouter_StoreMissingContent(t *testing.T) {
	store := storage.NewMemoryStore()
	router := newTestRouter(t, store)

	for _, body := range []string{`{}`, `{"content":""}`, `{"note":"wrong field"}`} {
		w := do(t, router, http.MethodPost, "/api/memory", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.JSONEq(t, `{"error":"Missing 'content' in request"}`, w.Body.String(), "body %s", body)
	}

	w := do(t, router, http.MethodGet, "/api/memory", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	assert.Equal(t, 0, ping(t, router).MemoryNodes)
}

func TestRouter_ResonanceMissingInput(t *testing.T) {
	router := newTestRouter(t, storage.NewMemoryStore())

	w := do(t, router, http.MethodPost, "/api/resonance", `{"input":"chaos"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated_resonance":"distorted"}`, w.Body.String())

	w = do(t, router, http.MethodPost, "/api/resonance", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated_resonance":"neutral"}`, w.Body.String())
}

func TestRouter_RenderNote(t *testing.T) {
	router := newTestRouter(t, storage.NewMemoryStore())

	w := do(t, router, http.MethodPost, "/api/memory", `{"content":"*spiral*"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/memory/1/render", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<em>spiral</em>")
}
