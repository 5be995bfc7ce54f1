package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vortex-api/internal/handlers"
	"vortex-api/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	VortexService service.VortexService
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	pingHandler := handlers.NewPingHandler(deps.VortexService)
	resonanceHandler := handlers.NewResonanceHandler(deps.VortexService)
	memoryHandler := handlers.NewMemoryHandler(deps.VortexService)
	renderHandler := handlers.NewRenderHandler(deps.VortexService)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/ping", pingHandler)
		r.Method(http.MethodPost, "/resonance", resonanceHandler)

		r.Route("/memory", func(r chi.Router) {
			r.Post("/", memoryHandler.Store)
			r.Get("/", memoryHandler.List)
			r.Get("/{id}", memoryHandler.Get)
			r.Method(http.MethodGet, "/{id}/render", renderHandler)
		})
	})

	return r
}
