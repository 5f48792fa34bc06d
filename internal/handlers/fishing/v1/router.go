package v1

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// NewRouter builds the HTTP router with the standard middleware chain
// and the v1 routes mounted under /api/v1.
func NewRouter(handler *Handler) *chi.Mux {
	r := chi.NewRouter()

	for _, mw := range defaultMiddleware() {
		r.Use(mw)
	}

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", healthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})

	handler.RegisterAdminRoutes(r)

	return r
}

func defaultMiddleware() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,

		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}),

		middleware.Timeout(30 * time.Second),
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"status":  "healthy",
		"service": "fishing-api",
	})
}
