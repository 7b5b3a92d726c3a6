// Package router wires HTTP routes and middleware for the API server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/imagestore/service/internal/image"
	appMiddleware "github.com/imagestore/service/internal/middleware"
)

// New builds the root handler: shared middleware, health check, Swagger UI
// and the image API under /api/images.
func New(log *zap.Logger, allowedOrigins []string, images *image.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition", "Content-Length", "Last-Modified"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/images", func(r chi.Router) {
		r.Post("/", images.Upload)
		r.Get("/", images.List)
		r.Get("/*", images.Get)
		r.Head("/*", images.Head)
		r.Delete("/*", images.Delete)
	})

	return r
}
