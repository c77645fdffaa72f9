package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dalythu/REST-API/internal/auth"
	"github.com/dalythu/REST-API/internal/middleware"
	"github.com/dalythu/REST-API/internal/repository"
	"github.com/dalythu/REST-API/internal/telemetry"
)

// RouterOptions controls the construction of the course API router.
type RouterOptions struct {
	Users    repository.UserRepository
	Courses  repository.CourseRepository
	Resolver *auth.Resolver
	Metrics  *telemetry.Collector
	// CORSOptions overrides the default development CORS policy.
	CORSOptions *cors.Options
	// HealthHandler overrides the default health endpoint.
	HealthHandler http.HandlerFunc
}

// DefaultCORSOptions returns the shared development CORS policy.
func DefaultCORSOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}
}

func defaultHealthHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NewRouter assembles a chi.Router with shared middleware, CORS policy, and
// the user and course handlers mounted. Routes requiring a principal declare
// the authentication gate per-route; the rest run unauthenticated.
func NewRouter(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	// Baseline middleware shared across entrypoints.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	corsCfg := DefaultCORSOptions()
	if opts.CORSOptions != nil {
		corsCfg = *opts.CORSOptions
	}
	r.Use(cors.Handler(corsCfg))

	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	requireUser := middleware.RequireUser(opts.Resolver)
	userHandlers := NewUserHandlers(opts.Users)
	courseHandlers := NewCourseHandlers(opts.Courses)

	r.Route("/api", func(r chi.Router) {
		r.With(requireUser).Get("/users", userHandlers.GetCurrentUser)
		r.Post("/users", userHandlers.CreateUser)

		r.Get("/courses", courseHandlers.ListCourses)
		r.Get("/courses/{courseID}", courseHandlers.GetCourse)
		r.With(requireUser).Post("/courses", courseHandlers.CreateCourse)
		r.With(requireUser).Put("/courses/{courseID}", courseHandlers.UpdateCourse)
		r.With(requireUser).Delete("/courses/{courseID}", courseHandlers.DeleteCourse)
	})

	healthHandler := opts.HealthHandler
	if healthHandler == nil {
		healthHandler = defaultHealthHandler
	}
	r.Get("/health", healthHandler)

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	return r
}
