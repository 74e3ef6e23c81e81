package api

import (
	"github.com/garnizeh/jobboard/internal/config"
	"github.com/garnizeh/jobboard/internal/generator"
	"github.com/garnizeh/jobboard/pkg/repository"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, store repository.Store, engine *generator.Engine) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(BodyLimitMiddleware(cfg.MaxBodyBytes))

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(store, cfg.JWTSecret, cfg.TokenDuration)
	jobsHandler := NewJobsHandler(store)
	applicationsHandler := NewApplicationsHandler(store)
	interviewsHandler := NewInterviewsHandler(store)
	profileHandler := NewProfileHandler(store)
	generateHandler := NewGenerateHandler(engine)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// API v1 routes. The auth middleware only extracts the principal;
	// anonymous requests pass through so handlers can report NotFound
	// before Unauthenticated on path-scoped operations.
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(AuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	apiV1.HandleFunc("/auth/signout", authHandler.Signout).Methods("POST")

	// Jobs endpoints (list/read are public)
	apiV1.HandleFunc("/jobs", jobsHandler.List).Methods("GET")
	apiV1.HandleFunc("/jobs", jobsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/jobs/{id}", jobsHandler.Get).Methods("GET")
	apiV1.HandleFunc("/jobs/{id}", jobsHandler.Update).Methods("PUT")
	apiV1.HandleFunc("/jobs/{id}", jobsHandler.Delete).Methods("DELETE")

	// Applications endpoints
	apiV1.HandleFunc("/jobs/{id}/apply", applicationsHandler.Apply).Methods("POST")
	apiV1.HandleFunc("/applications", applicationsHandler.List).Methods("GET")
	apiV1.HandleFunc("/applications/{id}", applicationsHandler.Update).Methods("PUT")

	// Interviews endpoints
	apiV1.HandleFunc("/applications/{id}/interview", interviewsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/applications/{id}/interviews", interviewsHandler.ListForApplication).Methods("GET")
	apiV1.HandleFunc("/interviews/{id}", interviewsHandler.Update).Methods("PUT")

	// Profile endpoint
	apiV1.HandleFunc("/profile", profileHandler.Update).Methods("PUT")

	// Document generation endpoints
	apiV1.HandleFunc("/generate/cv", generateHandler.CV).Methods("POST")
	apiV1.HandleFunc("/generate/cover-letter", generateHandler.CoverLetter).Methods("POST")

	return r
}
