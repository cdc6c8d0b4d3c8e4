// Package api exposes equation generation, answer checking and score
// storage over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/mathdrop/internal/mathgen"
	"github.com/abhisek/mathdrop/internal/store"
)

// Limits on query parameters.
const (
	DefaultEquationCount = 10
	MaxEquationCount     = 100
	DefaultLeaderboard   = 10
	MaxLeaderboard       = 100
)

// GeneratorFactory builds a generator for one request.
type GeneratorFactory func(grade, level int) *mathgen.Generator

// Handler serves the HTTP API.
type Handler struct {
	events       store.EventRepo
	scores       store.HighScoreRepo
	newGenerator GeneratorFactory
	validator    *validator.Validate
}

// Option configures a Handler.
type Option func(*Handler)

// WithGeneratorFactory overrides how equation generators are built.
func WithGeneratorFactory(f GeneratorFactory) Option {
	return func(h *Handler) { h.newGenerator = f }
}

// NewHandler creates a Handler backed by the given repositories.
func NewHandler(events store.EventRepo, scores store.HighScoreRepo, opts ...Option) *Handler {
	h := &Handler{
		events:    events,
		scores:    scores,
		validator: validator.New(),
		newGenerator: func(grade, level int) *mathgen.Generator {
			return mathgen.New(grade, mathgen.WithLevel(level))
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewRouter wires the handler into a chi router with the standard middleware.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/equations", h.GenerateEquations)
		r.Post("/validate", h.ValidateAnswer)
		r.Post("/events", h.RecordEvent)
		r.Post("/highscores", h.SaveHighScore)
		r.Get("/leaderboard", h.Leaderboard)
	})

	return r
}
