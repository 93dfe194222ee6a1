package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// RouterConfig bundles the pieces the router needs. Everything is injected;
// there are no package-level singletons.
type RouterConfig struct {
	AuthHandler    *AuthHandler
	MovieHandler   *MovieHandler
	UserHandler    *UserHandler
	Authenticator  func(http.Handler) http.Handler
	AllowedOrigins []string
	Logger         *zerolog.Logger
}

// NewRouter wires the HTTP surface: public registration and login, and the
// token-gated catalog and account routes.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(hlog.NewHandler(*cfg.Logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Group(cfg.AuthHandler.Routes)

	r.Group(func(r chi.Router) {
		r.Use(cfg.Authenticator)
		cfg.MovieHandler.Routes(r)
		cfg.UserHandler.Routes(r)
	})

	return r
}
