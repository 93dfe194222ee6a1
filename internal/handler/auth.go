package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cinevault/movie-catalog-api/internal/handler/render"
	"github.com/cinevault/movie-catalog-api/internal/payload"
	"github.com/cinevault/movie-catalog-api/internal/usecase"
	"github.com/cinevault/movie-catalog-api/internal/validator"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.Validator
	logger      *zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validator.Validator,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		logger:      logger,
	}
}

// Routes mounts the unauthenticated auth endpoints.
func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/users", h.Register)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if messages := h.validator.Struct(req); messages != nil {
		render.ValidationError(w, messages)
		return
	}

	user, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: req.Birthday,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			render.Error(w, http.StatusBadRequest, req.Username+" already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to register user")
		render.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	render.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if messages := h.validator.Struct(req); messages != nil {
		render.ValidationError(w, messages)
		return
	}

	user, token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// One message for both unknown user and wrong password.
			render.Error(w, http.StatusUnauthorized, "invalid username or password")
			return
		}

		h.logger.Error().Err(err).Msg("failed to log in user")
		render.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	render.JSON(w, http.StatusOK, payload.LoginResponse{
		User:  user,
		Token: token,
	})
}
