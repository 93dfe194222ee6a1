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

// UserHandler serves profile updates and the favorite-movie list.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.Validator
	logger      *zerolog.Logger
}

func NewUserHandler(
	userUsecase usecase.UserUsecase,
	validator *validator.Validator,
	logger *zerolog.Logger,
) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
		logger:      logger,
	}
}

// Routes mounts the account endpoints. The caller wraps them with the
// authentication gate.
func (h *UserHandler) Routes(r chi.Router) {
	r.Put("/users/{username}", h.UpdateUser)
	r.Post("/users/{username}/favorites", h.AddFavorite)
	r.Delete("/users/{username}/favorites/{movieId}", h.RemoveFavorite)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req payload.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if messages := h.validator.Struct(req); messages != nil {
		render.ValidationError(w, messages)
		return
	}

	if req.Email == nil && req.Password == nil && req.Birthday == nil {
		render.Error(w, http.StatusBadRequest, "no fields to update")
		return
	}

	user, err := h.userUsecase.UpdateProfile(r.Context(), username, usecase.UpdateProfileParams{
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			render.Error(w, http.StatusNotFound, "User not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update user")
		render.Error(w, http.StatusBadRequest, "failed to update user")
		return
	}

	render.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req payload.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if messages := h.validator.Struct(req); messages != nil {
		render.ValidationError(w, messages)
		return
	}

	user, err := h.userUsecase.AddFavorite(r.Context(), username, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			render.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrMovieNotFound):
			render.Error(w, http.StatusNotFound, "Movie not found")
		default:
			h.logger.Error().Err(err).Msg("failed to add favorite")
			render.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	render.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	movieID := chi.URLParam(r, "movieId")

	user, err := h.userUsecase.RemoveFavorite(r.Context(), username, movieID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			render.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrInvalidMovieID):
			render.Error(w, http.StatusBadRequest, "invalid movie id")
		default:
			h.logger.Error().Err(err).Msg("failed to remove favorite")
			render.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	render.JSON(w, http.StatusOK, user)
}
