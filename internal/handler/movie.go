package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cinevault/movie-catalog-api/internal/handler/render"
	"github.com/cinevault/movie-catalog-api/internal/usecase"
)

// MovieHandler serves the read-only catalog routes.
type MovieHandler struct {
	movieUsecase usecase.MovieUsecase
	logger       *zerolog.Logger
}

func NewMovieHandler(movieUsecase usecase.MovieUsecase, logger *zerolog.Logger) *MovieHandler {
	return &MovieHandler{
		movieUsecase: movieUsecase,
		logger:       logger,
	}
}

// Routes mounts the catalog endpoints. The caller wraps them with the
// authentication gate.
func (h *MovieHandler) Routes(r chi.Router) {
	r.Get("/movies", h.ListMovies)
	r.Get("/movies/{title}", h.GetMovieByTitle)
	r.Get("/genres/{name}", h.GetGenresByName)
	r.Get("/directors/{name}", h.GetDirectorsByName)
}

func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movieUsecase.ListMovies(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list movies")
		render.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	render.JSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) GetMovieByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	movie, err := h.movieUsecase.GetMovieByTitle(r.Context(), title)
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			render.Error(w, http.StatusNotFound, "Movie not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get movie")
		render.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	render.JSON(w, http.StatusOK, movie)
}

func (h *MovieHandler) GetGenresByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	genres, err := h.movieUsecase.GetGenresByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrGenreNotFound) {
			render.Error(w, http.StatusNotFound, "Genre not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get genres")
		render.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	render.JSON(w, http.StatusOK, genres)
}

func (h *MovieHandler) GetDirectorsByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	directors, err := h.movieUsecase.GetDirectorsByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, usecase.ErrDirectorNotFound) {
			render.Error(w, http.StatusNotFound, "Director not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get directors")
		render.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	render.JSON(w, http.StatusOK, directors)
}
