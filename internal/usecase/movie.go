package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/cinevault/movie-catalog-api/internal/model"
	"github.com/cinevault/movie-catalog-api/internal/repository"
)

// MovieUsecase defines the interface for catalog read use cases.
type MovieUsecase interface {
	ListMovies(ctx context.Context) ([]*model.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error)
	GetGenresByName(ctx context.Context, name string) ([]model.Genre, error)
	GetDirectorsByName(ctx context.Context, name string) ([]model.Director, error)
}

var (
	ErrGenreNotFound    = errors.New("genre not found")
	ErrDirectorNotFound = errors.New("director not found")
)

type movieUsecase struct {
	movieRepo repository.MovieRepository
}

func NewMovieUsecase(movieRepo repository.MovieRepository) MovieUsecase {
	return &movieUsecase{movieRepo: movieRepo}
}

func (u *movieUsecase) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	return u.movieRepo.ListMovies(ctx)
}

func (u *movieUsecase) GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error) {
	movie, err := u.movieRepo.GetMovieByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}

		return nil, err
	}

	return movie, nil
}

// GetGenresByName returns the embedded genre of every movie in that genre.
func (u *movieUsecase) GetGenresByName(ctx context.Context, name string) ([]model.Genre, error) {
	movies, err := u.movieRepo.ListMoviesByGenreName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrGenreNotFound
	}

	genres := make([]model.Genre, 0, len(movies))
	for _, movie := range movies {
		genres = append(genres, movie.Genre)
	}

	return genres, nil
}

// GetDirectorsByName returns the embedded director of every movie by that
// director.
func (u *movieUsecase) GetDirectorsByName(ctx context.Context, name string) ([]model.Director, error) {
	movies, err := u.movieRepo.ListMoviesByDirectorName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrDirectorNotFound
	}

	directors := make([]model.Director, 0, len(movies))
	for _, movie := range movies {
		directors = append(directors, movie.Director)
	}

	return directors, nil
}
