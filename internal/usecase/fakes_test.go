package usecase

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/cinevault/movie-catalog-api/internal/model"
	"github.com/cinevault/movie-catalog-api/internal/repository"
)

// fakeUserRepository mimics the Mongo repository in memory, including the
// unique username index and the set semantics of $addToSet/$pull.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*model.User)}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	}

	stored := *user
	stored.ID = bson.NewObjectID()
	if stored.FavoriteMovies == nil {
		stored.FavoriteMovies = []bson.ObjectID{}
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.users[user.Username] = &stored

	result := stored
	return &result, nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID.Hex() == id {
			result := *user
			return &result, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[username]
	if !exists {
		return nil, mongo.ErrNoDocuments
	}

	result := *user
	return &result, nil
}

func (r *fakeUserRepository) UpdateUser(
	_ context.Context,
	username string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[username]
	if !exists {
		return nil, mongo.ErrNoDocuments
	}

	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}
	if params.Birthday != nil {
		user.Birthday = params.Birthday
	}
	user.UpdatedAt = time.Now()

	result := *user
	return &result, nil
}

func (r *fakeUserRepository) AddFavorite(
	_ context.Context,
	username string,
	movieID bson.ObjectID,
) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[username]
	if !exists {
		return nil, mongo.ErrNoDocuments
	}

	for _, id := range user.FavoriteMovies {
		if id == movieID {
			result := *user
			return &result, nil
		}
	}
	user.FavoriteMovies = append(user.FavoriteMovies, movieID)

	result := *user
	return &result, nil
}

func (r *fakeUserRepository) RemoveFavorite(
	_ context.Context,
	username string,
	movieID bson.ObjectID,
) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[username]
	if !exists {
		return nil, mongo.ErrNoDocuments
	}

	kept := user.FavoriteMovies[:0]
	for _, id := range user.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	user.FavoriteMovies = kept

	result := *user
	return &result, nil
}

// fakeMovieRepository serves a fixed catalog from memory.
type fakeMovieRepository struct {
	movies []*model.Movie
}

func (r *fakeMovieRepository) ListMovies(_ context.Context) ([]*model.Movie, error) {
	return r.movies, nil
}

func (r *fakeMovieRepository) GetMovieByTitle(_ context.Context, title string) (*model.Movie, error) {
	for _, movie := range r.movies {
		if movie.Title == title {
			return movie, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeMovieRepository) ListMoviesByGenreName(_ context.Context, name string) ([]*model.Movie, error) {
	var matches []*model.Movie
	for _, movie := range r.movies {
		if movie.Genre.Name == name {
			matches = append(matches, movie)
		}
	}

	return matches, nil
}

func (r *fakeMovieRepository) ListMoviesByDirectorName(_ context.Context, name string) ([]*model.Movie, error) {
	var matches []*model.Movie
	for _, movie := range r.movies {
		if movie.Director.Name == name {
			matches = append(matches, movie)
		}
	}

	return matches, nil
}
