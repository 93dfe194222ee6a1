package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/cinevault/movie-catalog-api/internal/model"
	"github.com/cinevault/movie-catalog-api/internal/repository"
	"github.com/cinevault/movie-catalog-api/internal/security"
)

// UserUsecase defines the interface for account management use cases.
type UserUsecase interface {
	UpdateProfile(ctx context.Context, username string, params UpdateProfileParams) (*model.User, error)
	AddFavorite(ctx context.Context, username, movieTitle string) (*model.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID string) (*model.User, error)
}

// UpdateProfileParams defines the optional profile fields to change.
// Only the fields that are not nil will be updated.
type UpdateProfileParams struct {
	Email    *string
	Password *string
	Birthday *time.Time
}

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMovieNotFound  = errors.New("movie not found")
	ErrInvalidMovieID = errors.New("invalid movie id")
)

type userUsecase struct {
	userRepo  repository.UserRepository
	movieRepo repository.MovieRepository
}

func NewUserUsecase(userRepo repository.UserRepository, movieRepo repository.MovieRepository) UserUsecase {
	return &userUsecase{
		userRepo:  userRepo,
		movieRepo: movieRepo,
	}
}

// UpdateProfile applies a partial update. A new password is hashed before it
// reaches the repository; the plaintext is never persisted.
func (u *userUsecase) UpdateProfile(
	ctx context.Context,
	username string,
	params UpdateProfileParams,
) (*model.User, error) {
	updateParams := repository.UpdateUserParams{
		Email:    params.Email,
		Birthday: params.Birthday,
	}

	if params.Password != nil {
		passwordHash, err := security.HashPassword(*params.Password)
		if err != nil {
			return nil, err
		}
		updateParams.PasswordHash = &passwordHash
	}

	user, err := u.userRepo.UpdateUser(ctx, username, updateParams)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// AddFavorite resolves the movie by title and adds it to the user's favorite
// set. Adding a movie that is already favorited is a no-op success: the set
// keeps exactly one entry.
func (u *userUsecase) AddFavorite(ctx context.Context, username, movieTitle string) (*model.User, error) {
	movie, err := u.movieRepo.GetMovieByTitle(ctx, movieTitle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}

		return nil, err
	}

	user, err := u.userRepo.AddFavorite(ctx, username, movie.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// RemoveFavorite removes the movie from the user's favorite set. Removing a
// movie that is not favorited is a no-op success, not an error.
func (u *userUsecase) RemoveFavorite(ctx context.Context, username string, movieID string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, ErrInvalidMovieID
	}

	user, err := u.userRepo.RemoveFavorite(ctx, username, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}
