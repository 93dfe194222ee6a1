package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/cinevault/movie-catalog-api/internal/auth"
	"github.com/cinevault/movie-catalog-api/internal/model"
	"github.com/cinevault/movie-catalog-api/internal/repository"
	"github.com/cinevault/movie-catalog-api/internal/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Login(ctx context.Context, params LoginParams) (*model.User, string, error)
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Username string
	Password string
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type authUsecase struct {
	userRepo repository.UserRepository
	jwtAuth  auth.JWTAuthenticator
}

func NewAuthUsecase(userRepo repository.UserRepository, jwtAuth auth.JWTAuthenticator) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwtAuth:  jwtAuth,
	}
}

// Login resolves the credentials to a user and issues a bearer token. A
// missing user and a wrong password both produce ErrInvalidCredentials so
// callers cannot enumerate usernames.
func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*model.User, string, error) {
	user, err := u.userRepo.GetUserByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}

		return nil, "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, "", err
	} else if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.jwtAuth.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Register hashes the password once and inserts the user. There is no
// existence pre-check: the unique username index decides the winner of a
// concurrent registration, and its duplicate-key error maps to
// ErrUserAlreadyExists the same as any other collision.
func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Birthday:     params.Birthday,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return user, nil
}
