package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/cinevault/movie-catalog-api/internal/auth"
	"github.com/cinevault/movie-catalog-api/internal/handler/render"
	"github.com/cinevault/movie-catalog-api/internal/model"
	"github.com/cinevault/movie-catalog-api/internal/repository"
)

type contextKey struct{}

var userContextKey = contextKey{}

// Authenticator gates every protected route. It extracts the bearer token,
// verifies signature and expiry, resolves the embedded identity against the
// store, and attaches the user to the request context. The store lookup runs
// on every request; there is no session cache.
func Authenticator(
	jwtAuth auth.JWTAuthenticator,
	userRepo repository.UserRepository,
	logger *zerolog.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := extractBearerToken(r)
			if !ok {
				render.Error(w, http.StatusUnauthorized, "missing authorization token")
				return
			}

			claims, err := jwtAuth.ValidateToken(tokenString)
			if err != nil {
				render.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			user, err := userRepo.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if !errors.Is(err, mongo.ErrNoDocuments) {
					logger.Error().Err(err).Msg("failed to resolve token identity")
				}
				render.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user attached by Authenticator,
// or nil outside a protected route.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func extractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	return parts[1], true
}
