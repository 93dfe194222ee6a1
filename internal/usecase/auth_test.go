package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinevault/movie-catalog-api/internal/auth"
	"github.com/cinevault/movie-catalog-api/internal/security"
)

func newTestAuthUsecase(t *testing.T) (AuthUsecase, *fakeUserRepository, auth.JWTAuthenticator) {
	t.Helper()

	repo := newFakeUserRepository()
	jwtAuth := auth.NewJWTAuthenticator("test-secret", "movie-catalog-api", time.Hour)

	return NewAuthUsecase(repo, jwtAuth), repo, jwtAuth
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()

	u, repo, _ := newTestAuthUsecase(t)

	user, err := u.Register(context.Background(), RegisterParams{
		Username: "alice01",
		Password: "Secret123!",
		Email:    "a@b.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice01", user.Username)
	assert.False(t, user.ID.IsZero())

	stored, err := repo.GetUserByUsername(context.Background(), "alice01")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", stored.PasswordHash)

	ok, err := security.VerifyPassword("Secret123!", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	u, _, _ := newTestAuthUsecase(t)

	_, err := u.Register(context.Background(), RegisterParams{
		Username: "alice01",
		Password: "Secret123!",
		Email:    "a@b.com",
	})
	require.NoError(t, err)

	_, err = u.Register(context.Background(), RegisterParams{
		Username: "alice01",
		Password: "Other456?",
		Email:    "c@d.com",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_ConcurrentSameUsername(t *testing.T) {
	t.Parallel()

	u, _, _ := newTestAuthUsecase(t)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = u.Register(context.Background(), RegisterParams{
				Username: "alice01",
				Password: "Secret123!",
				Email:    "a@b.com",
			})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrUserAlreadyExists)
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent registration should win")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	u, _, jwtAuth := newTestAuthUsecase(t)

	registered, err := u.Register(context.Background(), RegisterParams{
		Username: "alice01",
		Password: "Secret123!",
		Email:    "a@b.com",
	})
	require.NoError(t, err)

	user, token, err := u.Login(context.Background(), LoginParams{
		Username: "alice01",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := jwtAuth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.Hex(), claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	u, _, _ := newTestAuthUsecase(t)

	_, err := u.Register(context.Background(), RegisterParams{
		Username: "alice01",
		Password: "Secret123!",
		Email:    "a@b.com",
	})
	require.NoError(t, err)

	_, _, err = u.Login(context.Background(), LoginParams{
		Username: "alice01",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	u, _, _ := newTestAuthUsecase(t)

	_, _, err := u.Login(context.Background(), LoginParams{
		Username: "nobody",
		Password: "whatever",
	})

	// Same outcome as a wrong password, so callers cannot tell them apart.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
