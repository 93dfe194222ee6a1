package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token fails signature, expiry, or claim
// validation.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried by every issued bearer token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTAuthenticator issues and verifies HS256 bearer tokens. The server holds
// no session state; validity is re-derived from the signature and expiry on
// every request.
type JWTAuthenticator struct {
	secret    string
	issuer    string
	expiresIn time.Duration
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance.
func NewJWTAuthenticator(secret, issuer string, expiresIn time.Duration) JWTAuthenticator {
	return JWTAuthenticator{
		secret:    secret,
		issuer:    issuer,
		expiresIn: expiresIn,
	}
}

// GenerateToken signs a token for the given user ID with a bounded lifetime.
func (a *JWTAuthenticator) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiresIn)),
			Issuer:    a.issuer,
			Audience:  jwt.ClaimStrings{a.issuer},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// ValidateToken verifies the signature and registered claims of a token and
// returns its parsed claims.
func (a *JWTAuthenticator) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(a.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.issuer),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
