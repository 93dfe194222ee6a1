package payload

import (
	"time"

	"github.com/cinevault/movie-catalog-api/internal/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type RegisterRequest struct {
	Username string     `json:"username" validate:"required,min=5,alphanum"`
	Password string     `json:"password" validate:"required"`
	Email    string     `json:"email"    validate:"required,email"`
	Birthday *time.Time `json:"birthday" validate:"omitempty"`
}
