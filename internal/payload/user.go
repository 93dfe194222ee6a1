package payload

import "time"

type UpdateUserRequest struct {
	Email    *string    `json:"email"    validate:"omitempty,email"`
	Password *string    `json:"password" validate:"omitempty,min=1"`
	Birthday *time.Time `json:"birthday" validate:"omitempty"`
}

type AddFavoriteRequest struct {
	Title string `json:"title" validate:"required"`
}
