package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account in the catalog.
// PasswordHash holds the argon2 encoded digest, never the plaintext, and is
// excluded from every JSON response.
type User struct {
	ID             bson.ObjectID   `bson:"_id,omitempty"    json:"id"`
	Username       string          `bson:"username"         json:"username"`
	Email          string          `bson:"email"            json:"email"`
	PasswordHash   string          `bson:"password_hash"    json:"-"`
	Birthday       *time.Time      `bson:"birthday,omitempty" json:"birthday,omitempty"`
	FavoriteMovies []bson.ObjectID `bson:"favorite_movies"  json:"favorite_movies"`
	CreatedAt      time.Time       `bson:"created_at"       json:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at"       json:"updated_at"`
}
