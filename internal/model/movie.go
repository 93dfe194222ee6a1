package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Genre is embedded in a movie document.
type Genre struct {
	Name        string `bson:"name"        json:"name"`
	Description string `bson:"description" json:"description"`
}

// Director is embedded in a movie document.
type Director struct {
	Name      string `bson:"name"                 json:"name"`
	Bio       string `bson:"bio,omitempty"        json:"bio,omitempty"`
	BirthYear int    `bson:"birth_year,omitempty" json:"birth_year,omitempty"`
	DeathYear int    `bson:"death_year,omitempty" json:"death_year,omitempty"`
}

// Movie represents a catalog entry. Title doubles as the lookup key for the
// public read routes.
type Movie struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title"         json:"title"`
	Description string        `bson:"description"   json:"description"`
	Genre       Genre         `bson:"genre"         json:"genre"`
	Director    Director      `bson:"director"      json:"director"`
	ImageURL    string        `bson:"image_url,omitempty"   json:"image_url,omitempty"`
	IsFeatured  bool          `bson:"is_featured"   json:"is_featured"`
}
