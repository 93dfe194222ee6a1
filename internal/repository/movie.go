package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/cinevault/movie-catalog-api/internal/model"
)

// MovieRepository defines the interface for movie-related database operations.
// The catalog is read-only from the API's perspective.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]*model.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error)
	ListMoviesByGenreName(ctx context.Context, name string) ([]*model.Movie, error)
	ListMoviesByDirectorName(ctx context.Context, name string) ([]*model.Movie, error)
}

const movieCollection = "movies"

type movieMongoRepository struct {
	db *mongo.Database
}

func NewMovieMongoRepository(db *mongo.Database) MovieRepository {
	return &movieMongoRepository{db: db}
}

func (r *movieMongoRepository) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	return r.findMovies(ctx, bson.M{})
}

func (r *movieMongoRepository) GetMovieByTitle(ctx context.Context, title string) (*model.Movie, error) {
	result := r.db.Collection(movieCollection).FindOne(ctx, bson.M{"title": title})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var movie model.Movie
	if err := result.Decode(&movie); err != nil {
		return nil, err
	}

	return &movie, nil
}

func (r *movieMongoRepository) ListMoviesByGenreName(ctx context.Context, name string) ([]*model.Movie, error) {
	return r.findMovies(ctx, bson.M{"genre.name": name})
}

func (r *movieMongoRepository) ListMoviesByDirectorName(ctx context.Context, name string) ([]*model.Movie, error) {
	return r.findMovies(ctx, bson.M{"director.name": name})
}

func (r *movieMongoRepository) findMovies(ctx context.Context, filter bson.M) ([]*model.Movie, error) {
	cursor, err := r.db.Collection(movieCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []*model.Movie
	for cursor.Next(ctx) {
		var movie model.Movie
		if err := cursor.Decode(&movie); err != nil {
			return nil, err
		}
		movies = append(movies, &movie)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}
