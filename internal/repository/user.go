package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/cinevault/movie-catalog-api/internal/model"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUser(ctx context.Context, username string, params UpdateUserParams) (*model.User, error)
	AddFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*model.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID bson.ObjectID) (*model.User, error)
}

// UpdateUserParams defines the optional parameters for updating a user.
// Only the fields that are not nil will be updated.
type UpdateUserParams struct {
	Email        *string
	PasswordHash *string
	Birthday     *time.Time
}

const userCollection = "users"

type userMongoRepository struct {
	db *mongo.Database
}

// NewUserMongoRepository creates the users repository and ensures the unique
// username index exists. Concurrent registrations of the same username are
// serialized by this index, not by application-level locking.
func NewUserMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) UserRepository {
	collection := db.Collection(userCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create user indexes")
	}

	return &userMongoRepository{db: db}
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []bson.ObjectID{}
	}

	result, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return user, nil
}

func (r *userMongoRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(userCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	result := r.db.Collection(userCollection).FindOne(ctx, bson.M{"username": username})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) UpdateUser(
	ctx context.Context,
	username string,
	params UpdateUserParams,
) (*model.User, error) {
	// Build update query
	updateMap := bson.M{}
	if params.Email != nil {
		updateMap["email"] = *params.Email
	}
	if params.PasswordHash != nil {
		updateMap["password_hash"] = *params.PasswordHash
	}
	if params.Birthday != nil {
		updateMap["birthday"] = *params.Birthday
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no user fields to update")
	}

	updateMap["updated_at"] = time.Now()

	return r.findOneAndUpdate(ctx, username, bson.M{"$set": updateMap})
}

func (r *userMongoRepository) AddFavorite(
	ctx context.Context,
	username string,
	movieID bson.ObjectID,
) (*model.User, error) {
	// $addToSet keeps the favorite set unique, so adding twice is a no-op.
	return r.findOneAndUpdate(ctx, username, bson.M{
		"$addToSet": bson.M{"favorite_movies": movieID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (r *userMongoRepository) RemoveFavorite(
	ctx context.Context,
	username string,
	movieID bson.ObjectID,
) (*model.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{
		"$pull": bson.M{"favorite_movies": movieID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *userMongoRepository) findOneAndUpdate(
	ctx context.Context,
	username string,
	update bson.M,
) (*model.User, error) {
	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"username": username},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}
