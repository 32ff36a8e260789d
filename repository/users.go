package repository

import (
	"context"
	"strings"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepo is the credential store, backed by the users collection.
// Unique indexes on email and username back the application-level
// conflict checks (see EnsureIndexes).
type UserRepo struct {
	MongoCollection *mongo.Collection
}

func NewUserRepo(client *mongo.Client, dbName string) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(dbName).Collection("users"),
	}
}

// CreateUser inserts a new user. A duplicate-key error from the unique
// indexes surfaces as a conflict; it only happens when two signups race
// past the lookup checks.
func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ErrConflict
		}
		utils.TrackError("user_creation_failed")
		return err
	}
	return nil
}

// FindByUsername looks a user up by lowercase username. Absence is
// (nil, nil), not an error.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": strings.ToLower(username)})
}

// FindByEmail looks a user up by lowercase email. Absence is (nil, nil).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

// FindByUsernameOrEmail matches the signin identifier against either
// field, lowercase-normalized.
func (r *UserRepo) FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*model.User, error) {
	value := strings.ToLower(usernameOrEmail)
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": value},
		bson.M{"username": value},
	}})
}

// FindByID looks a user up by id. Absence is (nil, nil).
func (r *UserRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("user_lookup_error")
		return nil, err
	}
	return &user, nil
}
