package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthshop/internal/db"
	"healthshop/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Upsert(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id, role, status string) (*model.User, error)
	Delete(ctx context.Context, id string) (*model.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a Mongo-backed repository.
func NewUserRepository(database *mongo.Database) UserRepository {
	return &userRepository{coll: database.Collection(db.UsersCollection)}
}

// Upsert inserts the user when its email is unknown and returns the stored
// record either way. An existing record is never modified.
func (r *userRepository) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored model.User
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": user},
		opts,
	).Decode(&stored)
	if err != nil {
		return nil, notFound(err)
	}
	return &stored, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole sets the role, and the status when non-empty, of the user with the given id.
func (r *userRepository) UpdateRole(ctx context.Context, id, role, status string) (*model.User, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"role": role}
	if status != "" {
		set["status"] = status
	}

	var updated model.User
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, notFound(err)
	}
	return &updated, nil
}

// Delete removes the user with the given id and returns the removed record.
func (r *userRepository) Delete(ctx context.Context, id string) (*model.User, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	var deleted model.User
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		return nil, notFound(err)
	}
	return &deleted, nil
}
