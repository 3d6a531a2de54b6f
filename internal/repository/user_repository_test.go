package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
)

func TestUserRepository_Upsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns stored record", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "a@b.com"},
			{Key: "role", Value: "seller"},
			{Key: "timestamp", Value: int64(1700000000000)},
		}}))

		user, err := repo.Upsert(context.Background(), &model.User{Email: "a@b.com", Name: "Ann", Role: model.RoleUser})

		require.NoError(mt, err)
		assert.Equal(mt, id, user.ID)
		assert.Equal(mt, "seller", user.Role)
		assert.Equal(mt, int64(1700000000000), user.Timestamp)
	})

	mt.Run("inserts only when email is unknown", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@b.com"},
		}}))

		_, err := repo.Upsert(context.Background(), &model.User{Email: "a@b.com", Name: "Ann", Role: model.RoleUser})
		require.NoError(mt, err)

		cmd := sentCommand(mt)
		assert.Equal(mt, "a@b.com", lookup(mt, cmd, "query", "email").StringValue())
		assert.Equal(mt, "a@b.com", lookup(mt, cmd, "update", "$setOnInsert", "email").StringValue())
		assert.Equal(mt, "Ann", lookup(mt, cmd, "update", "$setOnInsert", "name").StringValue())
		assert.Equal(mt, model.RoleUser, lookup(mt, cmd, "update", "$setOnInsert", "role").StringValue())
		assert.False(mt, hasField(cmd, "update", "$setOnInsert", "_id"))
		assert.False(mt, hasField(cmd, "update", "$set"))
		assert.True(mt, lookup(mt, cmd, "upsert").Boolean())
		assert.True(mt, lookup(mt, cmd, "new").Boolean())
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing user", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "HealthShop.users", mtest.FirstBatch))

		user, err := repo.FindByEmail(context.Background(), "nobody@b.com")

		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
		assert.Nil(mt, user)
	})
}

func TestUserRepository_UpdateRoleAndDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("update missing user", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		id := primitive.NewObjectID()

		_, err := repo.UpdateRole(context.Background(), id.Hex(), "admin", "")

		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
		cmd := sentCommand(mt)
		assert.Equal(mt, id, lookup(mt, cmd, "query", "_id").ObjectID())
		assert.Equal(mt, "admin", lookup(mt, cmd, "update", "$set", "role").StringValue())
		assert.False(mt, hasField(cmd, "update", "$set", "status"))
		assert.False(mt, hasField(cmd, "upsert"))
	})

	mt.Run("delete missing user", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		user, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())

		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
		assert.Nil(mt, user)
	})

	mt.Run("delete returns removed user", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "gone@b.com"},
		}}))

		user, err := repo.Delete(context.Background(), id.Hex())

		require.NoError(mt, err)
		assert.Equal(mt, "gone@b.com", user.Email)
	})

	mt.Run("delete malformed id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)

		_, err := repo.Delete(context.Background(), "42")

		assert.ErrorIs(mt, err, apperrors.ErrInvalidID)
	})
}
