package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"healthshop/internal/model"
)

func TestCategoryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "HealthShop.category", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Tablet"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Syrup"}},
		))

		categories, err := repo.List(context.Background())

		require.NoError(mt, err)
		require.Len(mt, categories, 2)
		assert.Equal(mt, "Syrup", categories[1].Name)
	})

	mt.Run("empty list is not nil", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "HealthShop.category", mtest.FirstBatch))

		categories, err := repo.List(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, categories)
		assert.Empty(mt, categories)
	})

	mt.Run("upsert reports creation", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: primitive.NewObjectID()}}}},
		))

		created, err := repo.UpsertByName(context.Background(), &model.Category{Name: "Tablet"})

		require.NoError(mt, err)
		assert.True(mt, created)
	})

	mt.Run("upsert replaces existing", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		created, err := repo.UpsertByName(context.Background(), &model.Category{Name: "Tablet"})

		require.NoError(mt, err)
		assert.False(mt, created)
	})
}

func TestTestimonialRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list", func(mt *mtest.T) {
		repo := NewTestimonialRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "HealthShop.testimonials", mtest.FirstBatch,
			bson.D{{Key: "name", Value: "Rahim"}, {Key: "content", Value: "Fast delivery"}, {Key: "rating", Value: 4.5}},
		))

		testimonials, err := repo.List(context.Background())

		require.NoError(mt, err)
		require.Len(mt, testimonials, 1)
		assert.Equal(mt, 4.5, testimonials[0].Rating)
	})
}
