package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"healthshop/internal/model"
)

func TestMedicineQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter model.MedicineFilter
		want   bson.M
	}{
		{
			name:   "no filter",
			filter: model.MedicineFilter{},
			want:   bson.M{},
		},
		{
			name:   "blank search ignored",
			filter: model.MedicineFilter{Search: "   "},
			want:   bson.M{},
		},
		{
			name:   "category and owner",
			filter: model.MedicineFilter{Category: "Tablet", Email: "s@b.com"},
			want:   bson.M{"category": "Tablet", "email": "s@b.com"},
		},
		{
			name:   "discount only",
			filter: model.MedicineFilter{DiscountOnly: true},
			want:   bson.M{"discount": bson.M{"$gt": 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, medicineQuery(tt.filter))
		})
	}
}

func TestMedicineQuery_SearchIsEscaped(t *testing.T) {
	query := medicineQuery(model.MedicineFilter{Search: " vit.C+ "})

	or, ok := query["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)
	assert.Equal(t, bson.M{"name": primitive.Regex{Pattern: `vit\.C\+`, Options: "i"}}, or[0])
}

func TestMedicineFindOptions(t *testing.T) {
	opts := medicineFindOptions(model.MedicineFilter{Sort: model.PriceSortDesc, Page: 3, Size: 10})

	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, opts.Sort)
	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(20), *opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(10), *opts.Limit)

	none := medicineFindOptions(model.MedicineFilter{})
	assert.Nil(t, none.Sort)
	assert.Nil(t, none.Limit)
}

func TestMedicineRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes medicines", func(mt *mtest.T) {
		repo := NewMedicineRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "HealthShop.medicine", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Napa"}, {Key: "price", Value: 12.5}},
		))

		medicines, err := repo.List(context.Background(), model.MedicineFilter{Sort: model.PriceSortAsc})

		require.NoError(mt, err)
		require.Len(mt, medicines, 1)
		assert.Equal(mt, 12.5, medicines[0].Price)
	})
}

func TestMedicineRepository_UpsertByName(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	seed := &model.Medicine{Name: "Napa", Category: "Tablet", Company: "Beximco", Price: 12.5, CreatedAt: created}

	mt.Run("existing medicine keeps createdAt and seller", func(mt *mtest.T) {
		repo := NewMedicineRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		inserted, err := repo.UpsertByName(context.Background(), seed)

		require.NoError(mt, err)
		assert.False(mt, inserted)
		cmd := sentCommand(mt)
		assert.Equal(mt, "Napa", lookup(mt, cmd, "updates", "0", "q", "name").StringValue())
		assert.True(mt, lookup(mt, cmd, "updates", "0", "upsert").Boolean())
		assert.Equal(mt, 12.5, lookup(mt, cmd, "updates", "0", "u", "$set", "price").Double())
		assert.Equal(mt, "Tablet", lookup(mt, cmd, "updates", "0", "u", "$set", "category").StringValue())
		assert.False(mt, hasField(cmd, "updates", "0", "u", "$set", "createdAt"))
		assert.False(mt, hasField(cmd, "updates", "0", "u", "$set", "email"))
		assert.False(mt, hasField(cmd, "updates", "0", "u", "$set", "_id"))
		assert.True(mt, created.Equal(lookup(mt, cmd, "updates", "0", "u", "$setOnInsert", "createdAt").Time()))
		assert.False(mt, hasField(cmd, "updates", "0", "u", "$setOnInsert", "email"))
	})

	mt.Run("new medicine is reported as created", func(mt *mtest.T) {
		repo := NewMedicineRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: primitive.NewObjectID()}}}},
		))

		inserted, err := repo.UpsertByName(context.Background(), seed)

		require.NoError(mt, err)
		assert.True(mt, inserted)
	})
}
