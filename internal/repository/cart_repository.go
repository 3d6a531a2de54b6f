package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthshop/internal/db"
	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	AddOrIncrement(ctx context.Context, item *model.CartItem, now time.Time) (*model.CartItem, error)
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	SetQuantity(ctx context.Context, id, email string, quantity int, now time.Time) (*model.CartItem, error)
	AdjustQuantity(ctx context.Context, id, email string, delta int, now time.Time) (*model.CartItem, error)
	DeleteItem(ctx context.Context, id, email string) error
	Clear(ctx context.Context, email string) (int64, error)
	PurgeStale(ctx context.Context, before time.Time) (int64, error)
}

type cartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(database *mongo.Database) CartRepository {
	return &cartRepository{coll: database.Collection(db.CartCollection)}
}

// AddOrIncrement inserts the item with quantity 1, or increments the quantity
// of the existing (email, name) row by one, in a single atomic upsert.
func (r *cartRepository) AddOrIncrement(ctx context.Context, item *model.CartItem, now time.Time) (*model.CartItem, error) {
	onInsert := bson.M{"addedAt": now}
	if item.MedicineID != "" {
		onInsert["medicineId"] = item.MedicineID
	}
	if item.Price != 0 {
		onInsert["price"] = item.Price
	}
	if item.Image != "" {
		onInsert["image"] = item.Image
	}
	if item.Company != "" {
		onInsert["company"] = item.Company
	}

	update := bson.M{
		"$inc":         bson.M{"quantity": 1},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": onInsert,
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored model.CartItem
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"email": item.Email, "name": item.Name},
		update,
		opts,
	).Decode(&stored)
	if err != nil {
		return nil, notFound(err)
	}
	return &stored, nil
}

func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email},
		options.Find().SetSort(bson.D{{Key: "addedAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	items := []model.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"email": email})
}

// SetQuantity replaces the quantity of the row owned by email.
func (r *cartRepository) SetQuantity(ctx context.Context, id, email string, quantity int, now time.Time) (*model.CartItem, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	var updated model.CartItem
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "email": email},
		bson.M{"$set": bson.M{"quantity": quantity, "updatedAt": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, notFound(err)
	}
	return &updated, nil
}

// AdjustQuantity adds delta to the quantity of the row owned by email. The
// update only applies when the result stays at or above one; otherwise
// ErrInvalidQuantity is returned and the row is left as is.
func (r *cartRepository) AdjustQuantity(ctx context.Context, id, email string, delta int, now time.Time) (*model.CartItem, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	// 1 - delta must not overflow.
	if delta == math.MinInt {
		return nil, apperrors.ErrInvalidQuantity
	}
	filter := bson.M{
		"_id":      oid,
		"email":    email,
		"quantity": bson.M{"$gte": 1 - delta},
	}
	update := bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"updatedAt": now},
	}

	var updated model.CartItem
	err = r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid, "email": email})
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, apperrors.ErrInvalidQuantity
	}
	return nil, apperrors.ErrNotFound
}

// DeleteItem removes a row only when both id and owner email match.
func (r *cartRepository) DeleteItem(ctx context.Context, id, email string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "email": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, email string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// PurgeStale deletes rows not touched since before.
func (r *cartRepository) PurgeStale(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"updatedAt": bson.M{"$lt": before}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
