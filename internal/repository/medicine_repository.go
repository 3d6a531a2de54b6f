package repository

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthshop/internal/db"
	apperrors "healthshop/internal/errors"
	"healthshop/internal/model"
)

// MedicineRepository defines medicine persistence operations.
type MedicineRepository interface {
	List(ctx context.Context, filter model.MedicineFilter) ([]model.Medicine, error)
	FindByID(ctx context.Context, id string) (*model.Medicine, error)
	Create(ctx context.Context, medicine *model.Medicine) error
	Update(ctx context.Context, id string, update model.MedicineUpdate) (*model.Medicine, error)
	Delete(ctx context.Context, id string) error
	UpsertByName(ctx context.Context, medicine *model.Medicine) (bool, error)
}

type medicineRepository struct {
	coll *mongo.Collection
}

// NewMedicineRepository creates a new medicine repository.
func NewMedicineRepository(database *mongo.Database) MedicineRepository {
	return &medicineRepository{coll: database.Collection(db.MedicineCollection)}
}

// medicineQuery builds the Mongo filter for a listing.
func medicineQuery(filter model.MedicineFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.DiscountOnly {
		query["discount"] = bson.M{"$gt": 0}
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"genericName": pattern},
			bson.M{"company": pattern},
		}
	}
	return query
}

// medicineFindOptions applies price sorting and pagination.
func medicineFindOptions(filter model.MedicineFilter) *options.FindOptions {
	opts := options.Find()
	switch filter.Sort {
	case model.PriceSortAsc:
		opts.SetSort(bson.D{{Key: "price", Value: 1}})
	case model.PriceSortDesc:
		opts.SetSort(bson.D{{Key: "price", Value: -1}})
	}
	if filter.Size > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip((page - 1) * filter.Size).SetLimit(filter.Size)
	}
	return opts
}

// List returns medicines matching the filter.
func (r *medicineRepository) List(ctx context.Context, filter model.MedicineFilter) ([]model.Medicine, error) {
	cursor, err := r.coll.Find(ctx, medicineQuery(filter), medicineFindOptions(filter))
	if err != nil {
		return nil, err
	}
	medicines := []model.Medicine{}
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

// FindByID finds a medicine by ID.
func (r *medicineRepository) FindByID(ctx context.Context, id string) (*model.Medicine, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	var medicine model.Medicine
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&medicine); err != nil {
		return nil, notFound(err)
	}
	return &medicine, nil
}

// Create inserts a medicine and sets its generated ID.
func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	res, err := r.coll.InsertOne(ctx, medicine)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		medicine.ID = oid
	}
	return nil
}

// Update replaces the non-nil fields of update and returns the new document.
func (r *medicineRepository) Update(ctx context.Context, id string, update model.MedicineUpdate) (*model.Medicine, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	var updated model.Medicine
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, notFound(err)
	}
	return &updated, nil
}

// Delete removes a medicine by ID.
func (r *medicineRepository) Delete(ctx context.Context, id string) error {
	oid, err := ParseObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpsertByName updates the catalog fields of the medicine with the same name,
// or inserts it. The stored createdAt and seller email are kept on update.
// It reports whether a new document was created.
func (r *medicineRepository) UpsertByName(ctx context.Context, medicine *model.Medicine) (bool, error) {
	set := bson.M{
		"category": medicine.Category,
		"company":  medicine.Company,
		"price":    medicine.Price,
		"discount": medicine.Discount,
	}
	for field, value := range map[string]string{
		"genericName": medicine.GenericName,
		"description": medicine.Description,
		"massUnit":    medicine.MassUnit,
		"image":       medicine.Image,
	} {
		if value != "" {
			set[field] = value
		}
	}
	onInsert := bson.M{"createdAt": medicine.CreatedAt}
	if medicine.Email != "" {
		onInsert["email"] = medicine.Email
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"name": medicine.Name},
		bson.M{"$set": set, "$setOnInsert": onInsert},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}
