package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthshop/internal/db"
	"healthshop/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	UpsertByName(ctx context.Context, category *model.Category) (bool, error)
}

type categoryRepository struct {
	coll *mongo.Collection
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(database *mongo.Database) CategoryRepository {
	return &categoryRepository{coll: database.Collection(db.CategoryCollection)}
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	categories := []model.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) UpsertByName(ctx context.Context, category *model.Category) (bool, error) {
	res, err := r.coll.ReplaceOne(ctx,
		bson.M{"name": category.Name},
		category,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

// TestimonialRepository defines testimonial persistence operations.
type TestimonialRepository interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Upsert(ctx context.Context, testimonial *model.Testimonial) (bool, error)
}

type testimonialRepository struct {
	coll *mongo.Collection
}

// NewTestimonialRepository creates a new testimonial repository.
func NewTestimonialRepository(database *mongo.Database) TestimonialRepository {
	return &testimonialRepository{coll: database.Collection(db.TestimonialCollection)}
}

func (r *testimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	testimonials := []model.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// Upsert keys testimonials on (name, content) so reseeding does not duplicate them.
func (r *testimonialRepository) Upsert(ctx context.Context, testimonial *model.Testimonial) (bool, error) {
	res, err := r.coll.ReplaceOne(ctx,
		bson.M{"name": testimonial.Name, "content": testimonial.Content},
		testimonial,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}
