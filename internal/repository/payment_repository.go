package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"healthshop/internal/db"
	"healthshop/internal/model"
)

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
}

type paymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(database *mongo.Database) PaymentRepository {
	return &paymentRepository{coll: database.Collection(db.PaymentCollection)}
}

// Create creates a new payment record.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}
	return nil
}

// JoinRequestRepository defines join request persistence operations.
type JoinRequestRepository interface {
	Create(ctx context.Context, request *model.JoinRequest) error
}

type joinRequestRepository struct {
	coll *mongo.Collection
}

// NewJoinRequestRepository creates a new join request repository.
func NewJoinRequestRepository(database *mongo.Database) JoinRequestRepository {
	return &joinRequestRepository{coll: database.Collection(db.JoinRequestsCollection)}
}

// Create creates a new join request.
func (r *joinRequestRepository) Create(ctx context.Context, request *model.JoinRequest) error {
	res, err := r.coll.InsertOne(ctx, request)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		request.ID = oid
	}
	return nil
}
