package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one medicine line in a shopper's cart.
// A cart holds at most one item per (Email, Name).
type CartItem struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email"`
	Name       string             `json:"name" bson:"name"`
	MedicineID string             `json:"medicineId,omitempty" bson:"medicineId,omitempty"`
	Price      float64            `json:"price,omitempty" bson:"price,omitempty"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	Company    string             `json:"company,omitempty" bson:"company,omitempty"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	AddedAt    time.Time          `json:"addedAt" bson:"addedAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}
