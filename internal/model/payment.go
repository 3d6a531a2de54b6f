package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus represents the fulfilment status of a recorded payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment is a transaction record submitted by the client after it confirmed
// a payment intent with the provider.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Date          string             `json:"date,omitempty" bson:"date,omitempty"`
	CartIDs       []string           `json:"cartIds,omitempty" bson:"cartIds,omitempty"`
	MedicineIDs   []string           `json:"medicineIds,omitempty" bson:"medicineIds,omitempty"`
	Status        PaymentStatus      `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}
