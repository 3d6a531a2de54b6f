package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleUser is assigned to every newly registered user.
const RoleUser = "user"

// User represents a registered shopper, seller or admin, keyed by email.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Photo     string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role      string             `json:"role" bson:"role"`
	Status    string             `json:"status,omitempty" bson:"status,omitempty"`
	Timestamp int64              `json:"timestamp" bson:"timestamp"` // unix millis at registration
}
