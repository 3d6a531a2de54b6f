package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JoinRequest is a community sign-up submitted from the "join us" form.
type JoinRequest struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Phone    string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role     string             `json:"role,omitempty" bson:"role,omitempty"`
	Message  string             `json:"message,omitempty" bson:"message,omitempty"`
	JoinedAt time.Time          `json:"joinedAt" bson:"joinedAt"`
}
