package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups medicines on the storefront.
type Category struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Image string             `json:"image,omitempty" bson:"image,omitempty"`
	Count int                `json:"count,omitempty" bson:"count,omitempty"`
}
