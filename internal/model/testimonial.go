package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Testimonial is a customer review shown on the landing page.
type Testimonial struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name,omitempty" bson:"name,omitempty"`
	Image   string             `json:"image,omitempty" bson:"image,omitempty"`
	Content string             `json:"content" bson:"content"`
	Rating  float64            `json:"rating,omitempty" bson:"rating,omitempty"`
}
