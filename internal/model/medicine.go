package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medicine represents a product listed in the shop.
type Medicine struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	GenericName string             `json:"genericName,omitempty" bson:"genericName,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category" bson:"category"`
	Company     string             `json:"company" bson:"company"`
	MassUnit    string             `json:"massUnit,omitempty" bson:"massUnit,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Discount    float64            `json:"discount,omitempty" bson:"discount,omitempty"` // percent off
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"` // seller
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// MedicineUpdate holds the fields a partial update may replace. Nil fields are left untouched.
type MedicineUpdate struct {
	Name        *string  `json:"name,omitempty" bson:"name,omitempty"`
	GenericName *string  `json:"genericName,omitempty" bson:"genericName,omitempty"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty"`
	Category    *string  `json:"category,omitempty" bson:"category,omitempty"`
	Company     *string  `json:"company,omitempty" bson:"company,omitempty"`
	MassUnit    *string  `json:"massUnit,omitempty" bson:"massUnit,omitempty"`
	Price       *float64 `json:"price,omitempty" bson:"price,omitempty" validate:"omitempty,gt=0"`
	Discount    *float64 `json:"discount,omitempty" bson:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
	Image       *string  `json:"image,omitempty" bson:"image,omitempty"`
}

// IsEmpty reports whether the update sets no field.
func (u MedicineUpdate) IsEmpty() bool {
	return u.Name == nil && u.GenericName == nil && u.Description == nil &&
		u.Category == nil && u.Company == nil && u.MassUnit == nil &&
		u.Price == nil && u.Discount == nil && u.Image == nil
}

// PriceSort orders medicine listings by price.
type PriceSort int

const (
	PriceSortNone PriceSort = iota
	PriceSortAsc
	PriceSortDesc
)

// MedicineFilter narrows a medicine listing.
type MedicineFilter struct {
	Search       string
	Category     string
	Email        string
	DiscountOnly bool
	Sort         PriceSort
	Page         int64
	Size         int64
}
