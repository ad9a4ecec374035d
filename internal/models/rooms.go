package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Amenities   []string           `bson:"amenities" json:"amenities"`
	Latitude    float64            `bson:"latitude" json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64            `bson:"longitude" json:"longitude" validate:"gte=-180,lte=180"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (r *Room) BeforeCreate() error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	return nil
}
