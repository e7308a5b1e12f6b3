package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalogue entry.
//
// Price is always numeric, coerced from the multipart form string on create.
// Size holds the parsed JSON structure the client submitted (an array or
// object of size options); it is stored as-is. Image1/Image2 are either
// empty strings or fully-qualified URLs produced by the upload stage.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Size        interface{}        `bson:"size" json:"size"`
	Image1      string             `bson:"image1" json:"image1"`
	Image2      string             `bson:"image2" json:"image2"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
