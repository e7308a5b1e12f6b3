package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wazihas/boutique/pkg/auth"
)

// User is a registered shopper or administrator.
//
// Locally registered users carry FirstName/LastName and a Mobile number;
// Google-federated users carry Name and Photo instead. Email is unique
// across both; Mobile is unique when present. Both constraints are enforced
// by indexes in the store (see UserRepository.EnsureIndexes), so concurrent
// registrations cannot slip past an application-level existence check.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName string             `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  string             `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Mobile    string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      auth.Role          `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
