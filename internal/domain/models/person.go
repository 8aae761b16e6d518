// internal/domain/models/person.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person is the source of truth for every "member"/"owner"/"subject"/
// "reserver" denormalized copy held by dependent documents.
//
// Dates are stored as ISO "YYYY-MM-DD" strings; an empty string means unset.
// The fav_* fields are themselves denormalized from the person's favorite
// addresses and are maintained by the replication engine, never edited
// directly.
type Person struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant    string             `bson:"tenant" json:"tenant"`
	Archived  bool               `bson:"archived" json:"archived"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	NameCI    string             `bson:"name_ci" json:"name_ci"` // folded "lastName firstName" for search/sort
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`

	DateOfBirth string `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	DateOfDeath string `bson:"dateOfDeath,omitempty" json:"dateOfDeath,omitempty"`

	BexioID string `bson:"bexioId,omitempty" json:"bexioId,omitempty"`

	FavEmail   string `bson:"fav_email" json:"fav_email"`
	FavPhone   string `bson:"fav_phone" json:"fav_phone"`
	FavStreet  string `bson:"fav_street" json:"fav_street"`
	FavZip     string `bson:"fav_zip" json:"fav_zip"`
	FavCity    string `bson:"fav_city" json:"fav_city"`
	FavCountry string `bson:"fav_country" json:"fav_country"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
