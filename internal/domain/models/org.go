// internal/domain/models/org.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Org represents a club, association or company. Like Person it is a source
// of truth: its name/type/date fields are copied onto ownerships, memberships
// (orgs can be members of other orgs) and working relations.
type Org struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant   string             `bson:"tenant" json:"tenant"`
	Archived bool               `bson:"archived" json:"archived"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"name_ci"`
	Type     string             `bson:"type,omitempty" json:"type,omitempty"` // e.g. "club", "company", "authority"

	DateOfFoundation  string `bson:"dateOfFoundation,omitempty" json:"dateOfFoundation,omitempty"`
	DateOfLiquidation string `bson:"dateOfLiquidation,omitempty" json:"dateOfLiquidation,omitempty"`

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
