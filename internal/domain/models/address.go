// internal/domain/models/address.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address channel types. Anything outside this range is a schema violation
// and makes favorite aggregation fail hard rather than guess.
const (
	ChannelEmail  = 0
	ChannelPhone  = 1
	ChannelPostal = 2
	ChannelWeb    = 3
)

// Address is a communication channel of a person or org. Exactly one address
// per channel type is expected to be flagged as favorite; the favorite set is
// folded into the parent document's fav_* fields by the replication engine.
type Address struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant           string             `bson:"tenant" json:"tenant"`
	Archived         bool               `bson:"archived" json:"archived"`
	ParentKey        primitive.ObjectID `bson:"parentKey" json:"parentKey"`
	ParentCollection string             `bson:"parentCollection" json:"parentCollection"` // "persons" or "orgs"

	ChannelType int    `bson:"channelType" json:"channelType"`
	Value       string `bson:"value" json:"value"`
	IsFavorite  bool   `bson:"isFavorite" json:"isFavorite"`

	// Postal-only parts; empty for other channels.
	Street      string `bson:"street,omitempty" json:"street,omitempty"`
	ZipCode     string `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	City        string `bson:"city,omitempty" json:"city,omitempty"`
	CountryCode string `bson:"countryCode,omitempty" json:"countryCode,omitempty"` // ISO 3166-1 alpha-2

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
