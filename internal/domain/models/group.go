// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a named collection of members inside a tenant (a committee, a
// training squad). Groups carry no dates, address or external id; only the
// name is ever denormalized onto memberships.
type Group struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant   string             `bson:"tenant" json:"tenant"`
	Archived bool               `bson:"archived" json:"archived"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"name_ci"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
