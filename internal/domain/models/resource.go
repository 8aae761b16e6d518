// internal/domain/models/resource.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is anything a club owns or rents out: a boat, a room, a locker.
// Name, type and subtype are denormalized onto ownerships and reservations.
type Resource struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant   string             `bson:"tenant" json:"tenant"`
	Archived bool               `bson:"archived" json:"archived"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"name_ci"`
	Type     string             `bson:"type,omitempty" json:"type,omitempty"`       // e.g. "boat", "room"
	SubType  string             `bson:"subType,omitempty" json:"subType,omitempty"` // e.g. "skiff", "double"

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
