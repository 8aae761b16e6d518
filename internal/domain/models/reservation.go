// internal/domain/models/reservation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation books a resource for a reserver (person or org) over a date
// range. reserverName* mirror the reserver, resourceName/Type/SubType mirror
// the resource.
type Reservation struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant   string             `bson:"tenant" json:"tenant"`
	Archived bool               `bson:"archived" json:"archived"`

	ReserverKey       primitive.ObjectID `bson:"reserverKey" json:"reserverKey"`
	ReserverModelType ModelType          `bson:"reserverModelType" json:"reserverModelType"`
	ResourceKey       primitive.ObjectID `bson:"resourceKey" json:"resourceKey"`

	ReserverName1 string `bson:"reserverName1" json:"reserverName1"`
	ReserverName2 string `bson:"reserverName2" json:"reserverName2"`

	ResourceName    string `bson:"resourceName" json:"resourceName"`
	ResourceType    string `bson:"resourceType" json:"resourceType"`
	ResourceSubType string `bson:"resourceSubType" json:"resourceSubType"`

	StartDate string `bson:"startDate,omitempty" json:"startDate,omitempty"` // ISO "YYYY-MM-DD"
	EndDate   string `bson:"endDate,omitempty" json:"endDate,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
