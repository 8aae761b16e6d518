// internal/domain/models/ownership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ownership joins an owner (person or org) to a resource. ownerName* mirror
// the owner document, objectName/Type/SubType mirror the resource.
type Ownership struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant   string             `bson:"tenant" json:"tenant"`
	Archived bool               `bson:"archived" json:"archived"`

	OwnerKey       primitive.ObjectID `bson:"ownerKey" json:"ownerKey"`
	OwnerModelType ModelType          `bson:"ownerModelType" json:"ownerModelType"`
	ObjectKey      primitive.ObjectID `bson:"objectKey" json:"objectKey"` // the resource

	OwnerName1 string `bson:"ownerName1" json:"ownerName1"`
	OwnerName2 string `bson:"ownerName2" json:"ownerName2"`

	ObjectName    string `bson:"objectName" json:"objectName"`
	ObjectType    string `bson:"objectType" json:"objectType"`
	ObjectSubType string `bson:"objectSubType" json:"objectSubType"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
