// internal/domain/models/personalrel.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalRel is a person-to-person relationship (parent, spouse, sibling).
// Both sides carry a denormalized name copy so relationship lists render
// without joins.
type PersonalRel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant   string             `bson:"tenant" json:"tenant"`
	Archived bool               `bson:"archived" json:"archived"`

	SubjectKey primitive.ObjectID `bson:"subjectKey" json:"subjectKey"`
	ObjectKey  primitive.ObjectID `bson:"objectKey" json:"objectKey"`

	SubjectName1 string `bson:"subjectName1" json:"subjectName1"`
	SubjectName2 string `bson:"subjectName2" json:"subjectName2"`
	ObjectName1  string `bson:"objectName1" json:"objectName1"`
	ObjectName2  string `bson:"objectName2" json:"objectName2"`

	Kind string `bson:"kind,omitempty" json:"kind,omitempty"` // e.g. "parent", "spouse"

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
