// internal/domain/models/workingrel.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkingRel is a person-to-org relationship (employment, board seat).
// The subject side mirrors the person, the object side mirrors the org.
type WorkingRel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant   string             `bson:"tenant" json:"tenant"`
	Archived bool               `bson:"archived" json:"archived"`

	SubjectKey primitive.ObjectID `bson:"subjectKey" json:"subjectKey"`
	ObjectKey  primitive.ObjectID `bson:"objectKey" json:"objectKey"`

	SubjectName1 string `bson:"subjectName1" json:"subjectName1"`
	SubjectName2 string `bson:"subjectName2" json:"subjectName2"`
	ObjectName   string `bson:"objectName" json:"objectName"`
	ObjectType   string `bson:"objectType" json:"objectType"`

	Kind string `bson:"kind,omitempty" json:"kind,omitempty"` // e.g. "employee", "board"

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
