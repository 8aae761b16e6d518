// internal/domain/models/membership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership joins a member (person, org or group) to an org. The member*
// and orgName fields are denormalized snapshots of the referenced documents,
// seeded by whoever creates the membership and corrected by the replication
// engine whenever the source changes.
type Membership struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Tenant   string             `bson:"tenant" json:"tenant"`
	Archived bool               `bson:"archived" json:"archived"`

	MemberKey       primitive.ObjectID `bson:"memberKey" json:"memberKey"`
	MemberModelType ModelType          `bson:"memberModelType" json:"memberModelType"`
	OrgKey          primitive.ObjectID `bson:"orgKey" json:"orgKey"`

	// Denormalized from the member (person: first/last name; org and group:
	// name in memberName2 with memberName1 empty).
	MemberName1       string `bson:"memberName1" json:"memberName1"`
	MemberName2       string `bson:"memberName2" json:"memberName2"`
	MemberDateOfBirth string `bson:"memberDateOfBirth" json:"memberDateOfBirth"`
	MemberDateOfDeath string `bson:"memberDateOfDeath" json:"memberDateOfDeath"`
	MemberZipCode     string `bson:"memberZipCode" json:"memberZipCode"`
	MemberBexioID     string `bson:"memberBexioId" json:"memberBexioId"`

	// Denormalized from the org.
	OrgName string `bson:"orgName" json:"orgName"`

	Function  string     `bson:"function,omitempty" json:"function,omitempty"` // e.g. "president", "coach"
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
