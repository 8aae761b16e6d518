// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"time"

	"github.com/vereinlab/clubhub/internal/app/store/query"
	"github.com/vereinlab/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the mongo collection backing this store.
const Collection = "memberships"

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection(Collection)}
}

// Create inserts a new membership. The caller seeds the denormalized member
// and org snapshots; the replication engine only corrects them afterwards.
func (s *Store) Create(ctx context.Context, m models.Membership) (models.Membership, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	res, err := s.c.InsertOne(ctx, m)
	if err != nil {
		return m, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		m.ID = oid
	}
	return m, nil
}

// GetByID returns a single membership by its _id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Membership, error) {
	var m models.Membership
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	return m, err
}

// Delete removes the membership document. Used by admin tooling only; the
// replication engine never creates or deletes dependents.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListByMember returns every membership whose member side references key.
// Ordered by org name for display; the order is irrelevant to propagation.
func (s *Store) ListByMember(ctx context.Context, key primitive.ObjectID) ([]models.Membership, error) {
	return query.Find[models.Membership](ctx, s.db, Collection,
		[]query.Filter{query.Eq("memberKey", key)}, query.Asc("orgName"))
}

// ListByOrg returns every membership whose org side references key.
func (s *Store) ListByOrg(ctx context.Context, key primitive.ObjectID) ([]models.Membership, error) {
	return query.Find[models.Membership](ctx, s.db, Collection,
		[]query.Filter{query.Eq("orgKey", key)}, query.Asc("memberName2"))
}

// MemberInfo is the full member-side snapshot owned by the person and org
// change triggers.
type MemberInfo struct {
	Name1       string
	Name2       string
	DateOfBirth string
	DateOfDeath string
	ZipCode     string
	BexioID     string
}

// UpdateMemberInfo patches the member-side denormalized fields of one
// membership document and nothing else.
func (s *Store) UpdateMemberInfo(ctx context.Context, id primitive.ObjectID, info MemberInfo) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"memberName1":       info.Name1,
		"memberName2":       info.Name2,
		"memberDateOfBirth": info.DateOfBirth,
		"memberDateOfDeath": info.DateOfDeath,
		"memberZipCode":     info.ZipCode,
		"memberBexioId":     info.BexioID,
	}})
	return err
}

// UpdateMemberName patches only the two member name fields. This is the
// write shape of the group trigger: groups carry no dates, zip or external
// id, and those fields belong to other source types.
func (s *Store) UpdateMemberName(ctx context.Context, id primitive.ObjectID, name1, name2 string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"memberName1": name1,
		"memberName2": name2,
	}})
	return err
}

// UpdateOrgName patches only the denormalized org name.
func (s *Store) UpdateOrgName(ctx context.Context, id primitive.ObjectID, orgName string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"orgName": orgName}})
	return err
}
