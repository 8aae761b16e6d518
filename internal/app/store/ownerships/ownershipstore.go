// internal/app/store/ownerships/ownershipstore.go
package ownershipstore

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
const Collection = "ownerships"

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection(Collection)}
}

// Create inserts a new ownership. The caller seeds the denormalized owner
// and object snapshots.
func (s *Store) Create(ctx context.Context, o models.Ownership) (models.Ownership, error) {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	res, err := s.c.InsertOne(ctx, o)
	if err != nil {
		return o, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}
	return o, nil
}

// GetByID returns a single ownership by its _id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Ownership, error) {
	var o models.Ownership
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	return o, err
}

// Delete removes the ownership document.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListByOwner returns every ownership whose owner side references key,
// ordered by object name.
func (s *Store) ListByOwner(ctx context.Context, key primitive.ObjectID) ([]models.Ownership, error) {
	return query.Find[models.Ownership](ctx, s.db, Collection,
		[]query.Filter{query.Eq("ownerKey", key)}, query.Asc("objectName"))
}

// ListByObject returns every ownership referencing the resource key.
func (s *Store) ListByObject(ctx context.Context, key primitive.ObjectID) ([]models.Ownership, error) {
	return query.Find[models.Ownership](ctx, s.db, Collection,
		[]query.Filter{query.Eq("objectKey", key)}, query.Asc("ownerName2"))
}

// UpdateOwnerName patches only the two owner name fields.
func (s *Store) UpdateOwnerName(ctx context.Context, id primitive.ObjectID, name1, name2 string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"ownerName1": name1,
		"ownerName2": name2,
	}})
	return err
}

// ObjectInfo is the resource-side snapshot owned by the resource trigger.
type ObjectInfo struct {
	Name    string
	Type    string
	SubType string
}

// UpdateObjectInfo patches the object-side denormalized fields.
func (s *Store) UpdateObjectInfo(ctx context.Context, id primitive.ObjectID, info ObjectInfo) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"objectName":    info.Name,
		"objectType":    info.Type,
		"objectSubType": info.SubType,
	}})
	return err
}
