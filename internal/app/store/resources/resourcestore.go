// internal/app/store/resources/resourcestore.go
package resourcestore

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/vereinlab/clubhub/internal/app/store/query"
	"github.com/vereinlab/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the mongo collection backing this store.
const Collection = "resources"

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection(Collection)}
}

func (s *Store) Create(ctx context.Context, r models.Resource) (models.Resource, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.NameCI = text.Fold(r.Name)
	res, err := s.c.InsertOne(ctx, r)
	if err != nil {
		return r, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		r.ID = oid
	}
	return r, nil
}

func (s *Store) GetByKey(ctx context.Context, key primitive.ObjectID) (models.Resource, error) {
	var r models.Resource
	err := s.c.FindOne(ctx, bson.M{"_id": key}).Decode(&r)
	return r, err
}

func (s *Store) Update(ctx context.Context, r models.Resource) (models.Resource, error) {
	if r.ID.IsZero() {
		return r, mongo.ErrNilDocument
	}
	now := time.Now().UTC()
	r.UpdatedAt = &now
	r.NameCI = text.Fold(r.Name)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": r.ID}, r)
	return r, err
}

// Archive soft-deletes the resource. Denormalized copies on ownerships and
// reservations are left as they are; there is no cascade.
func (s *Store) Archive(ctx context.Context, key primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": key},
		bson.M{"$set": bson.M{"archived": true, "updated_at": now}})
	return err
}

// List returns all resources of a tenant ordered by folded name.
func (s *Store) List(ctx context.Context, tenant string) ([]models.Resource, error) {
	return query.Find[models.Resource](ctx, s.db, Collection, []query.Filter{
		query.Eq("tenant", tenant),
		query.Eq("archived", false),
	}, query.Asc("name_ci"))
}
