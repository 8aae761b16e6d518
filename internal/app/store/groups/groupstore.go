// internal/app/store/groups/groupstore.go
package groupstore

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
const Collection = "groups"

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection(Collection)}
}

func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	g.NameCI = text.Fold(g.Name)
	res, err := s.c.InsertOne(ctx, g)
	if err != nil {
		return g, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		g.ID = oid
	}
	return g, nil
}

func (s *Store) GetByKey(ctx context.Context, key primitive.ObjectID) (models.Group, error) {
	var g models.Group
	err := s.c.FindOne(ctx, bson.M{"_id": key}).Decode(&g)
	return g, err
}

func (s *Store) Update(ctx context.Context, g models.Group) (models.Group, error) {
	if g.ID.IsZero() {
		return g, mongo.ErrNilDocument
	}
	now := time.Now().UTC()
	g.UpdatedAt = &now
	g.NameCI = text.Fold(g.Name)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": g.ID}, g)
	return g, err
}

// Archive soft-deletes the group.
func (s *Store) Archive(ctx context.Context, key primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": key},
		bson.M{"$set": bson.M{"archived": true, "updated_at": now}})
	return err
}

// List returns all groups of a tenant ordered by folded name.
func (s *Store) List(ctx context.Context, tenant string) ([]models.Group, error) {
	return query.Find[models.Group](ctx, s.db, Collection, []query.Filter{
		query.Eq("tenant", tenant),
		query.Eq("archived", false),
	}, query.Asc("name_ci"))
}
