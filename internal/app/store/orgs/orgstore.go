// internal/app/store/orgs/orgstore.go
package orgstore

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
const Collection = "orgs"

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection(Collection)}
}

// Create inserts a new org. NameCI is always derived here.
func (s *Store) Create(ctx context.Context, o models.Org) (models.Org, error) {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	o.NameCI = text.Fold(o.Name)
	res, err := s.c.InsertOne(ctx, o)
	if err != nil {
		return o, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}
	return o, nil
}

// GetByKey returns a single org by its _id.
func (s *Store) GetByKey(ctx context.Context, key primitive.ObjectID) (models.Org, error) {
	var o models.Org
	err := s.c.FindOne(ctx, bson.M{"_id": key}).Decode(&o)
	return o, err
}

// Update replaces an existing org identified by its _id.
func (s *Store) Update(ctx context.Context, o models.Org) (models.Org, error) {
	if o.ID.IsZero() {
		return o, mongo.ErrNilDocument
	}
	now := time.Now().UTC()
	o.UpdatedAt = &now
	o.NameCI = text.Fold(o.Name)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	return o, err
}

// Archive soft-deletes the org.
func (s *Store) Archive(ctx context.Context, key primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": key},
		bson.M{"$set": bson.M{"archived": true, "updated_at": now}})
	return err
}

// List returns all orgs of a tenant ordered by folded name.
func (s *Store) List(ctx context.Context, tenant string) ([]models.Org, error) {
	return query.Find[models.Org](ctx, s.db, Collection, []query.Filter{
		query.Eq("tenant", tenant),
		query.Eq("archived", false),
	}, query.Asc("name_ci"))
}

// ApplyFavoriteAddress patches the six favorite-address fields and
// updated_at onto the org document; see the person store for the reasoning.
func (s *Store) ApplyFavoriteAddress(ctx context.Context, key primitive.ObjectID, info models.FavoriteAddressInfo) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": bson.M{
		"fav_email":   info.FavEmail,
		"fav_phone":   info.FavPhone,
		"fav_street":  info.FavStreet,
		"fav_zip":     info.FavZip,
		"fav_city":    info.FavCity,
		"fav_country": info.FavCountry,
		"updated_at":  time.Now().UTC(),
	}})
	return err
}
