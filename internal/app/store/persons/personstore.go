// internal/app/store/persons/personstore.go
package personstore

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
const Collection = "persons"

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection(Collection)}
}

// nameCI builds the folded search/sort key from the person's names.
func nameCI(p models.Person) string {
	return text.Fold(p.LastName + " " + p.FirstName)
}

// Create inserts a new person. NameCI is always derived here so callers
// cannot store an inconsistent search key.
func (s *Store) Create(ctx context.Context, p models.Person) (models.Person, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.NameCI = nameCI(p)
	res, err := s.c.InsertOne(ctx, p)
	if err != nil {
		return p, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// GetByKey returns a single person by its _id.
func (s *Store) GetByKey(ctx context.Context, key primitive.ObjectID) (models.Person, error) {
	var p models.Person
	err := s.c.FindOne(ctx, bson.M{"_id": key}).Decode(&p)
	return p, err
}

// Update replaces an existing person identified by its _id. UpdatedAt is set
// to now (UTC), NameCI re-derived.
func (s *Store) Update(ctx context.Context, p models.Person) (models.Person, error) {
	if p.ID.IsZero() {
		return p, mongo.ErrNilDocument
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now
	p.NameCI = nameCI(p)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	return p, err
}

// Archive soft-deletes the person. Documents are never hard-deleted by the
// application layer.
func (s *Store) Archive(ctx context.Context, key primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": key},
		bson.M{"$set": bson.M{"archived": true, "updated_at": now}})
	return err
}

// List returns all persons of a tenant ordered by folded name.
func (s *Store) List(ctx context.Context, tenant string) ([]models.Person, error) {
	return query.Find[models.Person](ctx, s.db, Collection, []query.Filter{
		query.Eq("tenant", tenant),
		query.Eq("archived", false),
	}, query.Asc("name_ci"))
}

// ApplyFavoriteAddress patches the six favorite-address fields onto the
// person document, plus updated_at so the reconciliation sweep picks the
// write up. No other field is touched, so the person change it provokes is
// a no-op for every other field owner.
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
