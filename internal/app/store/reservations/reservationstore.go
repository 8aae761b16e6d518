// internal/app/store/reservations/reservationstore.go
package reservationstore

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
const Collection = "reservations"

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection(Collection)}
}

// Create inserts a new reservation. The caller seeds the denormalized
// reserver and resource snapshots.
func (s *Store) Create(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	res, err := s.c.InsertOne(ctx, r)
	if err != nil {
		return r, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		r.ID = oid
	}
	return r, nil
}

// GetByID returns a single reservation by its _id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Reservation, error) {
	var r models.Reservation
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	return r, err
}

// Delete removes the reservation document.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListByReserver returns every reservation whose reserver references key.
func (s *Store) ListByReserver(ctx context.Context, key primitive.ObjectID) ([]models.Reservation, error) {
	return query.Find[models.Reservation](ctx, s.db, Collection,
		[]query.Filter{query.Eq("reserverKey", key)}, query.Asc("resourceName"))
}

// ListByResource returns every reservation referencing the resource key.
func (s *Store) ListByResource(ctx context.Context, key primitive.ObjectID) ([]models.Reservation, error) {
	return query.Find[models.Reservation](ctx, s.db, Collection,
		[]query.Filter{query.Eq("resourceKey", key)}, query.Asc("startDate"))
}

// UpdateReserverName patches only the two reserver name fields.
func (s *Store) UpdateReserverName(ctx context.Context, id primitive.ObjectID, name1, name2 string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"reserverName1": name1,
		"reserverName2": name2,
	}})
	return err
}

// ResourceInfo is the resource-side snapshot owned by the resource trigger.
type ResourceInfo struct {
	Name    string
	Type    string
	SubType string
}

// UpdateResourceInfo patches the resource-side denormalized fields.
func (s *Store) UpdateResourceInfo(ctx context.Context, id primitive.ObjectID, info ResourceInfo) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"resourceName":    info.Name,
		"resourceType":    info.Type,
		"resourceSubType": info.SubType,
	}})
	return err
}
