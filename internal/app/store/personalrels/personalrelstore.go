// internal/app/store/personalrels/personalrelstore.go
package personalrelstore

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
const Collection = "personal_rels"

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection(Collection)}
}

// Create inserts a new personal relation. The caller seeds both name
// snapshots.
func (s *Store) Create(ctx context.Context, r models.PersonalRel) (models.PersonalRel, error) {
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

// GetByID returns a single relation by its _id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.PersonalRel, error) {
	var r models.PersonalRel
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	return r, err
}

// Delete removes the relation document.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListBySubject returns every relation whose subject references key.
func (s *Store) ListBySubject(ctx context.Context, key primitive.ObjectID) ([]models.PersonalRel, error) {
	return query.Find[models.PersonalRel](ctx, s.db, Collection,
		[]query.Filter{query.Eq("subjectKey", key)}, query.Asc("objectName2"))
}

// ListByObject returns every relation whose object references key.
func (s *Store) ListByObject(ctx context.Context, key primitive.ObjectID) ([]models.PersonalRel, error) {
	return query.Find[models.PersonalRel](ctx, s.db, Collection,
		[]query.Filter{query.Eq("objectKey", key)}, query.Asc("subjectName2"))
}

// UpdateSubjectName patches only the subject-side name copy.
func (s *Store) UpdateSubjectName(ctx context.Context, id primitive.ObjectID, name1, name2 string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"subjectName1": name1,
		"subjectName2": name2,
	}})
	return err
}

// UpdateObjectName patches only the object-side name copy.
func (s *Store) UpdateObjectName(ctx context.Context, id primitive.ObjectID, name1, name2 string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"objectName1": name1,
		"objectName2": name2,
	}})
	return err
}
