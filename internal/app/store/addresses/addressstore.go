// internal/app/store/addresses/addressstore.go
package addressstore

import (
	"context"
	"fmt"
	"time"

	"github.com/vereinlab/clubhub/internal/app/store/query"
	"github.com/vereinlab/clubhub/internal/app/system/countries"
	"github.com/vereinlab/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the mongo collection backing this store.
const Collection = "addresses"

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection(Collection)}
}

// Create inserts a new address. CreatedAt is set to now (UTC) if zero.
func (s *Store) Create(ctx context.Context, a models.Address) (models.Address, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	res, err := s.c.InsertOne(ctx, a)
	if err != nil {
		return a, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return a, nil
}

// GetByID returns a single address by its _id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Address, error) {
	var a models.Address
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	return a, err
}

// Update replaces an existing address identified by its _id.
func (s *Store) Update(ctx context.Context, a models.Address) (models.Address, error) {
	if a.ID.IsZero() {
		return a, mongo.ErrNilDocument
	}
	now := time.Now().UTC()
	a.UpdatedAt = &now
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	return a, err
}

// Delete removes the address with the given _id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListByParent returns all addresses of a parent document, favorites first.
func (s *Store) ListByParent(ctx context.Context, parentCollection string, parentKey primitive.ObjectID) ([]models.Address, error) {
	return query.Find[models.Address](ctx, s.db, Collection, []query.Filter{
		query.Eq("parentCollection", parentCollection),
		query.Eq("parentKey", parentKey),
	}, &query.Sort{Field: "isFavorite", Desc: true})
}

// ListFavorites returns the parent's addresses flagged as favorite.
func (s *Store) ListFavorites(ctx context.Context, parentCollection string, parentKey primitive.ObjectID) ([]models.Address, error) {
	return query.Find[models.Address](ctx, s.db, Collection, []query.Filter{
		query.Eq("parentCollection", parentCollection),
		query.Eq("parentKey", parentKey),
		query.Eq("isFavorite", true),
	}, query.Asc("channelType"))
}

// FavoriteAddressInfo folds the parent's favorite addresses into one flat
// record, dispatching on channel type. Zero favorites is not an error: the
// all-empty record is returned so stale fav_ fields get cleared. An address
// with a channel type outside the known set fails the whole aggregation;
// an unrecognized channel means schema drift and must not silently corrupt
// denormalized state.
//
// When several favorites share a channel the last one in query order wins.
func (s *Store) FavoriteAddressInfo(ctx context.Context, parentCollection string, parentKey primitive.ObjectID) (models.FavoriteAddressInfo, error) {
	var info models.FavoriteAddressInfo

	favs, err := s.ListFavorites(ctx, parentCollection, parentKey)
	if err != nil {
		return info, err
	}

	for _, a := range favs {
		switch a.ChannelType {
		case models.ChannelEmail:
			info.FavEmail = a.Value
		case models.ChannelPhone:
			info.FavPhone = a.Value
		case models.ChannelPostal:
			info.FavStreet = a.Street
			info.FavZip = a.ZipCode
			info.FavCity = a.City
			info.FavCountry = countries.Name(a.CountryCode)
		case models.ChannelWeb:
			info.FavWeb = a.Value
		default:
			return models.FavoriteAddressInfo{}, fmt.Errorf("unknown channel type %d", a.ChannelType)
		}
	}

	return info, nil
}
