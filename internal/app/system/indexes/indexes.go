// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
EnsureAll is called at startup. CreateMany is idempotent for identical key
specs, so re-running on every boot is safe. Errors are aggregated so every
problem is visible and startup can fail fast.

The foreign-key indexes below back the relationship lookups the replication
engine fans out over; without them every propagation is a collection scan.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(collection string, idx []mongo.IndexModel) {
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, idx)
		if err != nil {
			problems = append(problems, collection+": "+err.Error())
		}
	}

	ensure("persons", []mongo.IndexModel{
		keys(bson.D{{Key: "tenant", Value: 1}, {Key: "name_ci", Value: 1}}),
	})
	ensure("orgs", []mongo.IndexModel{
		keys(bson.D{{Key: "tenant", Value: 1}, {Key: "name_ci", Value: 1}}),
	})
	ensure("groups", []mongo.IndexModel{
		keys(bson.D{{Key: "tenant", Value: 1}, {Key: "name_ci", Value: 1}}),
	})
	ensure("resources", []mongo.IndexModel{
		keys(bson.D{{Key: "tenant", Value: 1}, {Key: "name_ci", Value: 1}}),
	})
	ensure("addresses", []mongo.IndexModel{
		keys(bson.D{{Key: "parentCollection", Value: 1}, {Key: "parentKey", Value: 1}, {Key: "isFavorite", Value: 1}}),
	})
	ensure("memberships", []mongo.IndexModel{
		keys(bson.D{{Key: "memberKey", Value: 1}}),
		keys(bson.D{{Key: "orgKey", Value: 1}}),
	})
	ensure("ownerships", []mongo.IndexModel{
		keys(bson.D{{Key: "ownerKey", Value: 1}}),
		keys(bson.D{{Key: "objectKey", Value: 1}}),
	})
	ensure("personal_rels", []mongo.IndexModel{
		keys(bson.D{{Key: "subjectKey", Value: 1}}),
		keys(bson.D{{Key: "objectKey", Value: 1}}),
	})
	ensure("working_rels", []mongo.IndexModel{
		keys(bson.D{{Key: "subjectKey", Value: 1}}),
		keys(bson.D{{Key: "objectKey", Value: 1}}),
	})
	ensure("reservations", []mongo.IndexModel{
		keys(bson.D{{Key: "reserverKey", Value: 1}}),
		keys(bson.D{{Key: "resourceKey", Value: 1}}),
	})

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func keys(k bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: k}
}
