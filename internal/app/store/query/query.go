// Package query executes filtered, optionally ordered reads against a
// collection and decodes every match into a typed slice. It is the single
// read path the relationship lookups are built on: callers describe a query
// as (field, operator, value) predicates instead of hand-writing bson.
package query

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Filter is one (field, operator, value) predicate. Supported operators:
// "==", "!=", "<", "<=", ">", ">=", "in".
type Filter struct {
	Field string
	Op    string
	Value any
}

// Sort orders results by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// Asc is a convenience constructor for an ascending sort.
func Asc(field string) *Sort { return &Sort{Field: field} }

// Eq is a convenience constructor for an equality filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: "==", Value: value}
}

var mongoOps = map[string]string{
	"==": "$eq",
	"!=": "$ne",
	"<":  "$lt",
	"<=": "$lte",
	">":  "$gt",
	">=": "$gte",
	"in": "$in",
}

// BuildFilter translates predicates into a bson document. An empty predicate
// list matches everything.
func BuildFilter(filters []Filter) (bson.D, error) {
	out := bson.D{}
	for _, f := range filters {
		op, ok := mongoOps[f.Op]
		if !ok {
			return nil, fmt.Errorf("query: unsupported operator %q", f.Op)
		}
		out = append(out, bson.E{Key: f.Field, Value: bson.D{{Key: op, Value: f.Value}}})
	}
	return out, nil
}

// Find runs the query against db.Collection(collection) and decodes all
// matches into []T. The document identifier rides along in each record's
// `_id`-tagged field. A query with no matches returns an empty slice, not an
// error; read failures are propagated. The result reflects a single
// point-in-time, non-transactional read.
func Find[T any](ctx context.Context, db *mongo.Database, collection string, filters []Filter, sort *Sort) ([]T, error) {
	filter, err := BuildFilter(filters)
	if err != nil {
		return nil, err
	}

	opts := options.Find()
	if sort != nil {
		dir := 1
		if sort.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: sort.Field, Value: dir}})
	}

	cur, err := db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
