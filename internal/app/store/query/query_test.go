package query_test

import (
	"reflect"
	"testing"

	"github.com/vereinlab/clubhub/internal/app/store/query"
	"github.com/vereinlab/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilter_Equality(t *testing.T) {
	got, err := query.BuildFilter([]query.Filter{query.Eq("name", "Alpha")})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	want := bson.D{{Key: "name", Value: bson.D{{Key: "$eq", Value: "Alpha"}}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter: got %v, want %v", got, want)
	}
}

func TestBuildFilter_Operators(t *testing.T) {
	tests := []struct {
		op      string
		mongoOp string
	}{
		{"==", "$eq"},
		{"!=", "$ne"},
		{"<", "$lt"},
		{"<=", "$lte"},
		{">", "$gt"},
		{">=", "$gte"},
		{"in", "$in"},
	}
	for _, tt := range tests {
		got, err := query.BuildFilter([]query.Filter{{Field: "f", Op: tt.op, Value: 1}})
		if err != nil {
			t.Fatalf("BuildFilter(%q) failed: %v", tt.op, err)
		}
		inner, ok := got[0].Value.(bson.D)
		if !ok {
			t.Fatalf("BuildFilter(%q): inner value is %T", tt.op, got[0].Value)
		}
		if inner[0].Key != tt.mongoOp {
			t.Errorf("op %q: got %q, want %q", tt.op, inner[0].Key, tt.mongoOp)
		}
	}
}

func TestBuildFilter_UnsupportedOperator(t *testing.T) {
	_, err := query.BuildFilter([]query.Filter{{Field: "f", Op: "contains", Value: 1}})
	if err == nil {
		t.Fatal("expected error for unsupported operator")
	}
}

func TestBuildFilter_Empty(t *testing.T) {
	got, err := query.BuildFilter(nil)
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty filter, got %v", got)
	}
}

type widget struct {
	Name string `bson:"name"`
	Size int    `bson:"size"`
}

func TestFind_FilteredAndOrdered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	docs := []interface{}{
		widget{Name: "c", Size: 3},
		widget{Name: "a", Size: 1},
		widget{Name: "b", Size: 2},
		widget{Name: "d", Size: 10},
	}
	if _, err := db.Collection("widgets").InsertMany(ctx, docs); err != nil {
		t.Fatalf("InsertMany failed: %v", err)
	}

	got, err := query.Find[widget](ctx, db, "widgets", []query.Filter{
		{Field: "size", Op: "<=", Value: 3},
	}, query.Asc("name"))
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 widgets, got %d", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Name != want {
			t.Errorf("result[%d].Name: got %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestFind_NoMatchesReturnsEmptySlice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := query.Find[widget](ctx, db, "widgets", []query.Filter{
		query.Eq("name", "nope"),
	}, nil)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 results, got %d", len(got))
	}
}

func TestFind_DescendingSort(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	docs := []interface{}{
		widget{Name: "a", Size: 1},
		widget{Name: "b", Size: 2},
	}
	if _, err := db.Collection("widgets").InsertMany(ctx, docs); err != nil {
		t.Fatalf("InsertMany failed: %v", err)
	}

	got, err := query.Find[widget](ctx, db, "widgets", nil, &query.Sort{Field: "size", Desc: true})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(got) != 2 || got[0].Name != "b" {
		t.Errorf("descending sort: got %v", got)
	}
}
