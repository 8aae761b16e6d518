package resync_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vereinlab/clubhub/internal/app/features/resync"
	"github.com/vereinlab/clubhub/internal/app/replication"
	"github.com/vereinlab/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func resyncRequest(collection, key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/"+collection+"/"+key, nil)
	req = testutil.WithChiURLParam(req, "collection", collection)
	return testutil.WithChiURLParam(req, "key", key)
}

func TestServe_RepairsStaleDependent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	engine := replication.New(db, zap.NewNop())
	h := resync.NewHandler(engine, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	org := fixtures.CreateOrg(ctx, "Ruderclub", "club")
	mem := fixtures.CreateMembershipOfPerson(ctx, p, org)

	p.LastName = "Meier"
	if _, err := fixtures.Persons.Update(ctx, p); err != nil {
		t.Fatalf("update person: %v", err)
	}

	rec := httptest.NewRecorder()
	h.Serve(rec, resyncRequest("persons", p.ID.Hex()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Status     string `json:"status"`
		Collection string `json:"collection"`
		Key        string `json:"key"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" || body.Collection != "persons" || body.Key != p.ID.Hex() {
		t.Errorf("body: %+v", body)
	}

	got, err := fixtures.Memberships.GetByID(ctx, mem.ID)
	if err != nil {
		t.Fatalf("read membership: %v", err)
	}
	if got.MemberName2 != "Meier" {
		t.Errorf("dependent not repaired: got %q", got.MemberName2)
	}
}

func TestServe_InvalidKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := resync.NewHandler(replication.New(db, zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Serve(rec, resyncRequest("persons", "not-a-hex-id"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestServe_UnknownCollection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := resync.NewHandler(replication.New(db, zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Serve(rec, resyncRequest("snacks", primitive.NewObjectID().Hex()))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
