package membershipstore_test

import (
	"testing"

	membershipstore "github.com/vereinlab/clubhub/internal/app/store/memberships"
	"github.com/vereinlab/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_ListByMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	other := fixtures.CreatePerson(ctx, "Beat", "Frei")
	org1 := fixtures.CreateOrg(ctx, "Ruderclub", "club")
	org2 := fixtures.CreateOrg(ctx, "Segelclub", "club")

	fixtures.CreateMembershipOfPerson(ctx, p, org1)
	fixtures.CreateMembershipOfPerson(ctx, p, org2)
	fixtures.CreateMembershipOfPerson(ctx, other, org1)

	got, err := store.ListByMember(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByMember failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 memberships, got %d", len(got))
	}
	// Ordered by orgName.
	if got[0].OrgName != "Ruderclub" || got[1].OrgName != "Segelclub" {
		t.Errorf("order: got %q, %q", got[0].OrgName, got[1].OrgName)
	}
}

func TestStore_ListByOrg(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	org := fixtures.CreateOrg(ctx, "Ruderclub", "club")
	otherOrg := fixtures.CreateOrg(ctx, "Segelclub", "club")

	fixtures.CreateMembershipOfPerson(ctx, p, org)
	fixtures.CreateMembershipOfPerson(ctx, p, otherOrg)

	got, err := store.ListByOrg(ctx, org.ID)
	if err != nil {
		t.Fatalf("ListByOrg failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 membership, got %d", len(got))
	}
	if got[0].OrgKey != org.ID {
		t.Errorf("OrgKey: got %s, want %s", got[0].OrgKey.Hex(), org.ID.Hex())
	}
}

func TestStore_ListByMember_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.ListByMember(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ListByMember failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 memberships, got %d", len(got))
	}
}

func TestStore_UpdateMemberInfo_TouchesOnlyMemberFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	org := fixtures.CreateOrg(ctx, "Ruderclub", "club")
	m := fixtures.CreateMembershipOfPerson(ctx, p, org)

	err := store.UpdateMemberInfo(ctx, m.ID, membershipstore.MemberInfo{
		Name1:       "Anna",
		Name2:       "Meier",
		DateOfBirth: "1990-04-12",
		ZipCode:     "8001",
		BexioID:     "bx-7",
	})
	if err != nil {
		t.Fatalf("UpdateMemberInfo failed: %v", err)
	}

	got, err := store.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.MemberName2 != "Meier" || got.MemberDateOfBirth != "1990-04-12" ||
		got.MemberZipCode != "8001" || got.MemberBexioID != "bx-7" {
		t.Errorf("member fields not updated: %+v", got)
	}
	// Org-side copy is owned by the org trigger and must be untouched.
	if got.OrgName != "Ruderclub" {
		t.Errorf("OrgName changed: got %q", got.OrgName)
	}
	if got.OrgKey != org.ID || got.MemberKey != p.ID {
		t.Error("foreign keys changed")
	}
}

func TestStore_UpdateMemberName_LeavesDatesAlone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	org := fixtures.CreateOrg(ctx, "Ruderclub", "club")
	m := fixtures.CreateMembershipOfPerson(ctx, p, org)

	// Seed a birth date directly to prove UpdateMemberName does not write it.
	_, err := db.Collection(membershipstore.Collection).UpdateOne(ctx,
		bson.M{"_id": m.ID},
		bson.M{"$set": bson.M{"memberDateOfBirth": "1990-04-12"}})
	if err != nil {
		t.Fatalf("seed update failed: %v", err)
	}

	if err := store.UpdateMemberName(ctx, m.ID, "", "Aktive"); err != nil {
		t.Fatalf("UpdateMemberName failed: %v", err)
	}

	got, err := store.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.MemberName1 != "" || got.MemberName2 != "Aktive" {
		t.Errorf("names: got %q %q", got.MemberName1, got.MemberName2)
	}
	if got.MemberDateOfBirth != "1990-04-12" {
		t.Errorf("MemberDateOfBirth was touched: got %q", got.MemberDateOfBirth)
	}
}

func TestStore_UpdateOrgName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := membershipstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	org := fixtures.CreateOrg(ctx, "Ruderclub", "club")
	m := fixtures.CreateMembershipOfPerson(ctx, p, org)

	if err := store.UpdateOrgName(ctx, m.ID, "Ruderclub Zürich"); err != nil {
		t.Fatalf("UpdateOrgName failed: %v", err)
	}

	got, err := store.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.OrgName != "Ruderclub Zürich" {
		t.Errorf("OrgName: got %q", got.OrgName)
	}
	if got.MemberName2 != "Keller" {
		t.Errorf("member fields changed: %+v", got)
	}
}
