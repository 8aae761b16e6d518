package replication_test

import (
	"testing"
	"time"

	"github.com/vereinlab/clubhub/internal/app/replication"
	membershipstore "github.com/vereinlab/clubhub/internal/app/store/memberships"
	"github.com/vereinlab/clubhub/internal/domain/models"
	"github.com/vereinlab/clubhub/internal/testutil"
	"go.uber.org/zap"
)

func TestSweepJob_RepairsRecentlyUpdatedSources(t *testing.T) {
	db := testutil.SetupTestDB(t)
	engine := replication.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	org := fixtures.CreateOrg(ctx, "Ruderclub", "club")
	mem := fixtures.CreateMembershipOfPerson(ctx, p, org)

	// Simulate a fan-out that never ran: the source changes but the
	// dependent keeps its stale snapshot.
	p.LastName = "Meier"
	if _, err := fixtures.Persons.Update(ctx, p); err != nil {
		t.Fatalf("update person: %v", err)
	}

	job := replication.SweepJob(engine, db, zap.NewNop(), time.Minute, time.Hour)
	if job.Name != "replication-sweep" {
		t.Errorf("job name: got %q", job.Name)
	}
	if err := job.Run(ctx); err != nil {
		t.Fatalf("sweep run failed: %v", err)
	}

	got, err := membershipstore.New(db).GetByID(ctx, mem.ID)
	if err != nil {
		t.Fatalf("read membership: %v", err)
	}
	if got.MemberName2 != "Meier" {
		t.Errorf("dependent not repaired: got %q", got.MemberName2)
	}
}

// A favorite-address fold is a source write like any other: if the fan-out
// it re-fires is interrupted, the sweep must still find the person.
func TestSweepJob_CoversFavoriteAddressWrites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	engine := replication.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	org := fixtures.CreateOrg(ctx, "Ruderclub", "club")
	mem := fixtures.CreateMembershipOfPerson(ctx, p, org)

	// The fold lands on the person but the re-fired fan-out never runs, so
	// the membership's zip copy stays stale.
	err := fixtures.Persons.ApplyFavoriteAddress(ctx, p.ID, models.FavoriteAddressInfo{
		FavZip: "8001", FavCity: "Zürich",
	})
	if err != nil {
		t.Fatalf("apply favorites: %v", err)
	}

	job := replication.SweepJob(engine, db, zap.NewNop(), time.Minute, time.Hour)
	if err := job.Run(ctx); err != nil {
		t.Fatalf("sweep run failed: %v", err)
	}

	got, err := membershipstore.New(db).GetByID(ctx, mem.ID)
	if err != nil {
		t.Fatalf("read membership: %v", err)
	}
	if got.MemberZipCode != "8001" {
		t.Errorf("zip copy not repaired: got %q", got.MemberZipCode)
	}
}

func TestSweepJob_IgnoresSourcesOutsideLookback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	engine := replication.New(db, zap.NewNop())
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

	// Zero lookback: the cutoff is now, the update just made is behind it.
	time.Sleep(10 * time.Millisecond)
	job := replication.SweepJob(engine, db, zap.NewNop(), time.Minute, 0)
	if err := job.Run(ctx); err != nil {
		t.Fatalf("sweep run failed: %v", err)
	}

	got, err := membershipstore.New(db).GetByID(ctx, mem.ID)
	if err != nil {
		t.Fatalf("read membership: %v", err)
	}
	if got.MemberName2 != "Keller" {
		t.Errorf("dependent outside lookback was touched: got %q", got.MemberName2)
	}
}
