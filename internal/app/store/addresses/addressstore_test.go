package addressstore_test

import (
	"strings"
	"testing"

	addressstore "github.com/vereinlab/clubhub/internal/app/store/addresses"
	"github.com/vereinlab/clubhub/internal/domain/models"
	"github.com/vereinlab/clubhub/internal/testutil"
)

func TestFavoriteAddressInfo_AllChannels(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := addressstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")

	fixtures.CreateAddress(ctx, models.Address{
		ParentKey: p.ID, ParentCollection: "persons",
		ChannelType: models.ChannelEmail, Value: "anna@example.com", IsFavorite: true,
	})
	fixtures.CreateAddress(ctx, models.Address{
		ParentKey: p.ID, ParentCollection: "persons",
		ChannelType: models.ChannelPhone, Value: "+41 44 123 45 67", IsFavorite: true,
	})
	fixtures.CreateAddress(ctx, models.Address{
		ParentKey: p.ID, ParentCollection: "persons",
		ChannelType: models.ChannelPostal, Value: "Seestrasse 1", IsFavorite: true,
		Street: "Seestrasse 1", ZipCode: "8001", City: "Zürich", CountryCode: "CH",
	})
	fixtures.CreateAddress(ctx, models.Address{
		ParentKey: p.ID, ParentCollection: "persons",
		ChannelType: models.ChannelWeb, Value: "https://example.com", IsFavorite: true,
	})

	info, err := store.FavoriteAddressInfo(ctx, "persons", p.ID)
	if err != nil {
		t.Fatalf("FavoriteAddressInfo failed: %v", err)
	}

	if info.FavEmail != "anna@example.com" {
		t.Errorf("FavEmail: got %q", info.FavEmail)
	}
	if info.FavPhone != "+41 44 123 45 67" {
		t.Errorf("FavPhone: got %q", info.FavPhone)
	}
	if info.FavStreet != "Seestrasse 1" {
		t.Errorf("FavStreet: got %q", info.FavStreet)
	}
	if info.FavZip != "8001" {
		t.Errorf("FavZip: got %q", info.FavZip)
	}
	if info.FavCity != "Zürich" {
		t.Errorf("FavCity: got %q", info.FavCity)
	}
	if info.FavCountry != "Switzerland" {
		t.Errorf("FavCountry: got %q", info.FavCountry)
	}
	if info.FavWeb != "https://example.com" {
		t.Errorf("FavWeb: got %q", info.FavWeb)
	}
}

func TestFavoriteAddressInfo_PostalOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := addressstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	fixtures.CreateAddress(ctx, models.Address{
		ParentKey: p.ID, ParentCollection: "persons",
		ChannelType: models.ChannelPostal, Value: "Seestrasse 1", IsFavorite: true,
		Street: "Seestrasse 1", ZipCode: "8001", City: "Zürich", CountryCode: "CH",
	})

	info, err := store.FavoriteAddressInfo(ctx, "persons", p.ID)
	if err != nil {
		t.Fatalf("FavoriteAddressInfo failed: %v", err)
	}

	// Only the postal fields are populated, every other channel is empty.
	if info.FavEmail != "" || info.FavPhone != "" || info.FavWeb != "" {
		t.Errorf("non-postal fields not empty: %+v", info)
	}
	if info.FavZip != "8001" || info.FavCity != "Zürich" || info.FavCountry != "Switzerland" {
		t.Errorf("postal fields wrong: %+v", info)
	}
}

func TestFavoriteAddressInfo_NoFavorites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := addressstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	// A non-favorite address must not appear in the fold.
	fixtures.CreateAddress(ctx, models.Address{
		ParentKey: p.ID, ParentCollection: "persons",
		ChannelType: models.ChannelEmail, Value: "anna@example.com", IsFavorite: false,
	})

	info, err := store.FavoriteAddressInfo(ctx, "persons", p.ID)
	if err != nil {
		t.Fatalf("FavoriteAddressInfo failed: %v", err)
	}
	if info != (models.FavoriteAddressInfo{}) {
		t.Errorf("expected all-empty record, got %+v", info)
	}
}

func TestFavoriteAddressInfo_UnknownChannelFails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := addressstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreatePerson(ctx, "Anna", "Keller")
	fixtures.CreateAddress(ctx, models.Address{
		ParentKey: p.ID, ParentCollection: "persons",
		ChannelType: models.ChannelEmail, Value: "anna@example.com", IsFavorite: true,
	})
	fixtures.CreateAddress(ctx, models.Address{
		ParentKey: p.ID, ParentCollection: "persons",
		ChannelType: 99, Value: "???", IsFavorite: true,
	})

	_, err := store.FavoriteAddressInfo(ctx, "persons", p.ID)
	if err == nil {
		t.Fatal("expected error for unknown channel type")
	}
	if !strings.Contains(err.Error(), "unknown channel type 99") {
		t.Errorf("error message: got %q", err.Error())
	}
}

func TestFavoriteAddressInfo_ScopedToParent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := addressstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p1 := fixtures.CreatePerson(ctx, "Anna", "Keller")
	p2 := fixtures.CreatePerson(ctx, "Beat", "Frei")
	fixtures.CreateAddress(ctx, models.Address{
		ParentKey: p2.ID, ParentCollection: "persons",
		ChannelType: models.ChannelEmail, Value: "beat@example.com", IsFavorite: true,
	})

	info, err := store.FavoriteAddressInfo(ctx, "persons", p1.ID)
	if err != nil {
		t.Fatalf("FavoriteAddressInfo failed: %v", err)
	}
	if info.FavEmail != "" {
		t.Errorf("picked up another parent's favorite: %+v", info)
	}
}
