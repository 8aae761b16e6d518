package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/vereinlab/clubhub/internal/app/store/addresses"
	"github.com/vereinlab/clubhub/internal/app/store/groups"
	"github.com/vereinlab/clubhub/internal/app/store/memberships"
	"github.com/vereinlab/clubhub/internal/app/store/orgs"
	"github.com/vereinlab/clubhub/internal/app/store/ownerships"
	"github.com/vereinlab/clubhub/internal/app/store/personalrels"
	"github.com/vereinlab/clubhub/internal/app/store/persons"
	"github.com/vereinlab/clubhub/internal/app/store/reservations"
	"github.com/vereinlab/clubhub/internal/app/store/resources"
	"github.com/vereinlab/clubhub/internal/app/store/workingrels"
	"github.com/vereinlab/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultTenant is the tenant id fixtures stamp on every document.
const DefaultTenant = "test-tenant"

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Calls chain: an existing route context on the request is reused.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data. Dependent
// documents are created with their denormalized snapshots seeded the way the
// owning client applications seed them; the replication engine only corrects
// those snapshots afterwards.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T

	Persons      *personstore.Store
	Orgs         *orgstore.Store
	Groups       *groupstore.Store
	Resources    *resourcestore.Store
	Addresses    *addressstore.Store
	Memberships  *membershipstore.Store
	Ownerships   *ownershipstore.Store
	PersonalRels *personalrelstore.Store
	WorkingRels  *workingrelstore.Store
	Reservations *reservationstore.Store
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{
		db:           db,
		t:            t,
		Persons:      personstore.New(db),
		Orgs:         orgstore.New(db),
		Groups:       groupstore.New(db),
		Resources:    resourcestore.New(db),
		Addresses:    addressstore.New(db),
		Memberships:  membershipstore.New(db),
		Ownerships:   ownershipstore.New(db),
		PersonalRels: personalrelstore.New(db),
		WorkingRels:  workingrelstore.New(db),
		Reservations: reservationstore.New(db),
	}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreatePerson creates a test person with the given names.
func (f *Fixtures) CreatePerson(ctx context.Context, firstName, lastName string) models.Person {
	f.t.Helper()
	p, err := f.Persons.Create(ctx, models.Person{
		Tenant:    DefaultTenant,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		f.t.Fatalf("failed to create test person: %v", err)
	}
	return p
}

// CreateOrg creates a test org with the given name and type.
func (f *Fixtures) CreateOrg(ctx context.Context, name, orgType string) models.Org {
	f.t.Helper()
	o, err := f.Orgs.Create(ctx, models.Org{
		Tenant: DefaultTenant,
		Name:   name,
		Type:   orgType,
	})
	if err != nil {
		f.t.Fatalf("failed to create test org: %v", err)
	}
	return o
}

// CreateGroup creates a test group.
func (f *Fixtures) CreateGroup(ctx context.Context, name string) models.Group {
	f.t.Helper()
	g, err := f.Groups.Create(ctx, models.Group{
		Tenant: DefaultTenant,
		Name:   name,
	})
	if err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return g
}

// CreateResource creates a test resource.
func (f *Fixtures) CreateResource(ctx context.Context, name, resType, subType string) models.Resource {
	f.t.Helper()
	r, err := f.Resources.Create(ctx, models.Resource{
		Tenant:  DefaultTenant,
		Name:    name,
		Type:    resType,
		SubType: subType,
	})
	if err != nil {
		f.t.Fatalf("failed to create test resource: %v", err)
	}
	return r
}

// CreateAddress creates an address document for a parent. The caller fills
// channel-specific fields via the template.
func (f *Fixtures) CreateAddress(ctx context.Context, a models.Address) models.Address {
	f.t.Helper()
	a.Tenant = DefaultTenant
	created, err := f.Addresses.Create(ctx, a)
	if err != nil {
		f.t.Fatalf("failed to create test address: %v", err)
	}
	return created
}

// CreateMembershipOfPerson joins a person to an org with a seeded snapshot.
func (f *Fixtures) CreateMembershipOfPerson(ctx context.Context, p models.Person, org models.Org) models.Membership {
	f.t.Helper()
	m, err := f.Memberships.Create(ctx, models.Membership{
		Tenant:            DefaultTenant,
		MemberKey:         p.ID,
		MemberModelType:   models.ModelTypePerson,
		OrgKey:            org.ID,
		MemberName1:       p.FirstName,
		MemberName2:       p.LastName,
		MemberDateOfBirth: p.DateOfBirth,
		MemberDateOfDeath: p.DateOfDeath,
		MemberZipCode:     p.FavZip,
		MemberBexioID:     p.BexioID,
		OrgName:           org.Name,
	})
	if err != nil {
		f.t.Fatalf("failed to create test membership: %v", err)
	}
	return m
}

// CreateMembershipOfOrg joins a member org to a parent org.
func (f *Fixtures) CreateMembershipOfOrg(ctx context.Context, member models.Org, org models.Org) models.Membership {
	f.t.Helper()
	m, err := f.Memberships.Create(ctx, models.Membership{
		Tenant:            DefaultTenant,
		MemberKey:         member.ID,
		MemberModelType:   models.ModelTypeOrg,
		OrgKey:            org.ID,
		MemberName2:       member.Name,
		MemberDateOfBirth: member.DateOfFoundation,
		MemberDateOfDeath: member.DateOfLiquidation,
		MemberZipCode:     member.FavZip,
		MemberBexioID:     member.BexioID,
		OrgName:           org.Name,
	})
	if err != nil {
		f.t.Fatalf("failed to create test membership: %v", err)
	}
	return m
}

// CreateMembershipInGroup joins a person to a group (the group plays the org
// side of the membership).
func (f *Fixtures) CreateMembershipInGroup(ctx context.Context, p models.Person, g models.Group) models.Membership {
	f.t.Helper()
	m, err := f.Memberships.Create(ctx, models.Membership{
		Tenant:          DefaultTenant,
		MemberKey:       p.ID,
		MemberModelType: models.ModelTypePerson,
		OrgKey:          g.ID,
		MemberName1:     p.FirstName,
		MemberName2:     p.LastName,
		OrgName:         g.Name,
	})
	if err != nil {
		f.t.Fatalf("failed to create test membership: %v", err)
	}
	return m
}

// CreateMembershipOfGroup joins a group as a member of an org.
func (f *Fixtures) CreateMembershipOfGroup(ctx context.Context, g models.Group, org models.Org) models.Membership {
	f.t.Helper()
	m, err := f.Memberships.Create(ctx, models.Membership{
		Tenant:          DefaultTenant,
		MemberKey:       g.ID,
		MemberModelType: models.ModelTypeGroup,
		OrgKey:          org.ID,
		MemberName2:     g.Name,
		OrgName:         org.Name,
	})
	if err != nil {
		f.t.Fatalf("failed to create test membership: %v", err)
	}
	return m
}

// CreateOwnershipOfPerson makes a person the owner of a resource.
func (f *Fixtures) CreateOwnershipOfPerson(ctx context.Context, p models.Person, res models.Resource) models.Ownership {
	f.t.Helper()
	o, err := f.Ownerships.Create(ctx, models.Ownership{
		Tenant:         DefaultTenant,
		OwnerKey:       p.ID,
		OwnerModelType: models.ModelTypePerson,
		ObjectKey:      res.ID,
		OwnerName1:     p.FirstName,
		OwnerName2:     p.LastName,
		ObjectName:     res.Name,
		ObjectType:     res.Type,
		ObjectSubType:  res.SubType,
	})
	if err != nil {
		f.t.Fatalf("failed to create test ownership: %v", err)
	}
	return o
}

// CreateOwnershipOfOrg makes an org the owner of a resource.
func (f *Fixtures) CreateOwnershipOfOrg(ctx context.Context, org models.Org, res models.Resource) models.Ownership {
	f.t.Helper()
	o, err := f.Ownerships.Create(ctx, models.Ownership{
		Tenant:         DefaultTenant,
		OwnerKey:       org.ID,
		OwnerModelType: models.ModelTypeOrg,
		ObjectKey:      res.ID,
		OwnerName2:     org.Name,
		ObjectName:     res.Name,
		ObjectType:     res.Type,
		ObjectSubType:  res.SubType,
	})
	if err != nil {
		f.t.Fatalf("failed to create test ownership: %v", err)
	}
	return o
}

// CreatePersonalRel relates two persons with seeded snapshots.
func (f *Fixtures) CreatePersonalRel(ctx context.Context, subject, object models.Person, kind string) models.PersonalRel {
	f.t.Helper()
	r, err := f.PersonalRels.Create(ctx, models.PersonalRel{
		Tenant:       DefaultTenant,
		SubjectKey:   subject.ID,
		ObjectKey:    object.ID,
		SubjectName1: subject.FirstName,
		SubjectName2: subject.LastName,
		ObjectName1:  object.FirstName,
		ObjectName2:  object.LastName,
		Kind:         kind,
	})
	if err != nil {
		f.t.Fatalf("failed to create test personal rel: %v", err)
	}
	return r
}

// CreateWorkingRel relates a person to an org with seeded snapshots.
func (f *Fixtures) CreateWorkingRel(ctx context.Context, subject models.Person, object models.Org, kind string) models.WorkingRel {
	f.t.Helper()
	r, err := f.WorkingRels.Create(ctx, models.WorkingRel{
		Tenant:       DefaultTenant,
		SubjectKey:   subject.ID,
		ObjectKey:    object.ID,
		SubjectName1: subject.FirstName,
		SubjectName2: subject.LastName,
		ObjectName:   object.Name,
		ObjectType:   object.Type,
		Kind:         kind,
	})
	if err != nil {
		f.t.Fatalf("failed to create test working rel: %v", err)
	}
	return r
}

// CreateReservation books a resource for a person with seeded snapshots.
func (f *Fixtures) CreateReservation(ctx context.Context, p models.Person, res models.Resource, startDate, endDate string) models.Reservation {
	f.t.Helper()
	r, err := f.Reservations.Create(ctx, models.Reservation{
		Tenant:            DefaultTenant,
		ReserverKey:       p.ID,
		ReserverModelType: models.ModelTypePerson,
		ResourceKey:       res.ID,
		ReserverName1:     p.FirstName,
		ReserverName2:     p.LastName,
		ResourceName:      res.Name,
		ResourceType:      res.Type,
		ResourceSubType:   res.SubType,
		StartDate:         startDate,
		EndDate:           endDate,
	})
	if err != nil {
		f.t.Fatalf("failed to create test reservation: %v", err)
	}
	return r
}
