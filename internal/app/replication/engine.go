// Package replication keeps denormalized field copies in sync with their
// source documents.
//
// Dependent documents (memberships, ownerships, personal and working
// relations, reservations) hold redundant snapshots of fields owned by
// persons, orgs, groups and resources so that lists render without joins.
// Whoever creates a dependent seeds its snapshot; from then on the engine
// corrects the copies whenever a source document changes.
//
// Consistency is best-effort and convergent, not transactional: every
// invocation re-reads the current source state and patches each dependent
// with a partial update of exactly the fields that source type owns. A
// failure mid-fan-out leaves the tail stale until the next source write (or
// a resync). Updates from different source types touch disjoint field sets,
// so concurrent fan-outs cannot corrupt each other.
package replication

import (
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
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Engine holds the store set the triggers fan out over. All dependencies are
// injected; the engine keeps no other state, so invocations are independent
// and safe to run concurrently.
type Engine struct {
	persons      *personstore.Store
	orgs         *orgstore.Store
	groups       *groupstore.Store
	resources    *resourcestore.Store
	addresses    *addressstore.Store
	memberships  *membershipstore.Store
	ownerships   *ownershipstore.Store
	personalRels *personalrelstore.Store
	workingRels  *workingrelstore.Store
	reservations *reservationstore.Store
	log          *zap.Logger
}

// New wires an engine over the given database.
func New(db *mongo.Database, logger *zap.Logger) *Engine {
	return &Engine{
		persons:      personstore.New(db),
		orgs:         orgstore.New(db),
		groups:       groupstore.New(db),
		resources:    resourcestore.New(db),
		addresses:    addressstore.New(db),
		memberships:  membershipstore.New(db),
		ownerships:   ownershipstore.New(db),
		personalRels: personalrelstore.New(db),
		workingRels:  workingrelstore.New(db),
		reservations: reservationstore.New(db),
		log:          logger,
	}
}
