// internal/app/features/relations/handler.go
package relations

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vereinlab/clubhub/internal/app/store/memberships"
	"github.com/vereinlab/clubhub/internal/app/store/ownerships"
	"github.com/vereinlab/clubhub/internal/app/store/personalrels"
	"github.com/vereinlab/clubhub/internal/app/store/reservations"
	"github.com/vereinlab/clubhub/internal/app/store/workingrels"
	"github.com/vereinlab/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the read-only relationship queries: for a given source
// document, which dependents reference it. These are the same lookups the
// replication engine fans out over, exposed as JSON lists. The handler reads
// the denormalized copies as stored; it never recomputes them.
type Handler struct {
	memberships  *membershipstore.Store
	ownerships   *ownershipstore.Store
	personalRels *personalrelstore.Store
	workingRels  *workingrelstore.Store
	reservations *reservationstore.Store
	log          *zap.Logger
}

// NewHandler constructs the relations handler over the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		memberships:  membershipstore.New(db),
		ownerships:   ownershipstore.New(db),
		personalRels: personalrelstore.New(db),
		workingRels:  workingrelstore.New(db),
		reservations: reservationstore.New(db),
		log:          logger,
	}
}

// keyParam parses the {key} URL parameter. Writes a 400 and returns false on
// a malformed id.
func keyParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	key, err := primitive.ObjectIDFromHex(chi.URLParam(r, "key"))
	if err != nil {
		http.Error(w, "invalid key", http.StatusBadRequest)
		return primitive.NilObjectID, false
	}
	return key, true
}

func (h *Handler) respond(w http.ResponseWriter, result any, err error) {
	if err != nil {
		h.log.Error("relations query failed", zap.Error(err))
		http.Error(w, "query failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log.Error("relations response encode failed", zap.Error(err))
	}
}

func (h *Handler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeouts.Medium())
}

// MembershipsByMember handles GET /api/members/{key}/memberships.
func (h *Handler) MembershipsByMember(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()
	out, err := h.memberships.ListByMember(ctx, key)
	h.respond(w, out, err)
}

// MembershipsByOrg handles GET /api/orgs/{key}/memberships.
func (h *Handler) MembershipsByOrg(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()
	out, err := h.memberships.ListByOrg(ctx, key)
	h.respond(w, out, err)
}

// OwnershipsByOwner handles GET /api/owners/{key}/ownerships.
func (h *Handler) OwnershipsByOwner(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()
	out, err := h.ownerships.ListByOwner(ctx, key)
	h.respond(w, out, err)
}

// OwnershipsByResource handles GET /api/resources/{key}/ownerships.
func (h *Handler) OwnershipsByResource(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()
	out, err := h.ownerships.ListByObject(ctx, key)
	h.respond(w, out, err)
}

// PersonalRelsOf handles GET /api/persons/{key}/personal-rels. Both sides of
// the relation are returned: relations where the person is subject and where
// it is object.
func (h *Handler) PersonalRelsOf(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	asSubject, err := h.personalRels.ListBySubject(ctx, key)
	if err != nil {
		h.respond(w, nil, err)
		return
	}
	asObject, err := h.personalRels.ListByObject(ctx, key)
	if err != nil {
		h.respond(w, nil, err)
		return
	}
	h.respond(w, map[string]any{
		"asSubject": asSubject,
		"asObject":  asObject,
	}, nil)
}

// WorkingRelsOf handles GET /api/persons/{key}/working-rels.
func (h *Handler) WorkingRelsOf(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()
	out, err := h.workingRels.ListBySubject(ctx, key)
	h.respond(w, out, err)
}

// WorkingRelsOfOrg handles GET /api/orgs/{key}/working-rels.
func (h *Handler) WorkingRelsOfOrg(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()
	out, err := h.workingRels.ListByObject(ctx, key)
	h.respond(w, out, err)
}

// ReservationsByReserver handles GET /api/reservers/{key}/reservations.
func (h *Handler) ReservationsByReserver(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()
	out, err := h.reservations.ListByReserver(ctx, key)
	h.respond(w, out, err)
}

// ReservationsByResource handles GET /api/resources/{key}/reservations.
func (h *Handler) ReservationsByResource(w http.ResponseWriter, r *http.Request) {
	key, ok := keyParam(w, r)
	if !ok {
		return
	}
	ctx, cancel := h.withTimeout(r)
	defer cancel()
	out, err := h.reservations.ListByResource(ctx, key)
	h.respond(w, out, err)
}
