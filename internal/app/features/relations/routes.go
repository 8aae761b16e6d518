// internal/app/features/relations/routes.go
package relations

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the relationship read endpoints. Mounted
// under /api.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/members/{key}/memberships", h.MembershipsByMember)
	r.Get("/orgs/{key}/memberships", h.MembershipsByOrg)
	r.Get("/orgs/{key}/working-rels", h.WorkingRelsOfOrg)
	r.Get("/owners/{key}/ownerships", h.OwnershipsByOwner)
	r.Get("/persons/{key}/personal-rels", h.PersonalRelsOf)
	r.Get("/persons/{key}/working-rels", h.WorkingRelsOf)
	r.Get("/reservers/{key}/reservations", h.ReservationsByReserver)
	r.Get("/resources/{key}/ownerships", h.OwnershipsByResource)
	r.Get("/resources/{key}/reservations", h.ReservationsByResource)

	return r
}
