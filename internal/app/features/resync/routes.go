// internal/app/features/resync/routes.go
package resync

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for manual re-propagation. Mounted under
// /api/resync.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/{collection}/{key}", h.Serve)
	return r
}
