// internal/app/features/resync/handler.go
package resync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vereinlab/clubhub/internal/app/replication"
	"github.com/vereinlab/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler exposes manual re-propagation. POST /api/resync/{collection}/{key}
// re-runs the trigger bound to the collection for one source document —
// the operational fix for dependents left stale by an interrupted fan-out.
type Handler struct {
	engine *replication.Engine
	log    *zap.Logger
}

// NewHandler constructs the resync handler.
func NewHandler(engine *replication.Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, log: logger}
}

type resyncResponse struct {
	Status     string `json:"status"`
	Collection string `json:"collection"`
	Key        string `json:"key"`
	Error      string `json:"error,omitempty"`
}

// Serve handles POST /{collection}/{key}.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	key, err := primitive.ObjectIDFromHex(chi.URLParam(r, "key"))
	if err != nil {
		http.Error(w, "invalid key", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	resp := resyncResponse{Status: "ok", Collection: collection, Key: key.Hex()}
	w.Header().Set("Content-Type", "application/json")

	if err := h.engine.Resync(ctx, collection, key); err != nil {
		if errors.Is(err, replication.ErrUnknownCollection) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.log.Error("manual resync failed",
			zap.String("collection", collection),
			zap.String("key", key.Hex()),
			zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		resp.Status = "error"
		resp.Error = err.Error()
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("resync response encode failed", zap.Error(err))
	}
}
