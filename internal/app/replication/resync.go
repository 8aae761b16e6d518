// internal/app/replication/resync.go
package replication

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrUnknownCollection is returned when a resync names a collection no
// trigger is bound to.
var ErrUnknownCollection = errors.New("no trigger bound to collection")

// Resync re-runs the trigger bound to a source collection for one document.
// This is the manual recovery path for dependents left stale by a failed
// fan-out; the engine itself never retries.
func (e *Engine) Resync(ctx context.Context, collection string, key primitive.ObjectID) error {
	switch collection {
	case "persons":
		return e.PersonChanged(ctx, key)
	case "orgs":
		return e.OrgChanged(ctx, key)
	case "groups":
		return e.GroupChanged(ctx, key)
	case "resources":
		return e.ResourceChanged(ctx, key)
	case "addresses":
		return e.addressChanged(ctx, key)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
}

// addressChanged routes an address to its parent's favorite propagation.
// Unlike the change-stream path, a resync only has the address key, so the
// document is read to find the parent.
func (e *Engine) addressChanged(ctx context.Context, key primitive.ObjectID) error {
	a, err := e.addresses.GetByID(ctx, key)
	if err == mongo.ErrNoDocuments {
		e.log.Warn("address not found, skipping propagation",
			zap.String("addressKey", key.Hex()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("address %s: read: %w", key.Hex(), err)
	}
	switch a.ParentCollection {
	case "persons":
		return e.PersonAddressChanged(ctx, a.ParentKey)
	case "orgs":
		return e.OrgAddressChanged(ctx, a.ParentKey)
	default:
		return fmt.Errorf("address %s: unknown parent collection %q", key.Hex(), a.ParentCollection)
	}
}
