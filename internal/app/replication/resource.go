// internal/app/replication/resource.go
package replication

import (
	"context"
	"fmt"

	"github.com/vereinlab/clubhub/internal/app/store/ownerships"
	"github.com/vereinlab/clubhub/internal/app/store/reservations"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ResourceChanged propagates a resource's name, type and subtype onto
// ownerships and reservations referencing it. Deleting a resource cleans
// nothing up: the copies stay as a readable tombstone.
func (e *Engine) ResourceChanged(ctx context.Context, key primitive.ObjectID) error {
	r, err := e.resources.GetByKey(ctx, key)
	if err == mongo.ErrNoDocuments {
		e.log.Warn("resource not found, skipping propagation",
			zap.String("resourceKey", key.Hex()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("resource %s: read: %w", key.Hex(), err)
	}

	owns, err := e.ownerships.ListByObject(ctx, key)
	if err != nil {
		return fmt.Errorf("resource %s: list ownerships: %w", key.Hex(), err)
	}
	objInfo := ownershipstore.ObjectInfo{Name: r.Name, Type: r.Type, SubType: r.SubType}
	for _, o := range owns {
		if err := e.ownerships.UpdateObjectInfo(ctx, o.ID, objInfo); err != nil {
			return fmt.Errorf("resource %s: ownership %s: %w", key.Hex(), o.ID.Hex(), err)
		}
	}

	resos, err := e.reservations.ListByResource(ctx, key)
	if err != nil {
		return fmt.Errorf("resource %s: list reservations: %w", key.Hex(), err)
	}
	resInfo := reservationstore.ResourceInfo{Name: r.Name, Type: r.Type, SubType: r.SubType}
	for _, b := range resos {
		if err := e.reservations.UpdateResourceInfo(ctx, b.ID, resInfo); err != nil {
			return fmt.Errorf("resource %s: reservation %s: %w", key.Hex(), b.ID.Hex(), err)
		}
	}

	e.log.Info("resource propagated",
		zap.String("resourceKey", key.Hex()),
		zap.Int("ownerships", len(owns)),
		zap.Int("reservations", len(resos)))
	return nil
}
