// internal/app/replication/group.go
package replication

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// GroupChanged propagates a group rename onto memberships. Groups appear as
// members of orgs and as the org side of their own memberships. A group owns
// only the member name fields; dates, zip and external id belong to person
// and org sources and are never written here.
func (e *Engine) GroupChanged(ctx context.Context, key primitive.ObjectID) error {
	g, err := e.groups.GetByKey(ctx, key)
	if err == mongo.ErrNoDocuments {
		e.log.Warn("group not found, skipping propagation",
			zap.String("groupKey", key.Hex()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("group %s: read: %w", key.Hex(), err)
	}

	asMember, err := e.memberships.ListByMember(ctx, key)
	if err != nil {
		return fmt.Errorf("group %s: list memberships (member): %w", key.Hex(), err)
	}
	for _, m := range asMember {
		if err := e.memberships.UpdateMemberName(ctx, m.ID, "", g.Name); err != nil {
			return fmt.Errorf("group %s: membership %s: %w", key.Hex(), m.ID.Hex(), err)
		}
	}

	asOrg, err := e.memberships.ListByOrg(ctx, key)
	if err != nil {
		return fmt.Errorf("group %s: list memberships (org): %w", key.Hex(), err)
	}
	for _, m := range asOrg {
		if err := e.memberships.UpdateOrgName(ctx, m.ID, g.Name); err != nil {
			return fmt.Errorf("group %s: membership %s: %w", key.Hex(), m.ID.Hex(), err)
		}
	}

	e.log.Info("group propagated",
		zap.String("groupKey", key.Hex()),
		zap.Int("membershipsAsMember", len(asMember)),
		zap.Int("membershipsAsOrg", len(asOrg)))
	return nil
}
