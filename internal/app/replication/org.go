// internal/app/replication/org.go
package replication

import (
	"context"
	"fmt"

	"github.com/vereinlab/clubhub/internal/app/store/memberships"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// OrgChanged propagates an org's current state onto its dependents. An org
// shows up in three roles: as owner of resources, as a member of another org,
// and as the org side of memberships and working relations. Orgs have a
// single name, carried in the second name slot with the first left empty so
// person and org copies sort the same way.
func (e *Engine) OrgChanged(ctx context.Context, key primitive.ObjectID) error {
	o, err := e.orgs.GetByKey(ctx, key)
	if err == mongo.ErrNoDocuments {
		e.log.Warn("org not found, skipping propagation",
			zap.String("orgKey", key.Hex()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("org %s: read: %w", key.Hex(), err)
	}

	owns, err := e.ownerships.ListByOwner(ctx, key)
	if err != nil {
		return fmt.Errorf("org %s: list ownerships: %w", key.Hex(), err)
	}
	for _, own := range owns {
		if err := e.ownerships.UpdateOwnerName(ctx, own.ID, "", o.Name); err != nil {
			return fmt.Errorf("org %s: ownership %s: %w", key.Hex(), own.ID.Hex(), err)
		}
	}

	asMember, err := e.memberships.ListByMember(ctx, key)
	if err != nil {
		return fmt.Errorf("org %s: list memberships (member): %w", key.Hex(), err)
	}
	info := membershipstore.MemberInfo{
		Name2:       o.Name,
		DateOfBirth: o.DateOfFoundation,
		DateOfDeath: o.DateOfLiquidation,
		ZipCode:     o.FavZip,
		BexioID:     o.BexioID,
	}
	for _, m := range asMember {
		if err := e.memberships.UpdateMemberInfo(ctx, m.ID, info); err != nil {
			return fmt.Errorf("org %s: membership %s: %w", key.Hex(), m.ID.Hex(), err)
		}
	}

	asOrg, err := e.memberships.ListByOrg(ctx, key)
	if err != nil {
		return fmt.Errorf("org %s: list memberships (org): %w", key.Hex(), err)
	}
	for _, m := range asOrg {
		if err := e.memberships.UpdateOrgName(ctx, m.ID, o.Name); err != nil {
			return fmt.Errorf("org %s: membership %s: %w", key.Hex(), m.ID.Hex(), err)
		}
	}

	workRels, err := e.workingRels.ListByObject(ctx, key)
	if err != nil {
		return fmt.Errorf("org %s: list working rels: %w", key.Hex(), err)
	}
	for _, r := range workRels {
		if err := e.workingRels.UpdateObjectInfo(ctx, r.ID, o.Name, o.Type); err != nil {
			return fmt.Errorf("org %s: working rel %s: %w", key.Hex(), r.ID.Hex(), err)
		}
	}

	e.log.Info("org propagated",
		zap.String("orgKey", key.Hex()),
		zap.Int("ownerships", len(owns)),
		zap.Int("membershipsAsMember", len(asMember)),
		zap.Int("membershipsAsOrg", len(asOrg)),
		zap.Int("workingRels", len(workRels)))
	return nil
}

// OrgAddressChanged folds the org's favorite addresses and writes the six
// fav_ fields back onto the org document; see PersonAddressChanged.
func (e *Engine) OrgAddressChanged(ctx context.Context, orgKey primitive.ObjectID) error {
	info, err := e.addresses.FavoriteAddressInfo(ctx, "orgs", orgKey)
	if err != nil {
		return fmt.Errorf("org %s: aggregate favorites: %w", orgKey.Hex(), err)
	}
	if err := e.orgs.ApplyFavoriteAddress(ctx, orgKey, info); err != nil {
		return fmt.Errorf("org %s: apply favorites: %w", orgKey.Hex(), err)
	}
	e.log.Info("org favorites propagated", zap.String("orgKey", orgKey.Hex()))
	return nil
}
