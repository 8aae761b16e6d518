// internal/app/replication/person.go
package replication

import (
	"context"
	"fmt"

	"github.com/vereinlab/clubhub/internal/app/store/memberships"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PersonChanged propagates a person's current state onto every dependent
// holding a copy of it: ownerships where the person is owner, memberships
// where it is member, personal relations on both sides, working relations on
// the subject side, and reservations where it is reserver.
//
// A missing source document (deleted or never existed) is not an error; the
// invocation logs and exits without touching any dependent. The first failed
// dependent update aborts the invocation: dependents already patched stay
// patched, the rest stay stale until the next person write.
func (e *Engine) PersonChanged(ctx context.Context, key primitive.ObjectID) error {
	p, err := e.persons.GetByKey(ctx, key)
	if err == mongo.ErrNoDocuments {
		e.log.Warn("person not found, skipping propagation",
			zap.String("personKey", key.Hex()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("person %s: read: %w", key.Hex(), err)
	}

	owns, err := e.ownerships.ListByOwner(ctx, key)
	if err != nil {
		return fmt.Errorf("person %s: list ownerships: %w", key.Hex(), err)
	}
	for _, o := range owns {
		if err := e.ownerships.UpdateOwnerName(ctx, o.ID, p.FirstName, p.LastName); err != nil {
			return fmt.Errorf("person %s: ownership %s: %w", key.Hex(), o.ID.Hex(), err)
		}
	}

	mems, err := e.memberships.ListByMember(ctx, key)
	if err != nil {
		return fmt.Errorf("person %s: list memberships: %w", key.Hex(), err)
	}
	info := membershipstore.MemberInfo{
		Name1:       p.FirstName,
		Name2:       p.LastName,
		DateOfBirth: p.DateOfBirth,
		DateOfDeath: p.DateOfDeath,
		ZipCode:     p.FavZip,
		BexioID:     p.BexioID,
	}
	for _, m := range mems {
		if err := e.memberships.UpdateMemberInfo(ctx, m.ID, info); err != nil {
			return fmt.Errorf("person %s: membership %s: %w", key.Hex(), m.ID.Hex(), err)
		}
	}

	subjRels, err := e.personalRels.ListBySubject(ctx, key)
	if err != nil {
		return fmt.Errorf("person %s: list personal rels (subject): %w", key.Hex(), err)
	}
	for _, r := range subjRels {
		if err := e.personalRels.UpdateSubjectName(ctx, r.ID, p.FirstName, p.LastName); err != nil {
			return fmt.Errorf("person %s: personal rel %s: %w", key.Hex(), r.ID.Hex(), err)
		}
	}

	objRels, err := e.personalRels.ListByObject(ctx, key)
	if err != nil {
		return fmt.Errorf("person %s: list personal rels (object): %w", key.Hex(), err)
	}
	for _, r := range objRels {
		if err := e.personalRels.UpdateObjectName(ctx, r.ID, p.FirstName, p.LastName); err != nil {
			return fmt.Errorf("person %s: personal rel %s: %w", key.Hex(), r.ID.Hex(), err)
		}
	}

	workRels, err := e.workingRels.ListBySubject(ctx, key)
	if err != nil {
		return fmt.Errorf("person %s: list working rels: %w", key.Hex(), err)
	}
	for _, r := range workRels {
		if err := e.workingRels.UpdateSubjectName(ctx, r.ID, p.FirstName, p.LastName); err != nil {
			return fmt.Errorf("person %s: working rel %s: %w", key.Hex(), r.ID.Hex(), err)
		}
	}

	resos, err := e.reservations.ListByReserver(ctx, key)
	if err != nil {
		return fmt.Errorf("person %s: list reservations: %w", key.Hex(), err)
	}
	for _, r := range resos {
		if err := e.reservations.UpdateReserverName(ctx, r.ID, p.FirstName, p.LastName); err != nil {
			return fmt.Errorf("person %s: reservation %s: %w", key.Hex(), r.ID.Hex(), err)
		}
	}

	e.log.Info("person propagated",
		zap.String("personKey", key.Hex()),
		zap.Int("ownerships", len(owns)),
		zap.Int("memberships", len(mems)),
		zap.Int("personalRels", len(subjRels)+len(objRels)),
		zap.Int("workingRels", len(workRels)),
		zap.Int("reservations", len(resos)))
	return nil
}

// PersonAddressChanged folds the person's favorite addresses and writes the
// six fav_ fields back onto the person document. The resulting person write
// re-fires PersonChanged, which is wanted (a new favorite zip must reach
// memberships) and safe: the re-run reads fresh state and patches the same
// values, so there is no further write to re-trigger and no recursion.
func (e *Engine) PersonAddressChanged(ctx context.Context, personKey primitive.ObjectID) error {
	info, err := e.addresses.FavoriteAddressInfo(ctx, "persons", personKey)
	if err != nil {
		return fmt.Errorf("person %s: aggregate favorites: %w", personKey.Hex(), err)
	}
	if err := e.persons.ApplyFavoriteAddress(ctx, personKey, info); err != nil {
		return fmt.Errorf("person %s: apply favorites: %w", personKey.Hex(), err)
	}
	e.log.Info("person favorites propagated", zap.String("personKey", personKey.Hex()))
	return nil
}
