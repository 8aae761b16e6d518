// internal/app/replication/watcher.go
package replication

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/vereinlab/clubhub/internal/app/system/timeouts"
	"github.com/vereinlab/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// watchedCollections are the source collections whose writes fire a trigger.
var watchedCollections = []string{"persons", "orgs", "groups", "resources", "addresses"}

// Watcher binds change streams to the engine's triggers: one stream per
// source collection, each event handled as an independent invocation. The
// watcher only delivers keys; every trigger re-reads its source, so a lost
// or re-delivered event never produces wrong data, only staleness or a
// redundant no-op run.
type Watcher struct {
	db     *mongo.Database
	engine *Engine
	log    *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher over the engine's database.
func NewWatcher(db *mongo.Database, engine *Engine, logger *zap.Logger) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		db:     db,
		engine: engine,
		log:    logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches one stream loop per watched collection.
func (w *Watcher) Start() {
	for _, coll := range watchedCollections {
		w.wg.Add(1)
		go w.watchLoop(coll)
	}
	w.log.Info("replication watcher started",
		zap.Strings("collections", watchedCollections))
}

// Stop cancels all stream loops and waits for them to finish. In-flight
// invocations run to completion or deadline.
func (w *Watcher) Stop() {
	w.cancel()
	w.wg.Wait()
	w.log.Info("replication watcher stopped")
}

// changeEvent is the subset of a change-stream document the watcher needs.
type changeEvent struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID primitive.ObjectID `bson:"_id"`
	} `bson:"documentKey"`
	FullDocument bson.Raw `bson:"fullDocument,omitempty"`
}

func (w *Watcher) watchLoop(coll string) {
	defer w.wg.Done()

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 0 // keep retrying for the process lifetime

	for {
		err := w.watchOnce(coll, bo)
		if w.ctx.Err() != nil {
			return
		}

		wait := bo.NextBackOff()
		w.log.Warn("change stream interrupted, reconnecting",
			zap.String("collection", coll),
			zap.Duration("backoff", wait),
			zap.Error(err))

		select {
		case <-w.ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// watchOnce opens a change stream and pumps events until the stream breaks
// or the watcher stops. The backoff is reset after every delivered event so
// a healthy stream reconnects quickly after a one-off failure.
func (w *Watcher) watchOnce(coll string, bo *backoff.ExponentialBackOff) error {
	opts := options.ChangeStream()
	if coll == "addresses" {
		// Address routing needs the document body to find the parent.
		opts.SetFullDocument(options.UpdateLookup)
	}

	stream, err := w.db.Collection(coll).Watch(w.ctx, mongo.Pipeline{}, opts)
	if err != nil {
		return err
	}
	defer stream.Close(context.Background())

	for stream.Next(w.ctx) {
		var ev changeEvent
		if err := stream.Decode(&ev); err != nil {
			w.log.Error("change event decode failed",
				zap.String("collection", coll),
				zap.Error(err))
			continue
		}
		bo.Reset()
		w.handle(coll, ev)
	}
	return stream.Err()
}

// handle runs one trigger invocation for one event. Errors are logged with
// the source key and swallowed: a failing propagation never takes down the
// stream loop or blocks sibling events.
func (w *Watcher) handle(coll string, ev changeEvent) {
	log := w.log.With(
		zap.String("invocation_id", uuid.NewString()),
		zap.String("collection", coll),
		zap.String("op", ev.OperationType),
		zap.String("source_key", ev.DocumentKey.ID.Hex()))

	ctx, cancel := context.WithTimeout(w.ctx, timeouts.Long())
	defer cancel()

	var err error
	switch coll {
	case "persons":
		err = w.engine.PersonChanged(ctx, ev.DocumentKey.ID)
	case "orgs":
		err = w.engine.OrgChanged(ctx, ev.DocumentKey.ID)
	case "groups":
		err = w.engine.GroupChanged(ctx, ev.DocumentKey.ID)
	case "resources":
		err = w.engine.ResourceChanged(ctx, ev.DocumentKey.ID)
	case "addresses":
		err = w.handleAddress(ctx, log, ev)
	}
	if err != nil {
		log.Error("propagation aborted", zap.Error(err))
	}
}

// handleAddress routes an address event to the parent's favorite fold. A
// delete event carries no document, so the parent is unknown and the event
// is a no-op; the parent's fav_ fields refresh on its next address write.
func (w *Watcher) handleAddress(ctx context.Context, log *zap.Logger, ev changeEvent) error {
	if len(ev.FullDocument) == 0 {
		log.Warn("address event without document, skipping propagation")
		return nil
	}
	var a models.Address
	if err := bson.Unmarshal(ev.FullDocument, &a); err != nil {
		return err
	}
	switch a.ParentCollection {
	case "persons":
		return w.engine.PersonAddressChanged(ctx, a.ParentKey)
	case "orgs":
		return w.engine.OrgAddressChanged(ctx, a.ParentKey)
	default:
		log.Error("address with unknown parent collection",
			zap.String("parentCollection", a.ParentCollection))
		return nil
	}
}
