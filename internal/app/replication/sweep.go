// internal/app/replication/sweep.go
package replication

import (
	"context"
	"fmt"
	"time"

	"github.com/vereinlab/clubhub/internal/app/store/query"
	"github.com/vereinlab/clubhub/internal/app/system/tasks"
	"github.com/vereinlab/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SweepJob builds a periodic reconciliation pass: every source document
// updated within the lookback window gets its fan-out re-run. This closes
// the staleness window a crashed or interrupted fan-out leaves behind, which
// otherwise only heals on the next write to the same source. Lookback should
// comfortably exceed the interval so windows overlap.
func SweepJob(e *Engine, db *mongo.Database, logger *zap.Logger, interval, lookback time.Duration) tasks.Job {
	return tasks.Job{
		Name:     "replication-sweep",
		Interval: interval,
		Timeout:  timeouts.Sweep(),
		Run: func(ctx context.Context) error {
			cutoff := time.Now().UTC().Add(-lookback)
			total := 0
			for _, coll := range watchedCollections {
				n, err := sweepCollection(ctx, e, db, coll, cutoff)
				if err != nil {
					return fmt.Errorf("sweep %s: %w", coll, err)
				}
				total += n
			}
			if total > 0 {
				logger.Info("replication sweep re-propagated sources",
					zap.Int("count", total),
					zap.Time("cutoff", cutoff))
			}
			return nil
		},
	}
}

type keyOnly struct {
	ID primitive.ObjectID `bson:"_id"`
}

func sweepCollection(ctx context.Context, e *Engine, db *mongo.Database, coll string, cutoff time.Time) (int, error) {
	recent, err := query.Find[keyOnly](ctx, db, coll, []query.Filter{
		{Field: "updated_at", Op: ">=", Value: cutoff},
	}, nil)
	if err != nil {
		return 0, err
	}
	for _, doc := range recent {
		if err := e.Resync(ctx, coll, doc.ID); err != nil {
			return 0, err
		}
	}
	return len(recent), nil
}
