// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/vereinlab/clubhub/internal/app/replication"
	"github.com/vereinlab/clubhub/internal/app/system/tasks"
	"go.uber.org/zap"
)

// Started in Startup, stopped in Shutdown. Package-level because WAFFLE's
// hooks carry only config and DBDeps between lifecycle stages.
var (
	engine  *replication.Engine
	watcher *replication.Watcher
	runner  *tasks.Runner
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. ClubHub
// builds the replication engine here and starts the change-stream watcher
// plus the optional reconciliation sweep.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.ClubHubMongoDatabase
	engine = replication.New(db, logger)

	if appCfg.WatcherEnabled {
		watcher = replication.NewWatcher(db, engine, logger)
		watcher.Start()
	} else {
		logger.Warn("replication watcher disabled; denormalized copies only update via resync")
	}

	if appCfg.SweepInterval > 0 {
		runner = tasks.NewRunner(logger)
		runner.Add(replication.SweepJob(engine, db, logger, appCfg.SweepInterval, appCfg.SweepLookback))
		runner.Start()
	}

	return nil
}
