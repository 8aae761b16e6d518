// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ClubHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, sweep_interval, etc.
//   - Environment variables: CLUBHUB_MONGO_URI, CLUBHUB_SWEEP_INTERVAL, etc.
//   - Command-line flags: --mongo_uri, --sweep_interval, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "clubhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "watcher_enabled", Default: true, Desc: "Run the replication change-stream watcher (requires a replica set)"},

	{Name: "sweep_interval", Default: "0s", Desc: "Reconciliation sweep interval (0 disables the sweep)"},
	{Name: "sweep_lookback", Default: "10m", Desc: "How far back a sweep re-propagates changed sources"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, CLUBHUB_* for app) and flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CLUBHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		WatcherEnabled: appValues.Bool("watcher_enabled"),

		SweepInterval: appValues.Duration("sweep_interval", 0),
		SweepLookback: appValues.Duration("sweep_lookback", 10*time.Minute),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// ClubHub validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and rejects sweep settings that would
// leave gaps between reconciliation windows.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.SweepInterval > 0 && appCfg.SweepLookback < appCfg.SweepInterval {
		return fmt.Errorf("sweep_lookback (%s) must be at least sweep_interval (%s)",
			appCfg.SweepLookback, appCfg.SweepInterval)
	}

	return nil
}
