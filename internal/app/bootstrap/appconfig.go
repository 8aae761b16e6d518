// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, request limits). AppConfig is everything specific to
// ClubHub: the MongoDB connection, the replication watcher, and the
// reconciliation sweep.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Replication configuration
	WatcherEnabled bool // run the change-stream watcher (requires a replica set)

	// Reconciliation sweep. Zero interval disables the sweep.
	SweepInterval time.Duration
	SweepLookback time.Duration
}
