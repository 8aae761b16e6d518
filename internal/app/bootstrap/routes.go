// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/vereinlab/clubhub/internal/app/features/health"
	relationsfeature "github.com/vereinlab/clubhub/internal/app/features/relations"
	resyncfeature "github.com/vereinlab/clubhub/internal/app/features/resync"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. ClubHub's HTTP surface is small: a health
// endpoint, the read-only relationship queries, and the manual resync
// trigger. Entity CRUD flows through the client applications that own the
// source documents; this service watches and repairs.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.ClubHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Relationship reads (the lookups the engine fans out over)
	relationsHandler := relationsfeature.NewHandler(deps.ClubHubMongoDatabase, logger)
	r.Mount("/api", relationsfeature.Routes(relationsHandler))

	// Manual re-propagation of a single source document
	resyncHandler := resyncfeature.NewHandler(engine, logger)
	r.Mount("/api/resync", resyncfeature.Routes(resyncHandler))

	return r, nil
}
