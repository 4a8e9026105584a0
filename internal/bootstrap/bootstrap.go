// Package bootstrap turns configuration into the catalog and cache the server and CLI run on.
package bootstrap

import (
	"context"
	"fmt"

	"transparency/db"
	"transparency/db/migrations"
	"transparency/internal/cache"
	"transparency/internal/catalog"
	"transparency/internal/config"
	"transparency/internal/logger"
	"transparency/internal/metrics"
)

// LoadCatalog builds the catalog from the configured source. Postgres sources are migrated
// before they are read.
func LoadCatalog(ctx context.Context, cfg *config.Config, log logger.Logger) (*catalog.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	switch cfg.Catalog.Source {
	case config.SourceBundled:
		c = catalog.Bundled()
	case config.SourceFile:
		c, err = catalog.LoadFile(cfg.Catalog.File)
	case config.SourcePostgres:
		c, err = loadFromPostgres(ctx, cfg.Database.Postgres, log)
	default:
		err = fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
	if err != nil {
		return nil, err
	}

	sizes := map[string]int{
		"candidates":   len(c.Candidates()),
		"commissions":  len(c.Commissions()),
		"institutions": len(c.Institutions()),
		"news":         len(c.News()),
	}
	metrics.SetCatalogSize(sizes)
	log.Info("catalog loaded", map[string]interface{}{"source": cfg.Catalog.Source, "records": sizes})
	return c, nil
}

func loadFromPostgres(ctx context.Context, pg config.PostgresConfig, log logger.Logger) (*catalog.Catalog, error) {
	conn, err := db.Open(pg)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := migrations.Run(conn.DB, log); err != nil {
		return nil, err
	}
	return catalog.Load(ctx, db.NewStorage(conn))
}

// OpenCache returns the Redis response cache when enabled. An unreachable Redis downgrades to
// no caching instead of failing start-up.
func OpenCache(ctx context.Context, cfg *config.Config, log logger.Logger) cache.Cache {
	if !cfg.Cache.Enabled {
		return cache.NopCache{}
	}
	rc, err := cache.NewRedis(ctx, cfg.Database.Redis, cfg.Cache)
	if err != nil {
		log.WithError(err).Warn("response cache disabled", map[string]interface{}{"address": cfg.Database.Redis.Address})
		return cache.NopCache{}
	}
	log.Info("response cache enabled", map[string]interface{}{"address": cfg.Database.Redis.Address, "ttl": cfg.Cache.TTL.String()})
	return rc
}
