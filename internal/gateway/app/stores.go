package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	threadcache "architect/internal/cache/thread"
	"architect/internal/gateway/config"
	"architect/internal/gateway/repository/archive"
	"architect/internal/gateway/repository/thread"
)

type gatewayStores struct {
	threads thread.Store
	archive archive.Store
	closers []io.Closer
}

// initStores picks the thread-store backend from the configured connection
// strings: Postgres when DATABASE_URL is set, Redis when REDIS_URL is set,
// otherwise process memory. The chosen origin is wrapped in a read cache.
func initStores(cfg *config.Config, log zerolog.Logger) (*gatewayStores, error) {
	stores := &gatewayStores{}

	origin, err := initThreadOrigin(cfg, log, stores)
	if err != nil {
		return nil, err
	}
	stores.threads = threadcache.NewCachedStore(origin, threadcache.DefaultCacheConfig())
	stores.archive = initArchiveStore(cfg, log)
	return stores, nil
}

func initThreadOrigin(cfg *config.Config, log zerolog.Logger, stores *gatewayStores) (thread.Store, error) {
	if cfg.DatabaseURL != "" {
		store, err := thread.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("init postgres thread store: %w", err)
		}
		stores.closers = append(stores.closers, store)
		log.Info().Msg("thread store: postgres")
		return store, nil
	}
	if cfg.RedisURL != "" {
		store, err := thread.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("init redis thread store: %w", err)
		}
		stores.closers = append(stores.closers, store)
		log.Info().Msg("thread store: redis")
		return store, nil
	}
	log.Info().Msg("thread store: in-memory (no connection string configured)")
	return thread.NewMemoryStore(), nil
}

func initArchiveStore(cfg *config.Config, log zerolog.Logger) archive.Store {
	s3Cfg := archive.S3Config{
		Endpoint:  cfg.Archive.Endpoint,
		Region:    cfg.Archive.Region,
		AccessKey: cfg.Archive.AccessKey,
		SecretKey: cfg.Archive.SecretKey,
		Bucket:    cfg.Archive.Bucket,
		UseSSL:    cfg.Archive.UseSSL,
	}
	if s3Cfg.Complete() {
		store, err := archive.NewS3Store(s3Cfg)
		if err == nil {
			log.Info().Str("bucket", s3Cfg.Bucket).Str("endpoint", s3Cfg.Endpoint).Msg("blueprint archive: s3")
			return store
		}
		log.Warn().Err(err).Msg("blueprint archive: s3 init failed, using in-memory fallback")
	}
	return archive.NewMemoryStore()
}

func (s *gatewayStores) Close() {
	for _, c := range s.closers {
		_ = c.Close()
	}
}
