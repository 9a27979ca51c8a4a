package memcache_fx

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(provideCandidateCache)

// provideCandidateCache shares candidates through redis when REDIS_URL is set,
// otherwise each process keeps its own in-memory copy.
func provideCandidateCache(lc fx.Lifecycle, cfg config.Config) (mem.CandidateCache, error) {
	if cfg.RedisURL == "" {
		log.WithField("prefix", "init").Info("Using in-memory candidate cache")
		return mem.NewInMemoryCandidateCache(cfg.CandidateCacheTTL), nil
	}

	client, err := infra.InitRedis(context.Background(), cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return mem.NewRedisCandidateCache(client, cfg.CandidateCacheTTL), nil
}
