package cachedRepo

import (
	"context"
	"errors"
	"log/slog"

	"JerseyStoreAPI/internal/model"
	"JerseyStoreAPI/internal/repository/redisCache"
	"JerseyStoreAPI/pkg/prometheus"
)

type JerseyRepository interface {
	GetByID(ctx context.Context, id string) (*model.Jersey, error)
}

type JerseyCache interface {
	GetByID(ctx context.Context, id string) (*model.Jersey, error)
	Save(ctx context.Context, jersey *model.Jersey) error
}

// CachedJerseyRepo reads jerseys through the cache and falls back to
// the database. Cache failures never fail a read.
type CachedJerseyRepo struct {
	repo  JerseyRepository
	cache JerseyCache
	log   *slog.Logger
}

func NewCachedJerseyRepo(repo JerseyRepository, cache JerseyCache, log *slog.Logger) *CachedJerseyRepo {
	return &CachedJerseyRepo{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (r *CachedJerseyRepo) GetByID(ctx context.Context, id string) (*model.Jersey, error) {
	jersey, err := r.cache.GetByID(ctx, id)
	if err == nil && jersey != nil {
		prometheus.CacheOperations.WithLabelValues("hit").Inc()
		return jersey, nil
	}
	if err != nil && !errors.Is(err, redisCache.ErrCacheMiss) {
		r.log.Warn("error getting from cache, falling back to database", "error", err, "jerseyID", id)
	}
	prometheus.CacheOperations.WithLabelValues("miss").Inc()

	jersey, err = r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Save(ctx, jersey); err != nil {
		r.log.Warn("failed to save jersey to cache", "error", err, "jerseyID", id)
	}
	return jersey, nil
}
