package redisCache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"JerseyStoreAPI/configs"
	"JerseyStoreAPI/internal/model"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

type JerseyCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

func NewCache(ctx context.Context, cfg *configs.Config, prefix string, log *slog.Logger) (*JerseyCache, error) {
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.RD.Host,
		DB:           cfg.RD.DB,
		Password:     cfg.RD.Password,
		DialTimeout:  cfg.RD.DialTimeout,
		ReadTimeout:  cfg.RD.ReadTimeout,
		WriteTimeout: cfg.RD.WriteTimeout,
	})

	log.Info("attempting to connect to Redis", "host", cfg.RD.Host, "db", cfg.RD.DB)

	if err := db.Ping(ctx).Err(); err != nil {
		log.Error("Redis connection failed", "error", err, "host", cfg.RD.Host)
		return nil, err
	}
	log.Info("successfully connected to Redis", "host", cfg.RD.Host)

	return &JerseyCache{
		client: db,
		prefix: prefix,
		ttl:    cfg.RD.JerseyTTL,
		log:    log,
	}, nil
}

func (r *JerseyCache) GetByID(ctx context.Context, jerseyID string) (*model.Jersey, error) {
	key := r.prefix + jerseyID
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	jersey := &model.Jersey{}
	if err := json.Unmarshal(data, jersey); err != nil {
		return nil, err
	}
	return jersey, nil
}

func (r *JerseyCache) Save(ctx context.Context, jersey *model.Jersey) error {
	key := r.prefix + jersey.JerseyID
	data, err := json.Marshal(jersey)
	if err != nil {
		r.log.Error("error marshalling jersey for Redis", "error", err, "jerseyID", jersey.JerseyID)
		return err
	}
	return r.client.Set(ctx, key, data, r.ttl).Err()
}
