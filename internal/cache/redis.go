package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultDialTimeout = 5 * time.Second

type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func newRedis(opts *options) (*redisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.addr,
		Password:    opts.password,
		DB:          opts.db,
		DialTimeout: defaultDialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &redisCache{client: client, prefix: opts.prefix, ttl: opts.ttl}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Cause(err) == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		logger.Errorf("redis get %s: %v", key, err)
		return nil, errors.Wrap(err, "redis get")
	}
	return v, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		logger.Errorf("redis set %s: %v", key, err)
		return errors.Wrap(err, "redis set")
	}
	return nil
}

func (c *redisCache) Close() error {
	logger.Info("redis cache closed")
	return c.client.Close()
}
