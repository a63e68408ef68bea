// Package cache 算番结果缓存, 后端可以是进程内存或redis
package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"

	defaultSize   = 4096
	defaultTTL    = 10 * time.Minute
	defaultPrefix = "mcr:"
)

var (
	// ErrMiss 缓存中不存在
	ErrMiss = errors.New("cache: miss")

	logger = log.WithField("component", "cache")
)

// Cache 以字符串为键保存序列化后的结果
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

type options struct {
	size     int
	ttl      time.Duration
	prefix   string
	addr     string
	password string
	db       int
}

// Option specifies an option for building a cache.
type Option func(*options)

// Size 内存缓存的最大条目数
func Size(n int) Option {
	return func(opts *options) {
		if n > 0 {
			opts.size = n
		}
	}
}

// TTL 条目过期时间
func TTL(d time.Duration) Option {
	return func(opts *options) {
		if d > 0 {
			opts.ttl = d
		}
	}
}

// Prefix redis键前缀
func Prefix(p string) Option {
	return func(opts *options) {
		opts.prefix = p
	}
}

// Redis redis连接参数
func Redis(addr, password string, db int) Option {
	return func(opts *options) {
		opts.addr = addr
		opts.password = password
		opts.db = db
	}
}

// New 根据driver创建缓存, driver为空时使用内存缓存
func New(driver string, opts ...Option) (Cache, error) {
	settings := &options{
		size:   defaultSize,
		ttl:    defaultTTL,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(settings)
	}

	switch driver {
	case "", DriverMemory:
		logger.Infof("memory cache, size=%d ttl=%s", settings.size, settings.ttl)
		return newMemory(settings.size, settings.ttl), nil
	case DriverRedis:
		c, err := newRedis(settings)
		if err != nil {
			return nil, errors.Wrapf(err, "connect redis %s", settings.addr)
		}
		logger.Infof("redis cache, addr=%s db=%d ttl=%s", settings.addr, settings.db, settings.ttl)
		return c, nil
	default:
		return nil, errors.Errorf("unknown cache driver: %s", driver)
	}
}
