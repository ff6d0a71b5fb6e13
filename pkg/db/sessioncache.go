package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormprometheus "gorm.io/plugin/prometheus"
)

// SessionCache hands out database sessions, reusing one connection pool per
// primary credential. The registry is keyed by username alone: a second
// Acquire for a username already seen reuses the existing pool and silently
// ignores the remaining parameters. Callers that need a different target per
// username must use separate cache instances.
//
// Entries are never evicted; pools live until process exit.
type SessionCache struct {
	log *zap.Logger

	mu    sync.Mutex
	pools map[string]*gorm.DB
}

func NewSessionCache(log *zap.Logger) *SessionCache {
	return &SessionCache{
		log:   log,
		pools: make(map[string]*gorm.DB),
	}
}

// Acquire returns a new session bound to the pool registered for cfg.User,
// opening the pool first if this is the first call for that username.
// Sessions themselves are not cached; only the underlying pool is.
//
// Malformed parameters do not fail here: the MySQL driver defers dialing, so
// connectivity errors surface on first use unless KeepalivePing is set.
func (c *SessionCache) Acquire(ctx context.Context, cfg Config) (*gorm.DB, error) {
	c.mu.Lock()
	pool, ok := c.pools[cfg.User]
	if !ok {
		var err error
		pool, err = c.open(cfg)
		if err != nil {
			c.mu.Unlock()
			return nil, err
		}
		c.pools[cfg.User] = pool
	}
	c.mu.Unlock()

	if cfg.KeepalivePing {
		sqlDB, err := pool.DB()
		if err != nil {
			return nil, err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("keepalive ping: %w", err)
		}
	}

	sessionsAcquired.Inc()
	return pool.Session(&gorm.Session{NewDB: true}), nil
}

// Len reports how many pools the cache currently holds.
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pools)
}

func (c *SessionCache) open(cfg Config) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(c.log, cfg.Echo),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open pool for %q: %w", cfg.User, err)
	}

	sqlDB, err := pool.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxIdleConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	}
	if cfg.MaxOpenConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Second)
	}

	if cfg.Metrics {
		if err := pool.Use(gormprometheus.New(gormprometheus.Config{
			DBName:          cfg.Name,
			RefreshInterval: 15,
		})); err != nil {
			c.log.Warn("register gorm prometheus plugin", zap.Error(err))
		}
	}

	poolsCreated.Inc()
	c.log.Info("database pool opened",
		zap.String("user", cfg.User),
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
	)
	return pool, nil
}
