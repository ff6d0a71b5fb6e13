package db

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("db",
	fx.Provide(NewSessionCache),
	fx.Provide(provideConn),
)

// provideConn acquires the application's primary session at startup. Domain
// modules receive this *gorm.DB; anything needing a second credential set
// goes through the SessionCache directly.
func provideConn(cache *SessionCache, cfg Config) (*gorm.DB, error) {
	return cache.Acquire(context.Background(), cfg)
}
