package domain

import (
	"context"
	"time"

	"github.com/smallbiznis/inkpress/pkg/db/pagination"
	"gorm.io/gorm"
)

// ListActionsFilter narrows the audit listing. Zero values mean "any".
type ListActionsFilter struct {
	pagination.Pagination
	ResourceType string
	ResourceID   string
	ActorID      string
	Event        string
}

type Repository interface {
	// RecordAction appends an audit entry; entries are never updated or
	// deleted.
	RecordAction(ctx context.Context, conn *gorm.DB, action *Action) error
	ListActions(ctx context.Context, conn *gorm.DB, filter ListActionsFilter) ([]Action, pagination.PageInfo, error)

	GetSetting(ctx context.Context, conn *gorm.DB, key string) (*Setting, error)
	SetSetting(ctx context.Context, conn *gorm.DB, setting *Setting) error

	// TouchBrute records one request against key: it creates the row on
	// first sight and otherwise bumps lastRequest and the rolling count.
	// No limiting decision is made here.
	TouchBrute(ctx context.Context, conn *gorm.DB, key string, at time.Time, lifetime int64) (*Brute, error)
	ResetBrute(ctx context.Context, conn *gorm.DB, key string) error

	AcquireMigrationsLock(ctx context.Context, conn *gorm.DB, lockKey string, at time.Time) (bool, error)
	ReleaseMigrationsLock(ctx context.Context, conn *gorm.DB, lockKey string, at time.Time) error
}
