package repository

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/inkpress/internal/operations/domain"
	"github.com/smallbiznis/inkpress/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) RecordAction(ctx context.Context, conn *gorm.DB, action *domain.Action) error {
	return conn.WithContext(ctx).Create(action).Error
}

func (r *repo) ListActions(ctx context.Context, conn *gorm.DB, filter domain.ListActionsFilter) ([]domain.Action, pagination.PageInfo, error) {
	var (
		actions []domain.Action
		info    pagination.PageInfo
	)

	stmt := conn.WithContext(ctx).Model(&domain.Action{})
	if filter.ResourceType != "" {
		stmt = stmt.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		stmt = stmt.Where("resource_id = ?", filter.ResourceID)
	}
	if filter.ActorID != "" {
		stmt = stmt.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Event != "" {
		stmt = stmt.Where("event = ?", filter.Event)
	}

	if filter.PageToken != "" {
		cursor, err := pagination.DecodeCursor(filter.PageToken)
		if err != nil {
			return nil, info, err
		}
		ts, err := time.Parse(time.RFC3339Nano, cursor.CreatedAt)
		if err != nil {
			return nil, info, err
		}
		stmt = stmt.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			ts, ts, cursor.ID)
	}

	size := filter.PageSize
	if size <= 0 {
		size = 50
	}

	stmt = stmt.Order("created_at desc, id desc").Limit(size + 1)
	if err := stmt.Find(&actions).Error; err != nil {
		return nil, info, err
	}

	if len(actions) > size {
		actions = actions[:size]
		last := actions[len(actions)-1]
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return nil, info, err
		}
		info.NextPageToken = token
		info.HasMore = true
	}
	return actions, info, nil
}

func (r *repo) GetSetting(ctx context.Context, conn *gorm.DB, key string) (*domain.Setting, error) {
	var setting domain.Setting
	err := conn.WithContext(ctx).Where("key = ?", key).Take(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *repo) SetSetting(ctx context.Context, conn *gorm.DB, setting *domain.Setting) error {
	var existing domain.Setting
	err := conn.WithContext(ctx).Where("key = ?", setting.Key).Take(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return conn.WithContext(ctx).Create(setting).Error
	}
	if err != nil {
		return err
	}

	setting.ID = existing.ID
	return conn.WithContext(ctx).Save(setting).Error
}

func (r *repo) TouchBrute(ctx context.Context, conn *gorm.DB, key string, at time.Time, lifetime int64) (*domain.Brute, error) {
	now := at.UnixMilli()

	var row domain.Brute
	err := conn.WithContext(ctx).Where("key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = domain.Brute{
			Key:          key,
			FirstRequest: now,
			LastRequest:  now,
			Lifetime:     lifetime,
			Count:        1,
		}
		if err := conn.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"lastRequest": now,
		"lifetime":    lifetime,
		"count":       gorm.Expr("count + 1"),
	}
	if err := conn.WithContext(ctx).
		Model(&domain.Brute{}).
		Where("key = ?", key).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	row.LastRequest = now
	row.Lifetime = lifetime
	row.Count++
	return &row, nil
}

func (r *repo) ResetBrute(ctx context.Context, conn *gorm.DB, key string) error {
	return conn.WithContext(ctx).Where("key = ?", key).Delete(&domain.Brute{}).Error
}

// AcquireMigrationsLock flips the lock row to locked, creating it if this
// is the first run. Returns false when another runner already holds it.
func (r *repo) AcquireMigrationsLock(ctx context.Context, conn *gorm.DB, lockKey string, at time.Time) (bool, error) {
	var row domain.MigrationsLock
	err := conn.WithContext(ctx).Where("lock_key = ?", lockKey).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = domain.MigrationsLock{
			LockKey:    lockKey,
			Locked:     true,
			AcquiredAt: &at,
		}
		if err := conn.WithContext(ctx).Create(&row).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	res := conn.WithContext(ctx).
		Model(&domain.MigrationsLock{}).
		Where("lock_key = ? AND locked = ?", lockKey, false).
		Updates(map[string]any{"locked": true, "acquired_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repo) ReleaseMigrationsLock(ctx context.Context, conn *gorm.DB, lockKey string, at time.Time) error {
	return conn.WithContext(ctx).
		Model(&domain.MigrationsLock{}).
		Where("lock_key = ?", lockKey).
		Updates(map[string]any{"locked": false, "released_at": at}).Error
}
