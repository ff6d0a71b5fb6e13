// Package domain contains operational records: the audit log, settings,
// schema-version bookkeeping and rate-limit counters.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Action is one audit log entry: actor did event to resource. Entries are
// append-only.
type Action struct {
	ID           string         `gorm:"primaryKey;size:24"`
	ResourceID   *string        `gorm:"column:resource_id;size:24"`
	ResourceType string         `gorm:"size:50;not null"`
	ActorID      string         `gorm:"column:actor_id;size:24;not null"`
	ActorType    string         `gorm:"size:50;not null"`
	Event        string         `gorm:"size:50;not null"`
	Context      datatypes.JSON `gorm:"column:context"`
	CreatedAt    time.Time      `gorm:"not null"`
}

// TableName sets the database table name.
func (Action) TableName() string { return "actions" }

// Setting is one row of the global key-value store.
type Setting struct {
	ID        string     `gorm:"primaryKey;size:24"`
	Group     string     `gorm:"column:group;size:50;not null;default:'core'"`
	Key       string     `gorm:"size:50;not null;uniqueIndex"`
	Value     *string    `gorm:"type:text"`
	Type      string     `gorm:"size:50;not null"`
	Flags     *string    `gorm:"size:50"`
	CreatedAt time.Time  `gorm:"not null"`
	CreatedBy string     `gorm:"size:24;not null"`
	UpdatedAt *time.Time `gorm:""`
	UpdatedBy *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (Setting) TableName() string { return "settings" }

type CustomThemeSetting struct {
	ID    string  `gorm:"primaryKey;size:24"`
	Theme string  `gorm:"size:191;not null"`
	Key   string  `gorm:"size:191;not null"`
	Type  string  `gorm:"size:50;not null"`
	Value *string `gorm:"type:text"`
}

// TableName sets the database table name.
func (CustomThemeSetting) TableName() string { return "custom_theme_settings" }

// Migration records an applied schema migration. Unlike every other entity
// its id is store-assigned (auto-increment).
type Migration struct {
	ID             int     `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"size:120;not null;uniqueIndex:migrations_name_version_unique,priority:1"`
	Version        string  `gorm:"size:70;not null;uniqueIndex:migrations_name_version_unique,priority:2"`
	CurrentVersion *string `gorm:"column:currentVersion;size:255"`
}

// TableName sets the database table name.
func (Migration) TableName() string { return "migrations" }

// MigrationsLock is the mutual-exclusion row migration runners take before
// touching the schema.
type MigrationsLock struct {
	LockKey    string     `gorm:"column:lock_key;primaryKey;size:191"`
	Locked     bool       `gorm:"default:0"`
	AcquiredAt *time.Time `gorm:""`
	ReleasedAt *time.Time `gorm:""`
}

// TableName sets the database table name.
func (MigrationsLock) TableName() string { return "migrations_lock" }

// Brute is passive rate-limit bookkeeping keyed by client key. This store
// only records it; enforcement lives with the caller.
type Brute struct {
	Key          string `gorm:"primaryKey;size:191"`
	FirstRequest int64  `gorm:"column:firstRequest;not null"`
	LastRequest  int64  `gorm:"column:lastRequest;not null"`
	Lifetime     int64  `gorm:"not null"`
	Count        int    `gorm:"not null"`
}

// TableName sets the database table name.
func (Brute) TableName() string { return "brute" }
