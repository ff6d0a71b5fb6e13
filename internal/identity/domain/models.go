// Package domain contains persistence models for staff users, roles,
// permissions and the credentials that act on their behalf.
package domain

import (
	"time"
)

// UserStatus represents the lifecycle of a staff account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusLocked   UserStatus = "locked"
)

// User is a staff account. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID              string     `gorm:"primaryKey;size:24"`
	Name            string     `gorm:"size:191;not null"`
	Slug            string     `gorm:"size:191;not null;uniqueIndex"`
	Password        string     `gorm:"size:60;not null"`
	Email           string     `gorm:"size:191;not null;uniqueIndex"`
	ProfileImage    *string    `gorm:"size:2000"`
	CoverImage      *string    `gorm:"size:2000"`
	Bio             *string    `gorm:"type:text"`
	Website         *string    `gorm:"size:2000"`
	Location        *string    `gorm:"type:text"`
	Facebook        *string    `gorm:"size:2000"`
	Twitter         *string    `gorm:"size:2000"`
	Accessibility   *string    `gorm:"type:text"`
	Status          UserStatus `gorm:"size:50;not null;default:'active'"`
	Locale          *string    `gorm:"size:6"`
	Visibility      string     `gorm:"size:50;not null;default:'public'"`
	MetaTitle       *string    `gorm:"size:2000"`
	MetaDescription *string    `gorm:"size:2000"`
	Tour            *string    `gorm:"type:text"`
	LastSeen        *time.Time `gorm:""`
	CreatedAt       time.Time  `gorm:"not null"`
	CreatedBy       string     `gorm:"size:24;not null"`
	UpdatedAt       *time.Time `gorm:""`
	UpdatedBy       *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

type Role struct {
	ID          string     `gorm:"primaryKey;size:24"`
	Name        string     `gorm:"size:50;not null;uniqueIndex"`
	Description *string    `gorm:"size:2000"`
	CreatedAt   time.Time  `gorm:"not null"`
	CreatedBy   string     `gorm:"size:24;not null"`
	UpdatedAt   *time.Time `gorm:""`
	UpdatedBy   *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (Role) TableName() string { return "roles" }

type Permission struct {
	ID         string     `gorm:"primaryKey;size:24"`
	Name       string     `gorm:"size:50;not null;uniqueIndex"`
	ObjectType string     `gorm:"size:50;not null"`
	ActionType string     `gorm:"size:50;not null"`
	ObjectID   *string    `gorm:"column:object_id;size:24"`
	CreatedAt  time.Time  `gorm:"not null"`
	CreatedBy  string     `gorm:"size:24;not null"`
	UpdatedAt  *time.Time `gorm:""`
	UpdatedBy  *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (Permission) TableName() string { return "permissions" }

type RolesUser struct {
	ID     string `gorm:"primaryKey;size:24"`
	RoleID string `gorm:"column:role_id;size:24;not null"`
	UserID string `gorm:"column:user_id;size:24;not null"`
}

// TableName sets the database table name.
func (RolesUser) TableName() string { return "roles_users" }

type PermissionsUser struct {
	ID           string `gorm:"primaryKey;size:24"`
	UserID       string `gorm:"column:user_id;size:24;not null"`
	PermissionID string `gorm:"column:permission_id;size:24;not null"`
}

// TableName sets the database table name.
func (PermissionsUser) TableName() string { return "permissions_users" }

type PermissionsRole struct {
	ID           string `gorm:"primaryKey;size:24"`
	RoleID       string `gorm:"column:role_id;size:24;not null"`
	PermissionID string `gorm:"column:permission_id;size:24;not null"`
}

// TableName sets the database table name.
func (PermissionsRole) TableName() string { return "permissions_roles" }

// ApiKey authenticates integrations or users. A key belongs to a user or to
// an integration, never both.
type ApiKey struct {
	ID              string     `gorm:"primaryKey;size:24"`
	Type            string     `gorm:"size:50;not null"`
	Secret          string     `gorm:"size:191;not null;uniqueIndex"`
	RoleID          *string    `gorm:"column:role_id;size:24"`
	IntegrationID   *string    `gorm:"column:integration_id;size:24"`
	UserID          *string    `gorm:"column:user_id;size:24"`
	LastSeenAt      *time.Time `gorm:""`
	LastSeenVersion *string    `gorm:"size:50"`
	CreatedAt       time.Time  `gorm:"not null"`
	CreatedBy       string     `gorm:"size:24;not null"`
	UpdatedAt       *time.Time `gorm:""`
	UpdatedBy       *string    `gorm:"size:24"`
}

// TableName sets the database table name.
func (ApiKey) TableName() string { return "api_keys" }

// Session is a server-side login session bound to one user.
type Session struct {
	ID          string     `gorm:"primaryKey;size:24"`
	SessionID   string     `gorm:"column:session_id;size:32;not null;uniqueIndex"`
	UserID      string     `gorm:"column:user_id;size:24;not null"`
	SessionData string     `gorm:"size:2000;not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   *time.Time `gorm:""`
}

// TableName sets the database table name.
func (Session) TableName() string { return "sessions" }

// InviteStatus tracks the pending → accepted/expired lifecycle.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusSent     InviteStatus = "sent"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
)

type Invite struct {
	ID        string       `gorm:"primaryKey;size:24"`
	RoleID    string       `gorm:"column:role_id;size:24;not null"`
	Status    InviteStatus `gorm:"size:50;not null;default:'pending'"`
	Token     string       `gorm:"size:191;not null;uniqueIndex"`
	Email     string       `gorm:"size:191;not null;uniqueIndex"`
	Expires   int64        `gorm:"not null"`
	CreatedAt time.Time    `gorm:"not null"`
	CreatedBy string       `gorm:"size:24;not null"`
	UpdatedAt *time.Time   `gorm:""`
	UpdatedBy *string      `gorm:"size:24"`
}

// TableName sets the database table name.
func (Invite) TableName() string { return "invites" }

// Oauth links a user to an external identity provider.
type Oauth struct {
	ID           string     `gorm:"primaryKey;size:24"`
	Provider     string     `gorm:"size:50;not null"`
	ProviderID   string     `gorm:"column:provider_id;size:191;not null"`
	AccessToken  *string    `gorm:"type:text"`
	RefreshToken *string    `gorm:"type:text"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    *time.Time `gorm:""`
	UserID       string     `gorm:"column:user_id;size:24;not null;index"`
}

// TableName sets the database table name.
func (Oauth) TableName() string { return "oauth" }

// Token is a short-lived opaque token with attached data.
type Token struct {
	ID        string    `gorm:"primaryKey;size:24"`
	Token     string    `gorm:"size:32;not null;index"`
	Data      *string   `gorm:"size:2000"`
	CreatedAt time.Time `gorm:"not null"`
	CreatedBy string    `gorm:"size:24;not null"`
}

// TableName sets the database table name.
func (Token) TableName() string { return "tokens" }
