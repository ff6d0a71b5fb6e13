package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertUser(ctx context.Context, conn *gorm.DB, user *User) error
	FindUserByEmail(ctx context.Context, conn *gorm.DB, email string) (*User, error)
	FindUserBySlug(ctx context.Context, conn *gorm.DB, slug string) (*User, error)
	UpdateUser(ctx context.Context, conn *gorm.DB, id string, fields map[string]any) error

	InsertRole(ctx context.Context, conn *gorm.DB, role *Role) error
	InsertPermission(ctx context.Context, conn *gorm.DB, perm *Permission) error
	AssignRole(ctx context.Context, conn *gorm.DB, link *RolesUser) error
	GrantPermissionToRole(ctx context.Context, conn *gorm.DB, link *PermissionsRole) error
	GrantPermissionToUser(ctx context.Context, conn *gorm.DB, link *PermissionsUser) error
	RolesForUser(ctx context.Context, conn *gorm.DB, userID string) ([]Role, error)

	InsertApiKey(ctx context.Context, conn *gorm.DB, key *ApiKey) error
	FindApiKeyBySecret(ctx context.Context, conn *gorm.DB, secret string) (*ApiKey, error)

	InsertSession(ctx context.Context, conn *gorm.DB, session *Session) error
	FindSessionByToken(ctx context.Context, conn *gorm.DB, sessionID string) (*Session, error)
	DeleteSession(ctx context.Context, conn *gorm.DB, sessionID string) error

	InsertInvite(ctx context.Context, conn *gorm.DB, invite *Invite) error
	FindInviteByToken(ctx context.Context, conn *gorm.DB, token string) (*Invite, error)
	UpdateInviteStatus(ctx context.Context, conn *gorm.DB, id string, status InviteStatus) error

	InsertToken(ctx context.Context, conn *gorm.DB, token *Token) error
}
