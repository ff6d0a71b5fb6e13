package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/inkpress/internal/identity/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertUser(ctx context.Context, conn *gorm.DB, user *domain.User) error {
	return conn.WithContext(ctx).Create(user).Error
}

func (r *repo) FindUserByEmail(ctx context.Context, conn *gorm.DB, email string) (*domain.User, error) {
	return r.findUser(ctx, conn, "email = ?", email)
}

func (r *repo) FindUserBySlug(ctx context.Context, conn *gorm.DB, slug string) (*domain.User, error) {
	return r.findUser(ctx, conn, "slug = ?", slug)
}

func (r *repo) findUser(ctx context.Context, conn *gorm.DB, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := conn.WithContext(ctx).Where(query, arg).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *repo) UpdateUser(ctx context.Context, conn *gorm.DB, id string, fields map[string]any) error {
	return conn.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) InsertRole(ctx context.Context, conn *gorm.DB, role *domain.Role) error {
	return conn.WithContext(ctx).Create(role).Error
}

func (r *repo) InsertPermission(ctx context.Context, conn *gorm.DB, perm *domain.Permission) error {
	return conn.WithContext(ctx).Create(perm).Error
}

func (r *repo) AssignRole(ctx context.Context, conn *gorm.DB, link *domain.RolesUser) error {
	return conn.WithContext(ctx).Create(link).Error
}

func (r *repo) GrantPermissionToRole(ctx context.Context, conn *gorm.DB, link *domain.PermissionsRole) error {
	return conn.WithContext(ctx).Create(link).Error
}

func (r *repo) GrantPermissionToUser(ctx context.Context, conn *gorm.DB, link *domain.PermissionsUser) error {
	return conn.WithContext(ctx).Create(link).Error
}

func (r *repo) RolesForUser(ctx context.Context, conn *gorm.DB, userID string) ([]domain.Role, error) {
	var roles []domain.Role
	err := conn.WithContext(ctx).
		Joins("JOIN roles_users ON roles_users.role_id = roles.id").
		Where("roles_users.user_id = ?", userID).
		Find(&roles).Error
	return roles, err
}

func (r *repo) InsertApiKey(ctx context.Context, conn *gorm.DB, key *domain.ApiKey) error {
	return conn.WithContext(ctx).Create(key).Error
}

func (r *repo) FindApiKeyBySecret(ctx context.Context, conn *gorm.DB, secret string) (*domain.ApiKey, error) {
	var key domain.ApiKey
	err := conn.WithContext(ctx).Where("secret = ?", secret).Take(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

func (r *repo) InsertSession(ctx context.Context, conn *gorm.DB, session *domain.Session) error {
	return conn.WithContext(ctx).Create(session).Error
}

func (r *repo) FindSessionByToken(ctx context.Context, conn *gorm.DB, sessionID string) (*domain.Session, error) {
	var session domain.Session
	err := conn.WithContext(ctx).Where("session_id = ?", sessionID).Take(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *repo) DeleteSession(ctx context.Context, conn *gorm.DB, sessionID string) error {
	return conn.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&domain.Session{}).Error
}

func (r *repo) InsertInvite(ctx context.Context, conn *gorm.DB, invite *domain.Invite) error {
	return conn.WithContext(ctx).Create(invite).Error
}

func (r *repo) FindInviteByToken(ctx context.Context, conn *gorm.DB, token string) (*domain.Invite, error) {
	var invite domain.Invite
	err := conn.WithContext(ctx).Where("token = ?", token).Take(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invite, nil
}

func (r *repo) UpdateInviteStatus(ctx context.Context, conn *gorm.DB, id string, status domain.InviteStatus) error {
	return conn.WithContext(ctx).
		Model(&domain.Invite{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repo) InsertToken(ctx context.Context, conn *gorm.DB, token *domain.Token) error {
	return conn.WithContext(ctx).Create(token).Error
}
