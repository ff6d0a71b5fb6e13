package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/inkpress/internal/auth/password"
	"github.com/smallbiznis/inkpress/internal/identity/domain"
	"github.com/smallbiznis/inkpress/pkg/db"
	"github.com/smallbiznis/inkpress/pkg/identifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupIdentityDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			profile_image TEXT, cover_image TEXT, bio TEXT, website TEXT,
			location TEXT, facebook TEXT, twitter TEXT, accessibility TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			locale TEXT,
			visibility TEXT NOT NULL DEFAULT 'public',
			meta_title TEXT, meta_description TEXT, tour TEXT,
			last_seen TIMESTAMP,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL,
			updated_at TIMESTAMP,
			updated_by TEXT
		)`,
		`CREATE TABLE roles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL,
			updated_at TIMESTAMP,
			updated_by TEXT
		)`,
		`CREATE TABLE permissions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			object_type TEXT NOT NULL,
			action_type TEXT NOT NULL,
			object_id TEXT,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL,
			updated_at TIMESTAMP,
			updated_by TEXT
		)`,
		`CREATE TABLE roles_users (
			id TEXT PRIMARY KEY,
			role_id TEXT NOT NULL,
			user_id TEXT NOT NULL
		)`,
		`CREATE TABLE permissions_roles (
			id TEXT PRIMARY KEY,
			role_id TEXT NOT NULL,
			permission_id TEXT NOT NULL
		)`,
		`CREATE TABLE permissions_users (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			permission_id TEXT NOT NULL
		)`,
		`CREATE TABLE api_keys (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			secret TEXT NOT NULL UNIQUE,
			role_id TEXT, integration_id TEXT, user_id TEXT,
			last_seen_at TIMESTAMP,
			last_seen_version TEXT,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL,
			updated_at TIMESTAMP,
			updated_by TEXT
		)`,
		`CREATE TABLE sessions (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL,
			session_data TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP
		)`,
		`CREATE TABLE invites (
			id TEXT PRIMARY KEY,
			role_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			token TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			expires INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL,
			updated_at TIMESTAMP,
			updated_by TEXT
		)`,
		`CREATE TABLE tokens (
			id TEXT PRIMARY KEY,
			token TEXT NOT NULL,
			data TEXT,
			created_at TIMESTAMP NOT NULL,
			created_by TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

func newUser(t *testing.T, name, email string) *domain.User {
	t.Helper()
	hash, err := password.Hash("staff-password")
	require.NoError(t, err)

	id := identifier.New()
	return &domain.User{
		ID:         id,
		Name:       name,
		Slug:       identifier.Slug(name),
		Password:   hash,
		Email:      email,
		Status:     domain.UserStatusActive,
		Visibility: "public",
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  id,
	}
}

func TestUserUniqueness(t *testing.T) {
	conn := setupIdentityDB(t)
	repo := Provide()
	ctx := context.Background()

	user := newUser(t, "Ada Editor", "ada@example.com")
	require.NoError(t, repo.InsertUser(ctx, conn, user))

	t.Run("email collides", func(t *testing.T) {
		dup := newUser(t, "Other Ada", "ada@example.com")
		err := repo.InsertUser(ctx, conn, dup)
		require.Error(t, err)
		assert.True(t, db.IsConstraintViolation(err))
	})

	t.Run("slug collides", func(t *testing.T) {
		dup := newUser(t, "Ada Editor", "ada2@example.com")
		err := repo.InsertUser(ctx, conn, dup)
		require.Error(t, err)
		assert.True(t, db.IsConstraintViolation(err))
	})

	t.Run("lookup by email and slug", func(t *testing.T) {
		byEmail, err := repo.FindUserByEmail(ctx, conn, "ada@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)

		bySlug, err := repo.FindUserBySlug(ctx, conn, byEmail.Slug)
		require.NoError(t, err)
		require.NotNil(t, bySlug)
		assert.Equal(t, byEmail.ID, bySlug.ID)
	})

	t.Run("update last seen", func(t *testing.T) {
		now := time.Now().UTC()
		require.NoError(t, repo.UpdateUser(ctx, conn, user.ID, map[string]any{
			"last_seen":  now,
			"updated_at": now,
		}))

		found, err := repo.FindUserByEmail(ctx, conn, "ada@example.com")
		require.NoError(t, err)
		require.NotNil(t, found.LastSeen)
	})
}

func TestRoleAssignment(t *testing.T) {
	conn := setupIdentityDB(t)
	repo := Provide()
	ctx := context.Background()

	user := newUser(t, "Bea Admin", "bea@example.com")
	require.NoError(t, repo.InsertUser(ctx, conn, user))

	admin := &domain.Role{
		ID:        identifier.New(),
		Name:      "Administrator",
		CreatedAt: time.Now().UTC(),
		CreatedBy: user.ID,
	}
	editor := &domain.Role{
		ID:        identifier.New(),
		Name:      "Editor",
		CreatedAt: time.Now().UTC(),
		CreatedBy: user.ID,
	}
	require.NoError(t, repo.InsertRole(ctx, conn, admin))
	require.NoError(t, repo.InsertRole(ctx, conn, editor))

	perm := &domain.Permission{
		ID:         identifier.New(),
		Name:       "Edit posts",
		ObjectType: "post",
		ActionType: "edit",
		CreatedAt:  time.Now().UTC(),
		CreatedBy:  user.ID,
	}
	require.NoError(t, repo.InsertPermission(ctx, conn, perm))
	require.NoError(t, repo.GrantPermissionToRole(ctx, conn, &domain.PermissionsRole{
		ID:           identifier.New(),
		RoleID:       editor.ID,
		PermissionID: perm.ID,
	}))

	require.NoError(t, repo.AssignRole(ctx, conn, &domain.RolesUser{
		ID:     identifier.New(),
		RoleID: admin.ID,
		UserID: user.ID,
	}))
	require.NoError(t, repo.AssignRole(ctx, conn, &domain.RolesUser{
		ID:     identifier.New(),
		RoleID: editor.ID,
		UserID: user.ID,
	}))

	roles, err := repo.RolesForUser(ctx, conn, user.ID)
	require.NoError(t, err)
	require.Len(t, roles, 2)

	names := []string{roles[0].Name, roles[1].Name}
	assert.Contains(t, names, "Administrator")
	assert.Contains(t, names, "Editor")
}

func TestApiKeysAndSessions(t *testing.T) {
	conn := setupIdentityDB(t)
	repo := Provide()
	ctx := context.Background()

	user := newUser(t, "Cal Dev", "cal@example.com")
	require.NoError(t, repo.InsertUser(ctx, conn, user))

	key := &domain.ApiKey{
		ID:        identifier.New(),
		Type:      "admin",
		Secret:    "9f86d081884c7d659a2feaa0c55ad015",
		UserID:    &user.ID,
		CreatedAt: time.Now().UTC(),
		CreatedBy: user.ID,
	}
	require.NoError(t, repo.InsertApiKey(ctx, conn, key))

	t.Run("key secret is unique", func(t *testing.T) {
		dup := *key
		dup.ID = identifier.New()
		err := repo.InsertApiKey(ctx, conn, &dup)
		require.Error(t, err)
		assert.True(t, db.IsConstraintViolation(err))
	})

	t.Run("lookup by secret", func(t *testing.T) {
		found, err := repo.FindApiKeyBySecret(ctx, conn, key.Secret)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, key.ID, found.ID)

		missing, err := repo.FindApiKeyBySecret(ctx, conn, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("session round trip and logout", func(t *testing.T) {
		session := &domain.Session{
			ID:          identifier.New(),
			SessionID:   "a3f1c2e4b5d6978812345678abcdef01",
			UserID:      user.ID,
			SessionData: `{"origin":"admin"}`,
			CreatedAt:   time.Now().UTC(),
		}
		require.NoError(t, repo.InsertSession(ctx, conn, session))

		found, err := repo.FindSessionByToken(ctx, conn, session.SessionID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.UserID)

		require.NoError(t, repo.DeleteSession(ctx, conn, session.SessionID))

		gone, err := repo.FindSessionByToken(ctx, conn, session.SessionID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}

func TestInviteLifecycle(t *testing.T) {
	conn := setupIdentityDB(t)
	repo := Provide()
	ctx := context.Background()

	roleID := identifier.New()
	invite := &domain.Invite{
		ID:        identifier.New(),
		RoleID:    roleID,
		Status:    domain.InviteStatusPending,
		Token:     "invite-token-1",
		Email:     "newhire@example.com",
		Expires:   time.Now().UTC().Add(72 * time.Hour).UnixMilli(),
		CreatedAt: time.Now().UTC(),
		CreatedBy: identifier.New(),
	}
	require.NoError(t, repo.InsertInvite(ctx, conn, invite))

	t.Run("one open invite per email", func(t *testing.T) {
		dup := *invite
		dup.ID = identifier.New()
		dup.Token = "invite-token-2"
		err := repo.InsertInvite(ctx, conn, &dup)
		require.Error(t, err)
		assert.True(t, db.IsConstraintViolation(err))
	})

	t.Run("accepting", func(t *testing.T) {
		found, err := repo.FindInviteByToken(ctx, conn, "invite-token-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, domain.InviteStatusPending, found.Status)

		require.NoError(t, repo.UpdateInviteStatus(ctx, conn, found.ID, domain.InviteStatusAccepted))

		found, err = repo.FindInviteByToken(ctx, conn, "invite-token-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, domain.InviteStatusAccepted, found.Status)
	})
}
