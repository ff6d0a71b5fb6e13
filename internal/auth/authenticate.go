// Package auth verifies staff credentials against stored password hashes.
package auth

import (
	"context"
	"errors"

	"github.com/smallbiznis/inkpress/internal/auth/password"
	"gorm.io/gorm"
)

// Authenticate checks a plaintext password against the stored hash for the
// user whose email matches. Only the password column is projected. A missing
// user and a wrong password are both reported as false so callers cannot
// distinguish the two.
func Authenticate(ctx context.Context, conn *gorm.DB, email, plain string) (bool, error) {
	var hash string
	err := conn.WithContext(ctx).
		Table("users").
		Select("password").
		Where("email = ?", email).
		Take(&hash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return password.Verify(plain, hash), nil
}
