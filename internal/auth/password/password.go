// Package password wraps the bcrypt hashing used for staff credentials.
// Stored hashes embed their own salt and cost, so verification goes through
// the algorithm's comparison primitive rather than byte equality.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash stored in users.password.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks whether plain matches the encoded bcrypt hash.
func Verify(plain, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain)) == nil
}
