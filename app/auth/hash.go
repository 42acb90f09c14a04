package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password for storing. New and reset passwords get
// bcrypt; stores written by the legacy tool hold unsalted SHA-256 hex
// digests, which CheckPasswordHash still verifies.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against a stored hash, accepting
// both bcrypt hashes and legacy SHA-256 hex digests.
func CheckPasswordHash(password, hash string) bool {
	if isLegacyHash(hash) {
		return legacyHash(password) == hash
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// isLegacyHash reports whether hash looks like an unsalted SHA-256 hex
// digest: exactly 64 lowercase hex characters.
func isLegacyHash(hash string) bool {
	if len(hash) != 64 {
		return false
	}
	for _, c := range hash {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func legacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
