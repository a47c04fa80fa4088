package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters for password hashing. Existing user rows were written
// with these values, so they must not change without a migration.
const (
	pbkdf2Iterations = 200_000
	pbkdf2SaltLen    = 16
	pbkdf2KeyLen     = sha256.Size
)

// HashPassword derives a PBKDF2-HMAC-SHA256 hash with a fresh random salt.
// Both salt and hash are returned base64-encoded, as stored in users.json.
func HashPassword(password string) (saltB64, hashB64 string, err error) {
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}
	hash := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return base64.StdEncoding.EncodeToString(salt), base64.StdEncoding.EncodeToString(hash), nil
}

// VerifyPassword re-derives the hash from the stored salt and compares it
// against the stored hash in constant time.
func VerifyPassword(password, saltB64, hashB64 string) bool {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	stored, err := base64.StdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}
	calc := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(stored), sha256.New)
	return subtle.ConstantTimeCompare(calc, stored) == 1
}
