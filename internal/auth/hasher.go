package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2-HMAC-SHA256 parameters. The iteration count follows the OWASP
// recommendation for SHA256.
const (
	hashIterations = 600000
	hashKeyLength  = 32
	saltLength     = 16
)

// HashPassword derives the stored hash from a password and a base64 salt.
func HashPassword(password, salt string) (string, error) {
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("could not decode password salt: %w", err)
	}
	hash := pbkdf2.Key([]byte(password), saltBytes, hashIterations, hashKeyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(hash), nil
}

// MakeSalt generates a fresh random salt, base64-encoded for storage.
func MakeSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("could not generate password salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// verifyPassword recomputes the hash and compares it in constant time.
func verifyPassword(password, salt, expectedHash string) (bool, error) {
	hash, err := HashPassword(password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(hash), []byte(expectedHash)) == 1, nil
}
