package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// secretBytes is the size of a generated HS256 key (256 bits).
const secretBytes = 32

// GenerateSecret returns a random hex encoded signing key for the token service.
func GenerateSecret() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
