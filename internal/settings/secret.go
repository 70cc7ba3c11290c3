package settings

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// secretAlphabet is the character set for generated secret keys. URL-safe
// so the key survives env files, compose files, and shell quoting.
const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

// SecretKeyLength is the number of characters in a generated secret key,
// giving 256 bits of entropy over the 64-character alphabet.
const SecretKeyLength = 43

// GenerateSecretKey returns a random key suitable as a production
// SECRET_KEY replacement for the placeholder default.
func GenerateSecretKey() (string, error) {
	key, err := nanoid.Generate(secretAlphabet, SecretKeyLength)
	if err != nil {
		return "", fmt.Errorf("generate secret key: %w", err)
	}
	return key, nil
}
