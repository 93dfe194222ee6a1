package security

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword hashes a plaintext password with argon2id using a random salt.
// The salt and parameters are embedded in the returned encoded string, so the
// same plaintext hashed twice yields different outputs.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()

	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether the plaintext password matches the encoded
// hash. The comparison is constant-time. A malformed encoded hash returns an
// error rather than a silent false.
func VerifyPassword(password, encodedHash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
