package auth

import (
	"strings"

	"authsvc/config"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
)

// passwordHasher hashes with the configured algorithm and verifies any
// digest whose encoding it recognises, so switching auth.hasher does not
// lock out existing accounts.
type passwordHasher struct {
	primary service.PasswordHasher
	argon2  *argon2Hasher
	bcrypt  *bcryptHasher
}

// NewPasswordHasher is the fx constructor for service.PasswordHasher.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{Hasher: config.HasherArgon2id}
	}

	h := &passwordHasher{
		argon2: newArgon2Hasher(Argon2Params{
			Memory:     authCfg.Argon2.Memory,
			Iterations: authCfg.Argon2.Iterations,
			Threads:    authCfg.Argon2.Threads,
			SaltLength: authCfg.Argon2.SaltLength,
			KeyLength:  authCfg.Argon2.KeyLength,
		}),
		bcrypt: newBcryptHasher(authCfg.BcryptCost),
	}

	switch authCfg.Hasher {
	case config.HasherArgon2id, "":
		h.primary = h.argon2
	case config.HasherBcrypt:
		h.primary = h.bcrypt
	default:
		return nil, errors.Errorf("unsupported password hasher: %s", authCfg.Hasher)
	}

	return h, nil
}

func (h *passwordHasher) Hash(password string) (string, error) {
	digest, err := h.primary.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return digest, nil
}

func (h *passwordHasher) Check(password, digest string) bool {
	switch {
	case strings.HasPrefix(digest, argon2idPrefix):
		return h.argon2.Check(password, digest)
	case isBcryptDigest(digest):
		return h.bcrypt.Check(password, digest)
	default:
		return false
	}
}
