package auth

import (
	"strings"
	"testing"

	"authsvc/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthConfig(hasher string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Hasher:     hasher,
			BcryptCost: bcrypt.MinCost,
			Argon2: config.Argon2Config{
				Memory:     testArgon2Params.Memory,
				Iterations: testArgon2Params.Iterations,
				Threads:    testArgon2Params.Threads,
			},
		},
	}
}

func TestNewPasswordHasher_SelectsAlgorithm(t *testing.T) {
	tests := []struct {
		hasher string
		prefix string
	}{
		{hasher: config.HasherArgon2id, prefix: "$argon2id$"},
		{hasher: "", prefix: "$argon2id$"},
		{hasher: config.HasherBcrypt, prefix: "$2a$"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+tt.hasher, func(t *testing.T) {
			hasher, err := NewPasswordHasher(newTestAuthConfig(tt.hasher))
			require.NoError(t, err)

			digest, err := hasher.Hash("secret1")
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(digest, tt.prefix), digest)
			assert.True(t, hasher.Check("secret1", digest))
			assert.False(t, hasher.Check("secret2", digest))
		})
	}
}

func TestNewPasswordHasher_UnknownAlgorithm(t *testing.T) {
	_, err := NewPasswordHasher(newTestAuthConfig("md5"))
	assert.Error(t, err)
}

func TestNewPasswordHasher_NilAuthConfig(t *testing.T) {
	hasher, err := NewPasswordHasher(&config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, hasher)
}

func TestPasswordHasher_ChecksEitherEncoding(t *testing.T) {
	argonHasher, err := NewPasswordHasher(newTestAuthConfig(config.HasherArgon2id))
	require.NoError(t, err)
	bcryptHasher, err := NewPasswordHasher(newTestAuthConfig(config.HasherBcrypt))
	require.NoError(t, err)

	argonDigest, err := argonHasher.Hash("secret1")
	require.NoError(t, err)
	bcryptDigest, err := bcryptHasher.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, argonHasher.Check("secret1", bcryptDigest))
	assert.True(t, bcryptHasher.Check("secret1", argonDigest))
	assert.False(t, argonHasher.Check("secret1", "plain-text"))
}

func TestPasswordHasher_WrapsHashFailure(t *testing.T) {
	hasher, err := NewPasswordHasher(newTestAuthConfig(config.HasherBcrypt))
	require.NoError(t, err)

	_, err = hasher.Hash(strings.Repeat("x", 100))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash password")
}
