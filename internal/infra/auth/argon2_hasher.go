package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"authsvc/internal/domain/service"
	"authsvc/internal/errors"

	"golang.org/x/crypto/argon2"
)

const argon2idPrefix = "$argon2id$"

// Argon2Params are the argon2id cost parameters encoded into every digest.
type Argon2Params struct {
	Memory     uint32 // KiB
	Iterations uint32
	Threads    uint8
	SaltLength uint32
	KeyLength  uint32
}

// DefaultArgon2Params follows the RFC 9106 second recommended option, with memory lowered to 64 MiB.
var DefaultArgon2Params = Argon2Params{
	Memory:     64 * 1024,
	Iterations: 1,
	Threads:    2,
	SaltLength: 16,
	KeyLength:  32,
}

var errMalformedArgon2Digest = errors.New("malformed argon2id digest")

type argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher returns an argon2id hasher. Zero fields fall back to DefaultArgon2Params.
func NewArgon2Hasher(params Argon2Params) service.PasswordHasher {
	return newArgon2Hasher(params)
}

func newArgon2Hasher(params Argon2Params) *argon2Hasher {
	if params.Memory == 0 {
		params.Memory = DefaultArgon2Params.Memory
	}
	if params.Iterations == 0 {
		params.Iterations = DefaultArgon2Params.Iterations
	}
	if params.Threads == 0 {
		params.Threads = DefaultArgon2Params.Threads
	}
	if params.SaltLength == 0 {
		params.SaltLength = DefaultArgon2Params.SaltLength
	}
	if params.KeyLength == 0 {
		params.KeyLength = DefaultArgon2Params.KeyLength
	}

	return &argon2Hasher{params: params}
}

// Hash derives a key with a fresh random salt and returns it in PHC string format:
// $argon2id$v=19$m=65536,t=1,p=2$<salt>$<key>
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := deriveArgon2Key(password, salt, h.params)

	return encodeArgon2Digest(h.params, salt, key), nil
}

// Check re-derives the key using the parameters stored in digest.
func (h *argon2Hasher) Check(password, digest string) bool {
	params, salt, key, err := decodeArgon2Digest(digest)
	if err != nil {
		return false
	}

	candidate := deriveArgon2Key(password, salt, params)

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func deriveArgon2Key(password string, salt []byte, params Argon2Params) []byte {
	return argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Threads, params.KeyLength)
}

func encodeArgon2Digest(params Argon2Params, salt, key []byte) string {
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		params.Memory,
		params.Iterations,
		params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeArgon2Digest(digest string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, errMalformedArgon2Digest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.Wrap(errMalformedArgon2Digest, "version")
	}
	if version != argon2.Version {
		return params, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Threads); err != nil {
		return params, nil, nil, errors.Wrap(errMalformedArgon2Digest, "parameters")
	}
	if params.Memory == 0 || params.Iterations == 0 || params.Threads == 0 {
		return params, nil, nil, errors.Wrap(errMalformedArgon2Digest, "zero parameter")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, errors.Wrap(errMalformedArgon2Digest, "salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, errors.Wrap(errMalformedArgon2Digest, "key")
	}

	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}
