package password

import (
	"encoding/base64"
	"errors"
	"todoapi/config"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/argon2"
)

const (
	// Argon2id parameters. Changing any of them invalidates every stored digest.
	Time    = 2
	Memory  = 19 * 1024
	Threads = 1
	KeyLen  = 32

	defaultSalt = "todoapi.password.salt"
)

var ErrMissingPassword = errors.New("password is missing")

// Hasher turns a plaintext credential into a printable digest. The same plaintext always yields the
// same digest for a given salt, so digests can be matched with plain equality in a query.
type Hasher interface {
	Hash(plaintext *string) (string, error)
}

type argonHasher struct {
	salt []byte
}

func New(cfg *config.Config) Hasher {
	salt := cfg.App.PasswordSalt
	if salt == "" {
		log.Warn().Msg("No password salt configured, using the built-in default")

		salt = defaultSalt
	}

	return NewWithSalt(salt)
}

func NewWithSalt(salt string) Hasher {
	return &argonHasher{salt: []byte(salt)}
}

// Hash derives the argon2id digest of plaintext and encodes it as unpadded base64.
// Only an absent plaintext is refused; the empty string hashes like any other value.
func (h *argonHasher) Hash(plaintext *string) (string, error) {
	if plaintext == nil {
		return "", ErrMissingPassword
	}

	key := argon2.IDKey([]byte(*plaintext), h.salt, Time, Memory, Threads, KeyLen)

	return base64.RawStdEncoding.EncodeToString(key), nil
}
