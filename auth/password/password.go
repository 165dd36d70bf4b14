package password

import (
	"github.com/alexedwards/argon2id"

	customErrors "github.com/ananev/todoauth/auth/errors"
)

// Verifier hashes and checks plaintext credentials with argon2id.
// The optional pepper is appended before hashing, so the stored hash
// is useless without it.
type Verifier struct {
	pepper string
	params *argon2id.Params
}

func NewVerifier(pepper string) *Verifier {
	return &Verifier{
		pepper: pepper,
		params: argon2id.DefaultParams,
	}
}

func (v *Verifier) Hash(secret string) (string, error) {
	hash, err := argon2id.CreateHash(secret+v.pepper, v.params)
	if err != nil {
		return "", customErrors.WrapInternal(err, "hash password")
	}
	return hash, nil
}

// Verify reports whether secret matches hash. Any error, including a
// malformed stored hash, reads as a mismatch: this path fails closed.
func (v *Verifier) Verify(secret, hash string) bool {
	match, err := argon2id.ComparePasswordAndHash(secret+v.pepper, hash)
	if err != nil {
		return false
	}
	return match
}
