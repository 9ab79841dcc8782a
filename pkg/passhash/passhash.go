package passhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters, fixed at a constant work factor.
const (
	scryptN    = 1 << 14
	scryptR    = 8
	scryptP    = 1
	saltLength = 16
	keyLength  = 64
)

var ErrPasswordMismatch error = errors.New("password mismatch")
var ErrMalformedHash error = errors.New("malformed password hash")

// Hasher derives and verifies scrypt password hashes in the
// "hex(salt):hex(key)" composite form.
type Hasher struct{}

func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash derives a key from the password under a fresh random salt.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("reading random salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	return fmt.Sprintf("%s:%s", hex.EncodeToString(salt), hex.EncodeToString(key)), nil
}

// Verify recomputes the derived key from the submitted password and the
// stored salt and compares it to the stored key in constant time.
func (h *Hasher) Verify(password string, encoded string) error {
	saltHex, keyHex, ok := strings.Cut(encoded, ":")
	if !ok {
		return ErrMalformedHash
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return fmt.Errorf("%w: decode salt: %w", ErrMalformedHash, err)
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return fmt.Errorf("%w: decode key: %w", ErrMalformedHash, err)
	}
	if len(key) == 0 {
		return ErrMalformedHash
	}

	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, len(key))
	if err != nil {
		return fmt.Errorf("deriving key: %w", err)
	}

	if subtle.ConstantTimeCompare(derived, key) != 1 {
		return ErrPasswordMismatch
	}

	return nil
}
