package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of an issued token. The hex form is twice as long.
const tokenBytes = 48

// Issuer generates opaque session tokens. Tokens carry no claims, the
// server resolves them against the account that currently holds them.
type Issuer struct {
	numBytes int
}

func NewIssuer() *Issuer {
	return &Issuer{
		numBytes: tokenBytes,
	}
}

// Issue returns a fresh cryptographically random hex-encoded token.
func (i *Issuer) Issue() (string, error) {
	buf := make([]byte, i.numBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
