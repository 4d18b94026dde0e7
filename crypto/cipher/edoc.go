package cipher

import (
	"crypto/rand"
	"io"
)

// EdocCipher defines an EdocCipher struct.
//
// The key is the user password; it may be any length >= 1 byte and is
// stretched by cyclic repetition inside the encrypter. The entropy
// source feeds per-message seeds and trailing-block padding, neither of
// which affects round-trip correctness, so a deterministic source is a
// valid substitute for crypto/rand.
type EdocCipher struct {
	baseCipher
	rand io.Reader
}

// NewEdocCipher returns a new EdocCipher instance.
func NewEdocCipher() (c *EdocCipher) {
	return &EdocCipher{}
}

// SetRand sets the entropy source for the cipher.
func (c *EdocCipher) SetRand(r io.Reader) {
	c.rand = r
}

// Rand returns the configured entropy source, falling back to
// crypto/rand when none is set.
func (c *EdocCipher) Rand() io.Reader {
	if c.rand == nil {
		return rand.Reader
	}
	return c.rand
}
