// Package cipher provides cipher configuration for the edoc encryption
// engine, including key management and the entropy sources used for
// per-message seeds and block padding.
package cipher

type baseCipher struct {
	Key []byte
}

// SetKey sets the encryption key for the cipher.
func (c *baseCipher) SetKey(key []byte) {
	c.Key = key
}
