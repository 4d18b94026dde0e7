package crypto

import (
	"io"

	"github.com/edoclabs/edoc/crypto/cipher"
	"github.com/edoclabs/edoc/crypto/edoc"
)

// ByEdoc encrypts by the edoc cipher. The result is a self-contained
// message (length, seed, ciphertext blocks); an empty input still
// yields a header-only message.
func (e *Encrypter) ByEdoc(c *cipher.EdocCipher) *Encrypter {
	if e.Error != nil {
		return e
	}

	// If reader is set, use streaming processing
	if e.reader != nil {
		e.dst, e.Error = e.stream(func(w io.Writer) io.WriteCloser {
			return edoc.NewStreamEncrypter(w, c)
		})
		return e
	}

	e.dst, e.Error = edoc.NewStdEncrypter(c).Encrypt(e.src)
	return e
}

// ByEdoc decrypts by the edoc cipher.
func (d *Decrypter) ByEdoc(c *cipher.EdocCipher) *Decrypter {
	if d.Error != nil {
		return d
	}

	// If reader is set, use streaming processing
	if d.reader != nil {
		d.dst, d.Error = d.stream(func(r io.Reader) io.Reader {
			return edoc.NewStreamDecrypter(r, c)
		})
		return d
	}

	d.dst, d.Error = edoc.NewStdDecrypter(c).Decrypt(d.src)
	return d
}
