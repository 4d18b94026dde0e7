package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"
	"io/fs"

	"github.com/edoclabs/edoc/utils"
)

// Decrypter defines a Decrypter struct, the inverse chain of Encrypter.
type Decrypter struct {
	src    []byte
	dst    []byte
	reader io.Reader
	Error  error
}

// NewDecrypter returns a new Decrypter instance.
func NewDecrypter() *Decrypter {
	return &Decrypter{}
}

// FromRawString decrypts from raw string.
func (d *Decrypter) FromRawString(s string) *Decrypter {
	d.src = utils.String2Bytes(s)
	return d
}

// FromRawBytes decrypts from raw bytes.
func (d *Decrypter) FromRawBytes(b []byte) *Decrypter {
	d.src = b
	return d
}

// FromRawFile decrypts from raw file.
func (d *Decrypter) FromRawFile(f fs.File) *Decrypter {
	d.reader = f
	return d
}

// FromHexString decrypts from hex string.
func (d *Decrypter) FromHexString(s string) *Decrypter {
	src, err := hex.DecodeString(s)
	if err != nil {
		d.Error = err
		return d
	}
	d.src = src
	return d
}

// FromHexBytes decrypts from hex bytes.
func (d *Decrypter) FromHexBytes(b []byte) *Decrypter {
	return d.FromHexString(utils.Bytes2String(b))
}

// FromBase64String decrypts from base64 string.
func (d *Decrypter) FromBase64String(s string) *Decrypter {
	src, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		d.Error = err
		return d
	}
	d.src = src
	return d
}

// FromBase64Bytes decrypts from base64 bytes.
func (d *Decrypter) FromBase64Bytes(b []byte) *Decrypter {
	return d.FromBase64String(utils.Bytes2String(b))
}

// ToString outputs as string.
func (d *Decrypter) ToString() string {
	return utils.Bytes2String(d.dst)
}

// ToBytes outputs as byte slice.
func (d *Decrypter) ToBytes() []byte {
	if len(d.dst) == 0 {
		return []byte{}
	}
	return d.dst
}

// stream drains a streaming decrypter built over the configured reader.
func (d *Decrypter) stream(fn func(io.Reader) io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	decrypter := fn(d.reader)

	if _, err := io.CopyBuffer(&buf, decrypter, make([]byte, BufferSize)); err != nil && err != io.EOF {
		return []byte{}, err
	}
	if buf.Len() == 0 {
		return []byte{}, nil
	}
	return buf.Bytes(), nil
}
