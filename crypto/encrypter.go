package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"
	"io/fs"

	"github.com/edoclabs/edoc/utils"
)

// Encrypter defines an Encrypter struct, accumulating an input source,
// an encryption step, and an output conversion along a call chain.
type Encrypter struct {
	src    []byte
	dst    []byte
	reader io.Reader
	Error  error
}

// NewEncrypter returns a new Encrypter instance.
func NewEncrypter() *Encrypter {
	return &Encrypter{}
}

// FromString encrypts from string.
func (e *Encrypter) FromString(s string) *Encrypter {
	e.src = utils.String2Bytes(s)
	return e
}

// FromBytes encrypts from byte slice.
func (e *Encrypter) FromBytes(b []byte) *Encrypter {
	e.src = b
	return e
}

// FromFile encrypts from file.
func (e *Encrypter) FromFile(f fs.File) *Encrypter {
	e.reader = f
	return e
}

// ToRawString outputs as raw string without encoding.
func (e *Encrypter) ToRawString() string {
	return utils.Bytes2String(e.dst)
}

// ToRawBytes outputs as raw byte slice without encoding.
func (e *Encrypter) ToRawBytes() []byte {
	if len(e.dst) == 0 {
		return []byte{}
	}
	return e.dst
}

// ToHexString outputs as hex string.
func (e *Encrypter) ToHexString() string {
	return hex.EncodeToString(e.dst)
}

// ToHexBytes outputs as hex byte slice.
func (e *Encrypter) ToHexBytes() []byte {
	dst := make([]byte, hex.EncodedLen(len(e.dst)))
	hex.Encode(dst, e.dst)
	return dst
}

// ToBase64String outputs as base64 string.
func (e *Encrypter) ToBase64String() string {
	return base64.StdEncoding.EncodeToString(e.dst)
}

// ToBase64Bytes outputs as base64 byte slice.
func (e *Encrypter) ToBase64Bytes() []byte {
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(e.dst)))
	base64.StdEncoding.Encode(dst, e.dst)
	return dst
}

// stream drains the configured reader through a streaming encrypter,
// collecting the emitted message.
func (e *Encrypter) stream(fn func(io.Writer) io.WriteCloser) ([]byte, error) {
	var result bytes.Buffer
	encrypter := fn(&result)

	buffer := make([]byte, BufferSize)
	for {
		n, readErr := e.reader.Read(buffer)
		if n > 0 {
			if _, writeErr := encrypter.Write(buffer[:n]); writeErr != nil {
				return nil, writeErr
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return nil, readErr
		}
	}
	if err := encrypter.Close(); err != nil {
		return nil, err
	}
	return result.Bytes(), nil
}
