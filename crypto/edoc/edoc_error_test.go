package edoc

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Run("key_size", func(t *testing.T) {
		assert.Contains(t, KeySizeError(0).Error(), "invalid key size 0")
	})

	t.Run("encrypt", func(t *testing.T) {
		err := EncryptError{Err: io.ErrShortWrite}
		assert.Contains(t, err.Error(), "failed to encrypt")
		assert.True(t, errors.Is(err, io.ErrShortWrite))
	})

	t.Run("decrypt", func(t *testing.T) {
		err := DecryptError{Err: io.ErrShortWrite}
		assert.Contains(t, err.Error(), "failed to decrypt")
	})

	t.Run("invalid_data_size", func(t *testing.T) {
		assert.Contains(t, InvalidDataSizeError{Size: 9}.Error(), "invalid message size 9")
	})

	t.Run("read_wraps", func(t *testing.T) {
		err := ReadError{Err: io.ErrUnexpectedEOF}
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
		assert.Contains(t, err.Error(), "failed to read")
	})

	t.Run("write_wraps", func(t *testing.T) {
		err := WriteError{Err: io.ErrClosedPipe}
		assert.True(t, errors.Is(err, io.ErrClosedPipe))
		assert.Contains(t, err.Error(), "failed to write")
	})
}
