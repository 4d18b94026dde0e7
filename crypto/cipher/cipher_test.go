package cipher

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdocCipher(t *testing.T) {
	t.Run("set_key", func(t *testing.T) {
		c := NewEdocCipher()
		c.SetKey([]byte("secret"))
		assert.Equal(t, []byte("secret"), c.Key)
	})

	t.Run("default_rand", func(t *testing.T) {
		c := NewEdocCipher()
		assert.Equal(t, rand.Reader, c.Rand())
	})

	t.Run("set_rand", func(t *testing.T) {
		c := NewEdocCipher()
		r := NewDeterministicRand([]byte("k"))
		c.SetRand(r)
		assert.Equal(t, r, c.Rand())
	})
}

func TestNewDeterministicRand(t *testing.T) {
	t.Run("same_key_same_stream", func(t *testing.T) {
		a := make([]byte, 1024)
		b := make([]byte, 1024)
		_, err := io.ReadFull(NewDeterministicRand([]byte("key")), a)
		assert.Nil(t, err)
		_, err = io.ReadFull(NewDeterministicRand([]byte("key")), b)
		assert.Nil(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("different_keys_differ", func(t *testing.T) {
		a := make([]byte, 64)
		b := make([]byte, 64)
		io.ReadFull(NewDeterministicRand([]byte("one")), a)
		io.ReadFull(NewDeterministicRand([]byte("two")), b)
		assert.NotEqual(t, a, b)
	})

	t.Run("stream_advances", func(t *testing.T) {
		r := NewDeterministicRand([]byte("key"))
		a := make([]byte, 64)
		b := make([]byte, 64)
		io.ReadFull(r, a)
		io.ReadFull(r, b)
		assert.NotEqual(t, a, b)
	})
}
