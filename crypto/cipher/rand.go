package cipher

import (
	"io"

	"golang.org/x/crypto/chacha20"
)

// deterministicRand emits a ChaCha20 keystream. Two readers built from
// the same key produce the same byte sequence.
type deterministicRand struct {
	stream *chacha20.Cipher
}

// NewDeterministicRand returns an entropy source that derives a
// reproducible byte stream from key. Installing it on an EdocCipher via
// SetRand makes archives byte-for-byte reproducible: seeds and padding
// are the only consumers of entropy, and any byte source yields a
// correct round trip.
func NewDeterministicRand(key []byte) io.Reader {
	var k [chacha20.KeySize]byte
	if len(key) > 0 {
		for i := range k {
			k[i] = key[i%len(key)]
		}
	}
	var nonce [chacha20.NonceSize]byte
	stream, _ := chacha20.NewUnauthenticatedCipher(k[:], nonce[:])
	return &deterministicRand{stream: stream}
}

// Read fills p with the next keystream bytes. It never fails.
func (r *deterministicRand) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
