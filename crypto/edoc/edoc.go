// Package edoc implements the edoc password-based block cipher with
// streaming support. The cipher is an 8-round substitution-permutation
// network over 256-byte blocks whose key schedule stretches the
// password by cyclic repetition; a 256-byte running seed chains blocks
// and is written in clear at the head of every message.
//
// A message is framed as an 8-byte big-endian plaintext length, the
// 256-byte initial seed, then the ciphertext blocks. The trailing
// partial block is padded with bytes from the cipher's entropy source;
// padding never survives decryption, so any byte source round-trips.
//
// This is a faithful rendition of a hobby cipher, not a secure one. Do
// not use it to protect data against a motivated attacker.
package edoc

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/edoclabs/edoc/crypto/cipher"
)

// HeaderSize is the byte length of a message header: the plaintext
// length field followed by the initial seed.
const HeaderSize = 8 + BlockSize

// StdEncrypter represents an edoc encrypter for one-shot encryption
// operations. Each call to Encrypt draws a fresh seed from the cipher's
// entropy source, so two encryptions of the same plaintext produce
// different messages. With a deterministic entropy source, encrypters
// given fresh sources built from the same key produce the same sequence
// of messages.
type StdEncrypter struct {
	cipher *cipher.EdocCipher // The cipher configuration (key + entropy source)
	spBox  *spBox             // The substitution-permutation network
	Error  error              // Error field for storing encryption errors
}

// NewStdEncrypter creates a new edoc encrypter with the specified
// cipher. The key may be any length but must not be empty.
func NewStdEncrypter(c *cipher.EdocCipher) *StdEncrypter {
	e := &StdEncrypter{
		cipher: c,
	}

	if len(c.Key) == 0 {
		e.Error = KeySizeError(0)
		return e
	}

	e.spBox = newSPBox(expandKey(c.Key))
	return e
}

// Encrypt encrypts the given byte slice into a self-contained message.
// An empty plaintext yields a header-only message of HeaderSize bytes.
func (e *StdEncrypter) Encrypt(src []byte) (dst []byte, err error) {
	if e.Error != nil {
		return nil, e.Error
	}

	if err = e.spBox.randomSeed(e.cipher.Rand()); err != nil {
		return nil, EncryptError{Err: err}
	}

	length := len(src)
	padded := (length + BlockSize - 1) / BlockSize * BlockSize

	plain := make([]byte, padded)
	copy(plain, src)
	if padded > length {
		if _, err = io.ReadFull(e.cipher.Rand(), plain[length:]); err != nil {
			return nil, EncryptError{Err: err}
		}
	}

	dst = make([]byte, HeaderSize, HeaderSize+padded)
	binary.BigEndian.PutUint64(dst[:8], uint64(length))
	seed := e.spBox.getSeed()
	copy(dst[8:], seed[:])

	var block [BlockSize]byte
	for off := 0; off < padded; off += BlockSize {
		copy(block[:], plain[off:off+BlockSize])
		encoded := e.spBox.encryptBlock(&block)
		dst = append(dst, encoded[:]...)
	}
	return dst, nil
}

// StdDecrypter represents an edoc decrypter for one-shot decryption
// operations. The seed is taken from the message itself.
type StdDecrypter struct {
	cipher *cipher.EdocCipher // The cipher configuration
	spBox  *spBox             // The substitution-permutation network
	Error  error              // Error field for storing decryption errors
}

// NewStdDecrypter creates a new edoc decrypter with the specified
// cipher. The key may be any length but must not be empty.
func NewStdDecrypter(c *cipher.EdocCipher) *StdDecrypter {
	d := &StdDecrypter{
		cipher: c,
	}

	if len(c.Key) == 0 {
		d.Error = KeySizeError(0)
		return d
	}

	d.spBox = newSPBox(expandKey(c.Key))
	return d
}

// Decrypt decrypts a complete message produced by Encrypt. The input
// must contain the full header and exactly the ciphertext blocks the
// length field calls for.
func (d *StdDecrypter) Decrypt(src []byte) (dst []byte, err error) {
	if d.Error != nil {
		return nil, d.Error
	}

	if len(src) < HeaderSize {
		return nil, InvalidDataSizeError{Size: len(src)}
	}

	length := binary.BigEndian.Uint64(src[:8])
	need := (length + BlockSize - 1) / BlockSize * BlockSize
	if uint64(len(src)-HeaderSize) != need {
		return nil, InvalidDataSizeError{Size: len(src)}
	}

	var seed [BlockSize]byte
	copy(seed[:], src[8:HeaderSize])
	d.spBox.setSeed(&seed)

	dst = make([]byte, 0, length)
	var block [BlockSize]byte
	remaining := length
	for off := HeaderSize; off < len(src); off += BlockSize {
		copy(block[:], src[off:off+BlockSize])
		decoded := d.spBox.decryptBlock(&block)
		take := uint64(BlockSize)
		if remaining < take {
			take = remaining
		}
		dst = append(dst, decoded[:take]...)
		remaining -= take
	}
	return dst, nil
}

// StreamEncrypter represents a streaming edoc encrypter that implements
// io.WriteCloser. The message's length field precedes the payload, so
// plaintext is buffered and the message is emitted on Close.
type StreamEncrypter struct {
	writer    io.Writer          // Underlying writer for the encoded message
	cipher    *cipher.EdocCipher // The cipher configuration
	encrypter *StdEncrypter      // One-shot encrypter used at Close
	buffer    bytes.Buffer       // Buffered plaintext
	Error     error              // Error field for storing encryption errors
}

// NewStreamEncrypter creates a new streaming edoc encrypter that writes
// a complete message to the provided io.Writer when closed.
func NewStreamEncrypter(w io.Writer, c *cipher.EdocCipher) io.WriteCloser {
	e := &StreamEncrypter{
		writer: w,
		cipher: c,
	}

	e.encrypter = NewStdEncrypter(c)
	if e.encrypter.Error != nil {
		e.Error = e.encrypter.Error
	}
	return e
}

// Write implements io.Writer, buffering plaintext until Close.
func (e *StreamEncrypter) Write(p []byte) (n int, err error) {
	if e.Error != nil {
		return 0, e.Error
	}
	return e.buffer.Write(p)
}

// Close encrypts the buffered plaintext, writes the message to the
// underlying writer, and closes it if it implements io.Closer.
func (e *StreamEncrypter) Close() error {
	if e.Error != nil {
		return e.Error
	}

	dst, err := e.encrypter.Encrypt(e.buffer.Bytes())
	if err != nil {
		e.Error = err
		return err
	}
	if _, err = e.writer.Write(dst); err != nil {
		e.Error = WriteError{Err: err}
		return e.Error
	}

	if closer, ok := e.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// StreamDecrypter represents a streaming edoc decrypter that implements
// io.Reader. It consumes exactly one message from the underlying
// reader: the header lazily on first read, then one ciphertext block at
// a time, leaving any following bytes untouched.
type StreamDecrypter struct {
	reader    io.Reader          // Underlying reader holding the message
	cipher    *cipher.EdocCipher // The cipher configuration
	spBox     *spBox             // The substitution-permutation network
	started   bool               // Whether the header has been consumed
	remaining uint64             // Plaintext bytes not yet produced
	pending   []byte             // Decrypted bytes awaiting delivery
	Error     error              // Error field for storing decryption errors
}

// NewStreamDecrypter creates a new streaming edoc decrypter that reads
// one message from the provided io.Reader.
func NewStreamDecrypter(r io.Reader, c *cipher.EdocCipher) io.Reader {
	d := &StreamDecrypter{
		reader: r,
		cipher: c,
	}

	if len(c.Key) == 0 {
		d.Error = KeySizeError(0)
		return d
	}

	d.spBox = newSPBox(expandKey(c.Key))
	return d
}

// Read implements io.Reader, producing plaintext until the recorded
// length is exhausted, then io.EOF. A stream that ends mid-header or
// mid-block yields a ReadError wrapping io.ErrUnexpectedEOF.
func (d *StreamDecrypter) Read(p []byte) (n int, err error) {
	if d.Error != nil {
		return 0, d.Error
	}

	if !d.started {
		var header [HeaderSize]byte
		if _, err = io.ReadFull(d.reader, header[:]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			d.Error = ReadError{Err: err}
			return 0, d.Error
		}
		d.remaining = binary.BigEndian.Uint64(header[:8])
		var seed [BlockSize]byte
		copy(seed[:], header[8:])
		d.spBox.setSeed(&seed)
		d.started = true
	}

	if len(d.pending) == 0 {
		if d.remaining == 0 {
			return 0, io.EOF
		}
		var block [BlockSize]byte
		if _, err = io.ReadFull(d.reader, block[:]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			d.Error = ReadError{Err: err}
			return 0, d.Error
		}
		decoded := d.spBox.decryptBlock(&block)
		take := uint64(BlockSize)
		if d.remaining < take {
			take = d.remaining
		}
		d.pending = append(d.pending[:0], decoded[:take]...)
		d.remaining -= take
	}

	n = copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}
