package edoc

import "fmt"

// KeySizeError represents an error when the key has an invalid size.
// The edoc key schedule stretches the password by repetition, so any
// length works except zero.
type KeySizeError int

// Error returns a formatted error message describing the invalid key size.
func (k KeySizeError) Error() string {
	return fmt.Sprintf("crypto/edoc: invalid key size %d, key must not be empty", int(k))
}

// EncryptError represents an error that occurs during encryption,
// wrapping the underlying cause (typically an entropy source failure).
type EncryptError struct {
	Err error
}

// Error returns a formatted error message describing the encryption failure.
func (e EncryptError) Error() string {
	return fmt.Sprintf("crypto/edoc: failed to encrypt data: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e EncryptError) Unwrap() error {
	return e.Err
}

// DecryptError represents an error that occurs during decryption.
type DecryptError struct {
	Err error
}

// Error returns a formatted error message describing the decryption failure.
func (e DecryptError) Error() string {
	return fmt.Sprintf("crypto/edoc: failed to decrypt data: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e DecryptError) Unwrap() error {
	return e.Err
}

// InvalidDataSizeError represents an error when a message is shorter
// than its header or its ciphertext does not match the recorded
// plaintext length rounded up to whole blocks.
type InvalidDataSizeError struct {
	Size int
}

// Error returns a formatted error message describing the invalid message size.
func (e InvalidDataSizeError) Error() string {
	return fmt.Sprintf("crypto/edoc: invalid message size %d", e.Size)
}

// ReadError represents an error that occurs while reading a message
// from an underlying reader.
type ReadError struct {
	Err error
}

// Error returns a formatted error message describing the read failure.
func (e ReadError) Error() string {
	return fmt.Sprintf("crypto/edoc: failed to read data: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e ReadError) Unwrap() error {
	return e.Err
}

// WriteError represents an error that occurs while writing a message
// to an underlying writer.
type WriteError struct {
	Err error
}

// Error returns a formatted error message describing the write failure.
func (e WriteError) Error() string {
	return fmt.Sprintf("crypto/edoc: failed to write data: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e WriteError) Unwrap() error {
	return e.Err
}
