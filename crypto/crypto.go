// Package crypto provides the fluent encryption and decryption API for
// the edoc cipher.
package crypto

// BufferSize is the chunk size used when streaming from readers.
const BufferSize = 4096
