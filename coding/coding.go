// Package coding provides the fluent compression and decompression API
// for the edoc dictionary codec.
package coding

// BufferSize is the chunk size used when streaming from readers.
const BufferSize = 4096
