// Package archive implements the edoc container format: a
// self-describing byte stream holding one encrypted file or a folder of
// them. The stream opens with a mode byte, 0x00 for a single file and
// 0x01 for a folder. A single-file archive is the mode byte followed by
// one cipher message; a folder archive is the mode byte followed by any
// number of records, each a 1-byte name length, the UTF-8 '/'-separated
// relative path, and the file's cipher message. Clean EOF where the
// next name length would start ends a folder archive.
//
// Every payload is compressed with the edoc dictionary codec before
// encryption, each file independently, with its own fresh seed.
//
// Filesystem access goes through the TreeReader and TreeWriter
// capabilities so hosts control enumeration order and placement; OS
// adapters live in this package, in-memory ones in the mock package.
package archive

import (
	"io"
)

// Archive mode bytes.
const (
	// ModeFile marks an archive holding a single file.
	ModeFile byte = 0x00
	// ModeTree marks an archive holding a folder tree.
	ModeTree byte = 0x01
)

// MaxNameLen is the longest relative path a folder record can carry,
// limited by the 1-byte name length field.
const MaxNameLen = 255

// TreeReader enumerates the files of a tree for encoding. Next returns
// the next file as a '/'-separated relative path with a reader over its
// contents, and io.EOF when the tree is exhausted. The order of
// enumeration is the order of the archive.
type TreeReader interface {
	Next() (path string, r io.ReadCloser, err error)

	// Size reports the total plaintext size of the tree in bytes, or 0
	// when unknown. Used only for progress reporting.
	Size() int64
}

// TreeWriter places decoded files. Create opens the given relative path
// for writing, creating missing parents.
type TreeWriter interface {
	Create(path string) (w io.WriteCloser, err error)
}

// Progress is invoked serially from the pipeline with the number of
// plaintext bytes processed so far and the total when known (0
// otherwise). It replaces any global progress state; callers wanting a
// UI update from another goroutine must hand off themselves.
type Progress func(done, total int64)
