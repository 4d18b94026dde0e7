package archive

import (
	"io"
	"strings"

	"github.com/edoclabs/edoc/coding/lzw"
	"github.com/edoclabs/edoc/crypto/cipher"
	"github.com/edoclabs/edoc/crypto/edoc"
)

// Writer encodes files and trees into archives. A Writer owns one
// cipher instance and is not safe for concurrent use; instantiate one
// per goroutine.
type Writer struct {
	cipher   *cipher.EdocCipher
	progress Progress
}

// NewWriter returns a new Writer encrypting with the given cipher.
func NewWriter(c *cipher.EdocCipher) *Writer {
	return &Writer{cipher: c}
}

// SetProgress sets the progress callback.
func (w *Writer) SetProgress(fn Progress) {
	w.progress = fn
}

// EncodeFile writes a single-file archive: the mode byte followed by
// src's compressed and encrypted contents.
func (w *Writer) EncodeFile(src io.Reader, dst io.Writer) error {
	if _, err := dst.Write([]byte{ModeFile}); err != nil {
		return WriteError{Err: err}
	}
	var done int64
	return w.encodePayload(src, dst, &done, 0)
}

// EncodeTree writes a folder archive: the mode byte followed by one
// record per file the tree yields, in the tree's order. Each file is
// independently compressed and seeded.
func (w *Writer) EncodeTree(tree TreeReader, dst io.Writer) error {
	if _, err := dst.Write([]byte{ModeTree}); err != nil {
		return WriteError{Err: err}
	}

	total := tree.Size()
	var done int64
	for {
		path, rc, err := tree.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return ReadError{Err: err}
		}

		if err = w.encodeRecord(path, rc, dst, &done, total); err != nil {
			rc.Close()
			return err
		}
		if err = rc.Close(); err != nil {
			return ReadError{Err: err}
		}
	}
}

// encodeRecord writes one folder record: name length, name, payload.
func (w *Writer) encodeRecord(path string, src io.Reader, dst io.Writer, done *int64, total int64) error {
	if err := validatePath(path); err != nil {
		return err
	}
	name := []byte(path)
	if len(name) > MaxNameLen {
		return NameTooLongError{Path: path}
	}

	if _, err := dst.Write(append([]byte{byte(len(name))}, name...)); err != nil {
		return WriteError{Err: err}
	}
	return w.encodePayload(src, dst, done, total)
}

// encodePayload streams src through the compress-then-encrypt pipeline
// into dst. The cipher message is emitted when the pipeline closes, so
// none of it reaches dst before src is exhausted.
func (w *Writer) encodePayload(src io.Reader, dst io.Writer, done *int64, total int64) error {
	encrypter := edoc.NewStreamEncrypter(writerOnly{dst}, w.cipher)
	compressor := lzw.NewStreamEncoder(encrypter)

	buf := make([]byte, bufferSize)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := compressor.Write(buf[:n]); err != nil {
				return err
			}
			*done += int64(n)
			if w.progress != nil {
				w.progress(*done, total)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return ReadError{Err: readErr}
		}
	}

	// Closing the compressor flushes its final code and closes the
	// encrypter, which emits the framed message.
	return compressor.Close()
}

// writerOnly hides any Close method of the archive output so the
// per-file pipelines cannot close it.
type writerOnly struct {
	io.Writer
}

// validatePath rejects names that are empty, absolute, or contain
// '.'/'..'/empty segments, backslashes, or NUL bytes. Applied on both
// encode and decode; decode is where it guards against traversal.
func validatePath(path string) error {
	if path == "" || strings.HasPrefix(path, "/") || strings.ContainsAny(path, "\\\x00") {
		return PathTraversalError{Path: path}
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return PathTraversalError{Path: path}
		}
	}
	return nil
}

// bufferSize is the chunk size used by the archive pipelines.
const bufferSize = 4096
