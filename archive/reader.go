package archive

import (
	"errors"
	"io"

	"github.com/edoclabs/edoc/coding/lzw"
	"github.com/edoclabs/edoc/crypto/cipher"
	"github.com/edoclabs/edoc/crypto/edoc"
)

// Reader decodes archives. A Reader owns one cipher instance and is
// not safe for concurrent use; instantiate one per goroutine.
type Reader struct {
	cipher   *cipher.EdocCipher
	progress Progress
}

// NewReader returns a new Reader decrypting with the given cipher.
func NewReader(c *cipher.EdocCipher) *Reader {
	return &Reader{cipher: c}
}

// SetProgress sets the progress callback. Totals are unknown on decode,
// so the callback receives the plaintext bytes recovered so far and 0.
func (r *Reader) SetProgress(fn Progress) {
	r.progress = fn
}

// Decode reads the mode byte and dispatches: a single-file archive is
// decoded into the tree under name, a folder archive into the paths its
// records carry.
func (r *Reader) Decode(src io.Reader, tree TreeWriter, name string) error {
	mode, err := readMode(src)
	if err != nil {
		return err
	}
	switch mode {
	case ModeFile:
		if err = validatePath(name); err != nil {
			return err
		}
		return r.decodeInto(src, tree, name)
	case ModeTree:
		return r.decodeRecords(src, tree)
	default:
		return BadModeError{Mode: mode}
	}
}

// DecodeFile decodes a single-file archive into dst.
func (r *Reader) DecodeFile(src io.Reader, dst io.Writer) error {
	mode, err := readMode(src)
	if err != nil {
		return err
	}
	if mode != ModeFile {
		return BadModeError{Mode: mode}
	}
	var done int64
	return r.decodePayload(src, dst, &done)
}

// DecodeTree decodes a folder archive into the tree.
func (r *Reader) DecodeTree(src io.Reader, tree TreeWriter) error {
	mode, err := readMode(src)
	if err != nil {
		return err
	}
	if mode != ModeTree {
		return BadModeError{Mode: mode}
	}
	return r.decodeRecords(src, tree)
}

// decodeRecords loops over folder records until clean EOF at a record
// boundary. Paths are validated before anything is created.
func (r *Reader) decodeRecords(src io.Reader, tree TreeWriter) error {
	var done int64
	var lenBuf [1]byte
	for {
		if _, err := io.ReadFull(src, lenBuf[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			return ReadError{Err: err}
		}

		name := make([]byte, int(lenBuf[0]))
		if _, err := io.ReadFull(src, name); err != nil {
			return ShortInputError{}
		}
		path := string(name)
		if err := validatePath(path); err != nil {
			return err
		}

		w, err := tree.Create(path)
		if err != nil {
			return WriteError{Err: err}
		}
		if err = r.decodePayload(src, w, &done); err != nil {
			w.Close()
			return err
		}
		if err = w.Close(); err != nil {
			return WriteError{Err: err}
		}
	}
}

// decodeInto decodes one payload into a freshly created tree entry.
func (r *Reader) decodeInto(src io.Reader, tree TreeWriter, name string) error {
	w, err := tree.Create(name)
	if err != nil {
		return WriteError{Err: err}
	}
	var done int64
	if err = r.decodePayload(src, w, &done); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// decodePayload streams one cipher message through the
// decrypt-then-decompress pipeline into dst, consuming exactly the
// message's bytes from src.
func (r *Reader) decodePayload(src io.Reader, dst io.Writer, done *int64) error {
	decrypter := edoc.NewStreamDecrypter(src, r.cipher)
	decompressor := lzw.NewStreamDecoder(decrypter)

	buf := make([]byte, bufferSize)
	for {
		n, readErr := decompressor.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return WriteError{Err: err}
			}
			*done += int64(n)
			if r.progress != nil {
				r.progress(*done, 0)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return coerceShortInput(readErr)
		}
	}
}

// readMode consumes the archive's first byte. An empty input is a
// truncation, not a bad mode.
func readMode(src io.Reader) (byte, error) {
	var mode [1]byte
	if _, err := io.ReadFull(src, mode[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ShortInputError{}
		}
		return 0, ReadError{Err: err}
	}
	return mode[0], nil
}

// coerceShortInput rewrites a pipeline error caused by the archive
// ending mid-message into ShortInputError; other errors pass through.
func coerceShortInput(err error) error {
	var re edoc.ReadError
	if errors.As(err, &re) && errors.Is(re.Err, io.ErrUnexpectedEOF) {
		return ShortInputError{}
	}
	return err
}
