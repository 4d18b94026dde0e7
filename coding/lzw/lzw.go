// Package lzw implements the edoc dictionary codec with streaming
// support. The codec is LZW-shaped with two departures from the
// textbook scheme: while the dictionary is still growing, every miss
// emits a 16-bit big-endian code followed by the literal byte that
// extended the match (and the match is reset to empty); once the
// dictionary reaches its maximum size it freezes, misses emit the bare
// 16-bit code, and the last byte starts the next match. Both sides flip
// record width at the same entry count, so the stream needs no flag.
//
// The encoder's Close emits the open match's bare 16-bit code; the
// decoder accepts such a record at end of stream even while the
// dictionary is growing.
package lzw

import (
	"io"
)

const (
	// maxDictSize is the dictionary entry count at which growth stops.
	maxDictSize = 256 * 256

	// noCode marks the empty match / a root dictionary entry.
	noCode = -1
)

// dict is the encode-side dictionary: codes for every seen byte
// sequence, stored incrementally as (parent code, extending byte) →
// child code. The 256 single-byte sequences are implicit roots.
type dict struct {
	children map[uint32]uint16
	size     int
}

func newDict() *dict {
	return &dict{
		children: make(map[uint32]uint16),
		size:     256,
	}
}

func dictKey(parent int, b byte) uint32 {
	return uint32(parent)<<8 | uint32(b)
}

// entry is one decode-side dictionary slot. Codes below 256 are roots
// holding their own byte; the rest extend a parent by one byte.
type entry struct {
	parent int32
	last   byte
}

// StdEncoder represents an lzw encoder for one-shot compression
// operations.
type StdEncoder struct {
	Error error // Error field for storing encoding errors
}

// NewStdEncoder creates a new lzw encoder.
func NewStdEncoder() *StdEncoder {
	return &StdEncoder{}
}

// Encode compresses the given byte slice, including the final record
// for the open match. Each call is independent: the dictionary starts
// fresh every time.
func (e *StdEncoder) Encode(src []byte) (dst []byte) {
	if len(src) == 0 {
		return
	}
	c := newCore()
	dst = c.compress(src, nil)
	return c.flush(dst)
}

// StdDecoder represents an lzw decoder for one-shot decompression
// operations.
type StdDecoder struct {
	Error error // Error field for storing decoding errors
}

// NewStdDecoder creates a new lzw decoder.
func NewStdDecoder() *StdDecoder {
	return &StdDecoder{}
}

// Decode decompresses the given byte slice. The input must be a
// complete stream as produced by Encode.
func (d *StdDecoder) Decode(src []byte) (dst []byte, err error) {
	if d.Error != nil {
		return nil, d.Error
	}
	if len(src) == 0 {
		return
	}
	c := newDecore()
	if dst, err = c.decompress(src, nil); err != nil {
		d.Error = err
		return nil, err
	}
	if dst, err = c.finish(dst); err != nil {
		d.Error = err
		return nil, err
	}
	return dst, nil
}

// core holds the shared encode state used by both the one-shot and the
// streaming encoders. curr is the code of the currently open match, or
// noCode when the match is empty.
type core struct {
	dict *dict
	curr int
}

func newCore() *core {
	return &core{dict: newDict(), curr: noCode}
}

// compress consumes src, appending emitted records to dst.
func (c *core) compress(src []byte, dst []byte) []byte {
	for _, b := range src {
		if c.curr == noCode {
			c.curr = int(b)
			continue
		}
		key := dictKey(c.curr, b)
		if child, ok := c.dict.children[key]; ok {
			c.curr = int(child)
			continue
		}
		if c.dict.size == maxDictSize {
			dst = append(dst, byte(c.curr>>8), byte(c.curr))
			c.curr = int(b)
			continue
		}
		c.dict.children[key] = uint16(c.dict.size)
		c.dict.size++
		dst = append(dst, byte(c.curr>>8), byte(c.curr), b)
		c.curr = noCode
	}
	return dst
}

// flush appends the final record for the open match, if any.
func (c *core) flush(dst []byte) []byte {
	if c.curr != noCode {
		dst = append(dst, byte(c.curr>>8), byte(c.curr))
		c.curr = noCode
	}
	return dst
}

// decore holds the shared decode state. Entries are an arena indexed by
// code; byte sequences are rebuilt by walking parent links into a
// scratch buffer and reversing.
type decore struct {
	entries []entry
	pending []byte
	scratch []byte
}

func newDecore() *decore {
	entries := make([]entry, 256, maxDictSize)
	for i := 0; i < 256; i++ {
		entries[i] = entry{parent: noCode, last: byte(i)}
	}
	return &decore{entries: entries}
}

// expand appends the byte sequence of code to dst.
func (c *decore) expand(code int, dst []byte) []byte {
	c.scratch = c.scratch[:0]
	for code != noCode {
		e := c.entries[code]
		c.scratch = append(c.scratch, e.last)
		code = int(e.parent)
	}
	for i := len(c.scratch) - 1; i >= 0; i-- {
		dst = append(dst, c.scratch[i])
	}
	return dst
}

// decompress consumes whole records from the pending buffer plus src,
// appending recovered bytes to dst. A trailing partial record is kept
// for the next call.
func (c *decore) decompress(src []byte, dst []byte) ([]byte, error) {
	data := src
	if len(c.pending) > 0 {
		data = append(c.pending, src...)
		c.pending = nil
	}
	for {
		required := 3
		if len(c.entries) == maxDictSize {
			required = 2
		}
		if len(data) < required {
			c.pending = append([]byte(nil), data...)
			return dst, nil
		}
		code := int(data[0])<<8 | int(data[1])
		if code >= len(c.entries) {
			return dst, CorruptInputError(code)
		}
		if required == 2 {
			dst = c.expand(code, dst)
			data = data[2:]
			continue
		}
		lit := data[2]
		dst = c.expand(code, dst)
		dst = append(dst, lit)
		c.entries = append(c.entries, entry{parent: int32(code), last: lit})
		data = data[3:]
	}
}

// finish resolves the stream tail: a 2-byte remainder is the encoder's
// final bare code, anything else still pending is corrupt input.
func (c *decore) finish(dst []byte) ([]byte, error) {
	switch len(c.pending) {
	case 0:
		return dst, nil
	case 2:
		code := int(c.pending[0])<<8 | int(c.pending[1])
		c.pending = nil
		if code >= len(c.entries) {
			return dst, CorruptInputError(code)
		}
		return c.expand(code, dst), nil
	default:
		return dst, CorruptInputError(len(c.pending))
	}
}

// StreamEncoder represents a streaming lzw encoder that implements
// io.WriteCloser, emitting records to the underlying writer as matches
// resolve.
type StreamEncoder struct {
	writer io.Writer // Underlying writer for compressed output
	core   *core     // Shared encode state
	Error  error     // Error field for storing encoding errors
}

// NewStreamEncoder creates a new streaming lzw encoder that writes
// compressed data to the provided io.Writer.
func NewStreamEncoder(w io.Writer) io.WriteCloser {
	return &StreamEncoder{
		writer: w,
		core:   newCore(),
	}
}

// Write implements io.Writer, compressing p and writing whole records
// to the underlying writer.
func (e *StreamEncoder) Write(p []byte) (n int, err error) {
	if e.Error != nil {
		return 0, e.Error
	}
	if len(p) == 0 {
		return 0, nil
	}

	dst := e.core.compress(p, nil)
	if len(dst) > 0 {
		if _, err = e.writer.Write(dst); err != nil {
			e.Error = WriteError{Err: err}
			return 0, e.Error
		}
	}
	return len(p), nil
}

// Close emits the final record for the open match and closes the
// underlying writer if it implements io.Closer.
func (e *StreamEncoder) Close() error {
	if e.Error != nil {
		return e.Error
	}

	if dst := e.core.flush(nil); len(dst) > 0 {
		if _, err := e.writer.Write(dst); err != nil {
			e.Error = WriteError{Err: err}
			return e.Error
		}
	}

	if closer, ok := e.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// StreamDecoder represents a streaming lzw decoder that implements
// io.Reader, recovering bytes record by record from the underlying
// reader.
type StreamDecoder struct {
	reader io.Reader // Underlying reader for compressed input
	core   *decore   // Shared decode state
	out    []byte    // Recovered bytes awaiting delivery
	eof    bool      // Whether the underlying reader is exhausted
	buf    []byte    // Read buffer
	Error  error     // Error field for storing decoding errors
}

// NewStreamDecoder creates a new streaming lzw decoder that reads
// compressed data from the provided io.Reader.
func NewStreamDecoder(r io.Reader) io.Reader {
	return &StreamDecoder{
		reader: r,
		core:   newDecore(),
		buf:    make([]byte, 4096),
	}
}

// Read implements io.Reader, producing recovered bytes until the
// underlying reader is exhausted and the stream tail is resolved.
func (d *StreamDecoder) Read(p []byte) (n int, err error) {
	if d.Error != nil {
		return 0, d.Error
	}

	for len(d.out) == 0 && !d.eof {
		rn, rerr := d.reader.Read(d.buf)
		if rn > 0 {
			if d.out, err = d.core.decompress(d.buf[:rn], d.out); err != nil {
				d.Error = err
				return 0, d.Error
			}
		}
		if rerr != nil {
			if rerr != io.EOF {
				d.Error = ReadError{Err: rerr}
				return 0, d.Error
			}
			if d.out, err = d.core.finish(d.out); err != nil {
				d.Error = err
				return 0, d.Error
			}
			d.eof = true
		}
	}

	if len(d.out) == 0 && d.eof {
		return 0, io.EOF
	}
	n = copy(p, d.out)
	d.out = d.out[n:]
	return n, nil
}
