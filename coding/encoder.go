package coding

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/edoclabs/edoc/coding/lzw"
	"github.com/edoclabs/edoc/utils"
)

// Encoder defines an Encoder struct for compression chains.
type Encoder struct {
	src    []byte
	dst    []byte
	reader io.Reader
	Error  error
}

// NewEncoder returns a new Encoder instance.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// FromString encodes from string.
func (e *Encoder) FromString(s string) *Encoder {
	e.src = utils.String2Bytes(s)
	return e
}

// FromBytes encodes from byte slice.
func (e *Encoder) FromBytes(b []byte) *Encoder {
	e.src = b
	return e
}

// FromFile encodes from file.
func (e *Encoder) FromFile(f fs.File) *Encoder {
	e.reader = f
	return e
}

// ByLzw compresses by the edoc dictionary codec.
func (e *Encoder) ByLzw() *Encoder {
	if e.Error != nil {
		return e
	}

	// If reader is set, use streaming processing
	if e.reader != nil {
		e.dst, e.Error = e.stream(func(w io.Writer) io.WriteCloser {
			return lzw.NewStreamEncoder(w)
		})
		return e
	}

	if len(e.src) > 0 {
		e.dst = lzw.NewStdEncoder().Encode(e.src)
	}
	return e
}

// ToString outputs as string.
func (e *Encoder) ToString() string {
	return utils.Bytes2String(e.dst)
}

// ToBytes outputs as byte slice.
func (e *Encoder) ToBytes() []byte {
	if len(e.dst) == 0 {
		return []byte{}
	}
	return e.dst
}

// stream drains the configured reader through a streaming encoder.
func (e *Encoder) stream(fn func(io.Writer) io.WriteCloser) ([]byte, error) {
	var result bytes.Buffer
	encoder := fn(&result)

	buffer := make([]byte, BufferSize)
	for {
		n, readErr := e.reader.Read(buffer)
		if n > 0 {
			if _, writeErr := encoder.Write(buffer[:n]); writeErr != nil {
				return nil, writeErr
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return nil, readErr
		}
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return result.Bytes(), nil
}
