package coding

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/edoclabs/edoc/coding/lzw"
	"github.com/edoclabs/edoc/utils"
)

// Decoder defines a Decoder struct for decompression chains.
type Decoder struct {
	src    []byte
	dst    []byte
	reader io.Reader
	Error  error
}

// NewDecoder returns a new Decoder instance.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// FromString decodes from string.
func (d *Decoder) FromString(s string) *Decoder {
	d.src = utils.String2Bytes(s)
	return d
}

// FromBytes decodes from byte slice.
func (d *Decoder) FromBytes(b []byte) *Decoder {
	d.src = b
	return d
}

// FromFile decodes from file.
func (d *Decoder) FromFile(f fs.File) *Decoder {
	d.reader = f
	return d
}

// ByLzw decompresses by the edoc dictionary codec.
func (d *Decoder) ByLzw() *Decoder {
	if d.Error != nil {
		return d
	}

	// If reader is set, use streaming processing
	if d.reader != nil {
		d.dst, d.Error = d.stream(func(r io.Reader) io.Reader {
			return lzw.NewStreamDecoder(r)
		})
		return d
	}

	if len(d.src) > 0 {
		d.dst, d.Error = lzw.NewStdDecoder().Decode(d.src)
	}
	return d
}

// ToString outputs as string.
func (d *Decoder) ToString() string {
	return utils.Bytes2String(d.dst)
}

// ToBytes outputs as byte slice.
func (d *Decoder) ToBytes() []byte {
	if len(d.dst) == 0 {
		return []byte{}
	}
	return d.dst
}

// stream drains a streaming decoder built over the configured reader.
func (d *Decoder) stream(fn func(io.Reader) io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	decoder := fn(d.reader)

	if _, err := io.CopyBuffer(&buf, decoder, make([]byte, BufferSize)); err != nil && err != io.EOF {
		return []byte{}, err
	}
	if buf.Len() == 0 {
		return []byte{}, nil
	}
	return buf.Bytes(), nil
}
