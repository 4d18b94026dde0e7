package lzw

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func roundTrip(t *testing.T, src []byte) []byte {
	t.Helper()
	compressed := NewStdEncoder().Encode(src)
	recovered, err := NewStdDecoder().Decode(compressed)
	assert.Nil(t, err)
	return recovered
}

func TestStdRoundTrip(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, NewStdEncoder().Encode(nil))
		recovered, err := NewStdDecoder().Decode(nil)
		assert.Nil(t, err)
		assert.Empty(t, recovered)
	})

	t.Run("single_byte", func(t *testing.T) {
		assert.Equal(t, []byte("x"), roundTrip(t, []byte("x")))
	})

	t.Run("text", func(t *testing.T) {
		src := []byte("hello world, hello world, hello world")
		assert.Equal(t, src, roundTrip(t, src))
	})

	t.Run("alternating_bytes_grow_dictionary", func(t *testing.T) {
		src := bytes.Repeat([]byte{0x00, 0xff}, 150)

		c := newCore()
		dst := c.flush(c.compress(src, nil))
		assert.Greater(t, c.dict.size, 256)

		recovered, err := NewStdDecoder().Decode(dst)
		assert.Nil(t, err)
		assert.Equal(t, src, recovered)
	})

	t.Run("all_byte_values", func(t *testing.T) {
		src := make([]byte, 256)
		for i := range src {
			src[i] = byte(i)
		}
		assert.Equal(t, src, roundTrip(t, src))
	})

	t.Run("repetitive_input_shrinks", func(t *testing.T) {
		src := bytes.Repeat([]byte("abcabcabc"), 2000)
		compressed := NewStdEncoder().Encode(src)
		assert.Less(t, len(compressed), len(src))
		recovered, err := NewStdDecoder().Decode(compressed)
		assert.Nil(t, err)
		assert.Equal(t, src, recovered)
	})

	t.Run("random_data_spans_full_dictionary", func(t *testing.T) {
		// Random input misses the dictionary nearly every step, so half
		// a megabyte crosses the 65536-entry freeze boundary and keeps
		// compressing in the frozen regime.
		src := make([]byte, 512*1024)
		rand.New(rand.NewSource(7)).Read(src)

		c := newCore()
		dst := c.flush(c.compress(src, nil))
		assert.Equal(t, maxDictSize, c.dict.size)

		recovered, err := NewStdDecoder().Decode(dst)
		assert.Nil(t, err)
		assert.Equal(t, src, recovered)
	})
}

func TestStreamEncoder(t *testing.T) {
	t.Run("chunked_writes_match_one_shot", func(t *testing.T) {
		src := bytes.Repeat([]byte("streaming input "), 500)

		var streamed bytes.Buffer
		encoder := NewStreamEncoder(&streamed)
		for off := 0; off < len(src); off += 37 {
			end := off + 37
			if end > len(src) {
				end = len(src)
			}
			_, err := encoder.Write(src[off:end])
			assert.Nil(t, err)
		}
		assert.Nil(t, encoder.Close())

		assert.Equal(t, NewStdEncoder().Encode(src), streamed.Bytes())
	})

	t.Run("write_error_sticks", func(t *testing.T) {
		encoder := NewStreamEncoder(errWriter{})
		// Two distinct bytes force an emitted record.
		_, err := encoder.Write([]byte("ab"))
		assert.IsType(t, WriteError{}, err)
		_, err = encoder.Write([]byte("cd"))
		assert.IsType(t, WriteError{}, err)
	})
}

func TestStreamDecoder(t *testing.T) {
	t.Run("round_trip_small_reads", func(t *testing.T) {
		src := bytes.Repeat([]byte("decode me "), 300)
		compressed := NewStdEncoder().Encode(src)

		decoder := NewStreamDecoder(iotest(bytes.NewReader(compressed)))
		recovered, err := io.ReadAll(decoder)
		assert.Nil(t, err)
		assert.Equal(t, src, recovered)
	})

	t.Run("corrupt_code", func(t *testing.T) {
		// Code 0x0100 does not exist in a fresh dictionary.
		_, err := NewStdDecoder().Decode([]byte{0x01, 0x00, 0x41})
		assert.IsType(t, CorruptInputError(0), err)
	})

	t.Run("dangling_byte", func(t *testing.T) {
		_, err := NewStdDecoder().Decode([]byte{0x00})
		assert.IsType(t, CorruptInputError(0), err)
	})

	t.Run("final_bare_code", func(t *testing.T) {
		// "aa" compresses to a single record for 'a' extended by 'a',
		// which resets the match; the third 'a' of "aaa" opens a new
		// one-byte match, so the encoder's Close emits its bare code as a
		// 2-byte tail.
		compressed := NewStdEncoder().Encode([]byte("aaa"))
		assert.Len(t, compressed, 5)
		recovered, err := NewStdDecoder().Decode(compressed)
		assert.Nil(t, err)
		assert.Equal(t, []byte("aaa"), recovered)
	})
}

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

// iotest wraps a reader to return at most 3 bytes per call, exercising
// partial-record buffering.
func iotest(r io.Reader) io.Reader {
	return &smallReader{r: r}
}

type smallReader struct {
	r io.Reader
}

func (s *smallReader) Read(p []byte) (int, error) {
	if len(p) > 3 {
		p = p[:3]
	}
	return s.r.Read(p)
}
