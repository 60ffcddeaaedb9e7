package eowire

import (
	"errors"
	"fmt"
)

// Reader reads protocol fields sequentially from a caller-owned buffer.
//
// Encoded accessors (GetChar through GetInt) run their bytes through the
// number codec; encoded string accessors run theirs through DecodeString.
// In chunked reading mode, reads are confined to the current chunk, which
// ends at the next 0xFF break byte; NextChunk moves past the break.
//
// A Reader never copies the buffer it is given and must not be shared
// between goroutines.
type Reader struct {
	data       []byte
	pos        int
	chunked    bool
	chunkStart int
	nextBreak  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, nextBreak: -1}
}

// Position returns the current read cursor.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of bytes left to read: to the end of the
// buffer, or to the next break byte in chunked reading mode.
func (r *Reader) Remaining() int {
	if r.chunked {
		n := r.breakIndex() - r.pos
		if n < 0 {
			return 0
		}
		return n
	}
	return len(r.data) - r.pos
}

// ChunkedReadingMode reports whether chunked reading is enabled.
func (r *Reader) ChunkedReadingMode() bool {
	return r.chunked
}

// SetChunkedReadingMode toggles chunked reading. Enabling it starts the
// current chunk at the cursor.
func (r *Reader) SetChunkedReadingMode(enabled bool) {
	r.chunked = enabled
	if enabled {
		r.chunkStart = r.pos
		r.nextBreak = -1
	}
}

// NextChunk advances the cursor past the current chunk's break byte. It is
// an error to call it outside chunked reading mode.
func (r *Reader) NextChunk() error {
	if !r.chunked {
		return errors.New(pkg + ": NextChunk outside chunked reading mode")
	}
	r.pos = r.breakIndex()
	if r.pos < len(r.data) {
		r.pos++ // skip the break byte itself
	}
	r.chunkStart = r.pos
	r.nextBreak = -1
	return nil
}

// breakIndex returns the index of the current chunk's break byte, or the
// buffer length when the chunk runs to the end. The scan result is cached
// until the chunk changes.
func (r *Reader) breakIndex() int {
	if r.nextBreak < 0 {
		r.nextBreak = len(r.data)
		for i := r.chunkStart; i < len(r.data); i++ {
			if r.data[i] == breakByte {
				r.nextBreak = i
				break
			}
		}
	}
	return r.nextBreak
}

// GetByte reads one raw byte.
func (r *Reader) GetByte() (int, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return int(b[0]), nil
}

// GetBytes reads length raw bytes into a fresh slice.
func (r *Reader) GetBytes(length int) ([]byte, error) {
	b, err := r.read(length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, b)
	return out, nil
}

// GetChar reads a 1-byte encoded number.
func (r *Reader) GetChar() (int, error) {
	return r.getNumber(1)
}

// GetShort reads a 2-byte encoded number.
func (r *Reader) GetShort() (int, error) {
	return r.getNumber(2)
}

// GetThree reads a 3-byte encoded number.
func (r *Reader) GetThree() (int, error) {
	return r.getNumber(3)
}

// GetInt reads a 4-byte encoded number.
func (r *Reader) GetInt() (int, error) {
	return r.getNumber(4)
}

func (r *Reader) getNumber(width int) (int, error) {
	b, err := r.read(width)
	if err != nil {
		return 0, err
	}
	return DecodeNumber(b), nil
}

// GetString reads the rest of the buffer (or chunk) as a string.
func (r *Reader) GetString() string {
	b, _ := r.read(r.Remaining())
	return string(b)
}

// GetFixedString reads exactly length bytes as a string.
func (r *Reader) GetFixedString(length int) (string, error) {
	b, err := r.read(length)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetEncodedString reads the rest of the buffer (or chunk) and decodes it
// with DecodeString.
func (r *Reader) GetEncodedString() string {
	b, _ := r.read(r.Remaining())
	out := make([]byte, len(b))
	copy(out, b)
	DecodeString(out)
	return string(out)
}

// GetFixedEncodedString reads exactly length bytes and decodes them with
// DecodeString.
func (r *Reader) GetFixedEncodedString(length int) (string, error) {
	b, err := r.read(length)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(b))
	copy(out, b)
	DecodeString(out)
	return string(out), nil
}

// read returns the next length bytes of the buffer without copying and
// advances the cursor.
func (r *Reader) read(length int) ([]byte, error) {
	if rem := r.Remaining(); length < 0 || length > rem {
		return nil, fmt.Errorf("%w: want %d bytes, %d remaining", ErrBufferUnderrun, length, rem)
	}
	b := r.data[r.pos : r.pos+length]
	r.pos += length
	return b, nil
}
