package eowire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderNumbers(t *testing.T) {
	r := NewReader([]byte{
		5,            // raw byte
		43,           // char 42
		28, 3,        // short 533
		100, 225, 14, // three 888888
		15, 189, 44, 2, // int 18994242
	})

	b, err := r.GetByte()
	require.NoError(t, err)
	require.Equal(t, 5, b)

	v, err := r.GetChar()
	require.NoError(t, err)
	require.Equal(t, 42, v)

	v, err = r.GetShort()
	require.NoError(t, err)
	require.Equal(t, 533, v)

	v, err = r.GetThree()
	require.NoError(t, err)
	require.Equal(t, 888888, v)

	v, err = r.GetInt()
	require.NoError(t, err)
	require.Equal(t, 18994242, v)

	require.Equal(t, 11, r.Position())
	require.Equal(t, 0, r.Remaining())
}

func TestReaderUnderrun(t *testing.T) {
	r := NewReader([]byte{43, 254})

	_, err := r.GetInt()
	require.True(t, errors.Is(err, ErrBufferUnderrun))
	// A failed read does not move the cursor.
	require.Equal(t, 0, r.Position())

	v, err := r.GetShort()
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = r.GetByte()
	require.True(t, errors.Is(err, ErrBufferUnderrun))
}

func TestReaderStrings(t *testing.T) {
	r := NewReader([]byte("Hello, world!"))
	s, err := r.GetFixedString(5)
	require.NoError(t, err)
	require.Equal(t, "Hello", s)
	require.Equal(t, ", world!", r.GetString())
	require.Equal(t, 0, r.Remaining())
}

func TestReaderEncodedStrings(t *testing.T) {
	data := append([]byte{}, "Void"...)
	EncodeString(data)
	data = append(data, 43) // trailing char

	r := NewReader(data)
	s, err := r.GetFixedEncodedString(4)
	require.NoError(t, err)
	require.Equal(t, "Void", s)
	// The reader decodes a copy, the buffer keeps its wire form.
	require.Equal(t, byte(0x69), data[0])

	v, err := r.GetChar()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestReaderChunked(t *testing.T) {
	r := NewReader([]byte{'a', 'b', 'c', 0xFF, 43, 0xFF, 'x'})
	r.SetChunkedReadingMode(true)
	require.Equal(t, 3, r.Remaining())
	require.Equal(t, "abc", r.GetString())

	// The chunk is exhausted; the break byte is not readable.
	_, err := r.GetByte()
	require.True(t, errors.Is(err, ErrBufferUnderrun))

	require.NoError(t, r.NextChunk())
	v, err := r.GetChar()
	require.NoError(t, err)
	require.Equal(t, 42, v)

	require.NoError(t, r.NextChunk())
	require.Equal(t, "x", r.GetString())

	// Past the last break the chunk runs to the end of the buffer.
	require.NoError(t, r.NextChunk())
	require.Equal(t, 0, r.Remaining())
}

func TestReaderNextChunkUnchunked(t *testing.T) {
	r := NewReader([]byte{1, 0xFF, 2})
	require.Error(t, r.NextChunk())

	// Outside chunked mode the break byte is ordinary data.
	b, err := r.GetBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0xFF, 2}, b)
}
