// Package eowire implements the wire-level encoding primitives of the EO
// network protocol: the base-253 variable integer codec, the in-place string
// obfuscation, the three-stage packet cipher, the legacy base-24 string
// cipher and the server verification hash, plus a sequential Reader/Writer
// pair that applies them field by field.
//
// All functions are pure or operate in place on caller-owned buffers; the
// package holds no state and is safe for concurrent use on independent
// buffers. None of the ciphers here are cryptography - the key space is tiny
// and the transforms exist only for wire compatibility with existing clients.
package eowire

import "errors"

const pkg = "eowire"

// Maximum values representable by each encoded integer width. The radix is
// 253, not 256, so that byte 0xFF never appears inside an encoded number and
// stays free as the chunk break byte.
const (
	CharMax  = 253
	ShortMax = CharMax * CharMax
	ThreeMax = CharMax * CharMax * CharMax
	IntMax   = int64(CharMax) * CharMax * CharMax * CharMax
)

// breakByte terminates a chunk in chunked reading mode.
const breakByte = 0xFF

// Errors returned by encoding operations.
var (
	// ErrInvalidValue is returned when a number does not fit the requested
	// encoded width.
	ErrInvalidValue = errors.New(pkg + ": value out of encodable range")
	// ErrBufferUnderrun is returned when a read requests more bytes than
	// remain in the buffer (or in the current chunk).
	ErrBufferUnderrun = errors.New(pkg + ": buffer underrun")
)
