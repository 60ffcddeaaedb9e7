package eowire

import (
	"fmt"
	"math"
)

// EncodeNumber encodes a number into the 4-byte wire representation.
//
// Each encoded byte carries one base-253 digit plus one, so a valid encoding
// only contains bytes in [1,254]. Unused high digit positions keep the
// sentinel byte 254, which DecodeNumber translates back to zero.
//
// Negative input is remapped to abs(value)+math.MaxInt32 before encoding.
// Existing protocol participants rely on this remapping, so it is kept
// exactly as-is rather than rejecting negative values.
//
// Returns ErrInvalidValue when the (remapped) value does not fit in four
// digits, i.e. is >= IntMax.
func EncodeNumber(value int) ([4]byte, error) {
	b := [4]byte{254, 254, 254, 254}

	v := int64(value)
	if value < 0 {
		v = -int64(value) + math.MaxInt32
	}
	if v >= IntMax {
		return b, fmt.Errorf("%w: %d does not fit in 4 bytes", ErrInvalidValue, v)
	}

	orig := v
	if orig >= ThreeMax {
		b[3] = byte(v/ThreeMax) + 1
		v %= ThreeMax
	}
	if orig >= ShortMax {
		b[2] = byte(v/ShortMax) + 1
		v %= ShortMax
	}
	if orig >= CharMax {
		b[1] = byte(v/CharMax) + 1
		v %= CharMax
	}
	b[0] = byte(v) + 1
	return b, nil
}

// EncodeNumber64 encodes a number into the 5-byte wire representation.
//
// The fifth digit position is gated on IntMax, so any value an EO client can
// produce fits and there is no upper-bound rejection. Negative input is not
// remapped here; the low byte simply truncates, matching the original codec.
func EncodeNumber64(value int64) [5]byte {
	b := [5]byte{254, 254, 254, 254, 254}

	v := value
	orig := v
	if orig >= IntMax {
		b[4] = byte(v/IntMax) + 1
		v %= IntMax
	}
	if orig >= ThreeMax {
		b[3] = byte(v/ThreeMax) + 1
		v %= ThreeMax
	}
	if orig >= ShortMax {
		b[2] = byte(v/ShortMax) + 1
		v %= ShortMax
	}
	if orig >= CharMax {
		b[1] = byte(v/CharMax) + 1
		v %= CharMax
	}
	b[0] = byte(v) + 1
	return b
}

// DecodeNumber decodes up to four bytes of the wire representation.
//
// Fewer than four bytes may be provided; missing positions, and bytes equal
// to 0, default to the sentinel 254. Sentinel bytes count as a zero digit.
// Out-of-range digit bytes are not rejected: reconstruction wraps modulo
// 2^32 instead of failing, mirroring the encoder's lack of bounds checks on
// this path.
func DecodeNumber(data []byte) int {
	var b [4]byte
	digits(data, b[:])
	v := uint32(b[3]) * uint32(ThreeMax)
	v += uint32(b[2]) * uint32(ShortMax)
	v += uint32(b[1]) * uint32(CharMax)
	v += uint32(b[0])
	return int(v)
}

// DecodeNumber64 decodes up to five bytes of the wire representation.
// Semantics match DecodeNumber with a fifth IntMax-weighted digit.
func DecodeNumber64(data []byte) int64 {
	var b [5]byte
	digits(data, b[:])
	v := uint64(b[4]) * uint64(IntMax)
	v += uint64(b[3]) * uint64(ThreeMax)
	v += uint64(b[2]) * uint64(ShortMax)
	v += uint64(b[1]) * uint64(CharMax)
	v += uint64(b[0])
	return int64(v)
}

// digits fills out with the base-253 digit at each position: sentinel fill,
// then 254 -> 1, then minus one.
func digits(data []byte, out []byte) {
	for i := range out {
		out[i] = 254
		if i < len(data) && data[i] != 0 {
			out[i] = data[i]
		}
		if out[i] == 254 {
			out[i] = 1
		}
		out[i]--
	}
}
