package eowire

import "fmt"

// Writer builds a protocol payload by appending fields sequentially.
// Encoded number fields go through the number codec, encoded string fields
// through EncodeString. The zero value is ready to use.
type Writer struct {
	data     []byte
	sanitize bool
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Length returns the number of bytes written so far.
func (w *Writer) Length() int {
	return len(w.data)
}

// Bytes returns a copy of the written payload.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.data))
	copy(out, w.data)
	return out
}

// StringSanitizationMode reports whether string sanitization is enabled.
func (w *Writer) StringSanitizationMode() bool {
	return w.sanitize
}

// SetStringSanitizationMode toggles string sanitization. While enabled,
// 0xFF bytes inside added strings are rewritten to 0x7F so user text cannot
// forge a chunk break.
func (w *Writer) SetStringSanitizationMode(enabled bool) {
	w.sanitize = enabled
}

// AddByte appends one raw byte.
func (w *Writer) AddByte(value byte) {
	w.data = append(w.data, value)
}

// AddBytes appends raw bytes.
func (w *Writer) AddBytes(b []byte) {
	w.data = append(w.data, b...)
}

// AddChar appends a 1-byte encoded number. Values outside [0, CharMax-1]
// return ErrInvalidValue: a truncated encoding would corrupt the stream
// silently.
func (w *Writer) AddChar(value int) error {
	return w.addNumber(value, 1, CharMax)
}

// AddShort appends a 2-byte encoded number in [0, ShortMax-1].
func (w *Writer) AddShort(value int) error {
	return w.addNumber(value, 2, ShortMax)
}

// AddThree appends a 3-byte encoded number in [0, ThreeMax-1].
func (w *Writer) AddThree(value int) error {
	return w.addNumber(value, 3, ThreeMax)
}

// AddInt appends a 4-byte encoded number. Range handling, including the
// remapping of negative values, is EncodeNumber's.
func (w *Writer) AddInt(value int) error {
	b, err := EncodeNumber(value)
	if err != nil {
		return err
	}
	w.data = append(w.data, b[:]...)
	return nil
}

func (w *Writer) addNumber(value, width int, max int64) error {
	if value < 0 || int64(value) >= max {
		return fmt.Errorf("%w: %d does not fit in %d byte(s)", ErrInvalidValue, value, width)
	}
	b, err := EncodeNumber(value)
	if err != nil {
		return err
	}
	w.data = append(w.data, b[:width]...)
	return nil
}

// AddString appends the bytes of s as-is, subject to sanitization.
func (w *Writer) AddString(s string) {
	w.data = w.appendSanitized(w.data, s)
}

// AddEncodedString appends s obfuscated with EncodeString, subject to
// sanitization (applied before encoding).
func (w *Writer) AddEncodedString(s string) {
	buf := w.appendSanitized(nil, s)
	EncodeString(buf)
	w.data = append(w.data, buf...)
}

func (w *Writer) appendSanitized(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if w.sanitize && c == breakByte {
			c = 0x7F
		}
		dst = append(dst, c)
	}
	return dst
}
