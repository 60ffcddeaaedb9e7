package eowire

// EncodeString obfuscates buf in place, subtracting 2 from bytes at even
// indexes and 1 from bytes at odd indexes. Used for fixed text fields such
// as map names and sign text in map files.
func EncodeString(buf []byte) {
	for i := range buf {
		if i%2 == 0 {
			buf[i] -= 2
		} else {
			buf[i]--
		}
	}
}

// DecodeString reverses EncodeString in place.
func DecodeString(buf []byte) {
	for i := range buf {
		if i%2 == 0 {
			buf[i] += 2
		} else {
			buf[i]++
		}
	}
}
