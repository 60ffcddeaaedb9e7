package eowire

// validForObfuscation reports whether buf participates in the packet cipher.
// Packets of two bytes or less, and packets starting with the 0xFF 0xFF
// control marker, travel unobfuscated and must be preserved verbatim.
func validForObfuscation(buf []byte) bool {
	return len(buf) > 2 && !(buf[0] == 0xFF && buf[1] == 0xFF)
}

// EncryptPacket obfuscates a packet payload in place, in three stages:
//
//  1. swap-by-multiple ("dickwinding"): runs of adjacent bytes divisible by
//     key are reversed;
//  2. flip: every byte has its most significant bit flipped;
//  3. interleave: bytes are woven front-to-back, abcde -> aebdc and
//     abcdef -> afbecd.
//
// key is the swap multiple negotiated on connect, between 6 and 12.
// Buffers rejected by validForObfuscation are left unchanged; the function
// never fails.
func EncryptPacket(buf []byte, key int) {
	if !validForObfuscation(buf) {
		return
	}
	swapMultiples(buf, key)
	flip(buf)
	interleave(buf)
}

// DecryptPacket reverses EncryptPacket in place: deinterleave, flip and
// swap-by-multiple, each stage being its own inverse. magic is the second
// value exchanged during the same handshake as key; it is accepted for call
// parity with existing callers and not consumed by this cipher revision.
func DecryptPacket(buf []byte, key, magic int) {
	if !validForObfuscation(buf) {
		return
	}
	deinterleave(buf)
	flip(buf)
	swapMultiples(buf, key)
}

// swapMultiples reverses every run of two or more consecutive bytes that are
// each divisible by multiple. Reversal is self-inverse, so the same pass
// serves both directions of the cipher.
func swapMultiples(buf []byte, multiple int) {
	if multiple <= 0 {
		return
	}
	run := 0
	for i := 0; i <= len(buf); i++ {
		if i != len(buf) && int(buf[i])%multiple == 0 {
			run++
			continue
		}
		if run > 1 {
			for j := 0; j < run/2; j++ {
				buf[i-run+j], buf[i-j-1] = buf[i-j-1], buf[i-run+j]
			}
		}
		run = 0
	}
}

func flip(buf []byte) {
	for i := range buf {
		buf[i] ^= 0x80
	}
}

// interleave weaves the buffer: even output positions take bytes from the
// front half in order, odd output positions take the back half walking
// backwards from the end.
func interleave(buf []byte) {
	tmp := make([]byte, len(buf))
	ii := 0
	i := 0
	for ; i < len(buf); i += 2 {
		tmp[i] = buf[ii]
		ii++
	}
	i--
	if len(buf)%2 != 0 {
		i -= 2
	}
	for ; i >= 0; i -= 2 {
		tmp[i] = buf[ii]
		ii++
	}
	copy(buf, tmp)
}

func deinterleave(buf []byte) {
	tmp := make([]byte, len(buf))
	ii := 0
	i := 0
	for ; i < len(buf); i += 2 {
		tmp[ii] = buf[i]
		ii++
	}
	i--
	if len(buf)%2 != 0 {
		i -= 2
	}
	for ; i >= 0; i -= 2 {
		tmp[ii] = buf[i]
		ii++
	}
	copy(buf, tmp)
}
