package eowire

// Fixed keys used by specific login and account packets. These predate the
// negotiated swap multiples and are baked into the client.
const (
	LoginDo2EncryptionKey       = 120
	AccountDeleteEncryptionKey  = 111
	AccountDo2EncryptionKey     = 126
	LoginRequestEncryptionKey   = 132
	AccountPrivateEncryptionKey = 127
)

// EncryptString obfuscates s with the legacy additive string cipher: the
// byte at index i becomes (c + (i+1)*key) mod 256 and is then emitted as two
// base-24 digits offset from 'A', doubling the length.
func EncryptString(s string, key int) string {
	buf := []byte(s)
	out := make([]byte, 0, len(buf)*2)
	for i, c := range buf {
		v := (int(c) + (i+1)*key) % 256
		out = append(out, byte('A'+v/24), byte('A'+v%24))
	}
	return string(out)
}

// DecryptString reverses EncryptString, consuming two base-24 digits per
// output byte. A trailing odd byte is silently dropped, and out-of-range
// digits wrap rather than fail; both are long-standing client behavior.
func DecryptString(s string, key int) string {
	buf := []byte(s)
	out := make([]byte, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		v := (int(buf[i])-'A')*24 + int(buf[i+1]) - 'A'
		v = (v - (i/2+1)*key) % 256
		if v < 0 {
			v += 256
		}
		out = append(out, byte(v))
	}
	return string(out)
}
