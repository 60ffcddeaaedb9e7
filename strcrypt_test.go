package eowire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptString(t *testing.T) {
	require.Equal(t, "CSCU", EncryptString("AB", 1))
	require.Equal(t, "IDDTJFDQIW", EncryptString("Hello", 123))
}

func TestDecryptString(t *testing.T) {
	require.Equal(t, "AB", DecryptString("CSCU", 1))
	require.Equal(t, "Hello", DecryptString("IDDTJFDQIW", 123))
}

func TestDecryptStringOddLength(t *testing.T) {
	// A trailing unpaired byte is dropped, not reported.
	require.Equal(t, "A", DecryptString("CSC", 1))
	require.Equal(t, "", DecryptString("C", 1))
}

func TestStringCipherRoundTrip(t *testing.T) {
	keys := []int{
		LoginDo2EncryptionKey,
		AccountDeleteEncryptionKey,
		AccountDo2EncryptionKey,
		LoginRequestEncryptionKey,
		AccountPrivateEncryptionKey,
	}
	for _, key := range keys {
		for _, s := range []string{"", "a", "hunter2", "p@ss word!"} {
			enc := EncryptString(s, key)
			require.Len(t, enc, 2*len(s))
			require.Equal(t, s, DecryptString(enc, key), "key %d %q", key, s)
		}
	}
}
