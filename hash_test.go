package eowire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServerVerificationHash(t *testing.T) {
	require.Equal(t, int32(300733), ServerVerificationHash(123456))
	require.Equal(t, int32(114000), ServerVerificationHash(0))

	// challenge+1 == 11092004 zeroes the middle term.
	require.Equal(t, int32(112773), ServerVerificationHash(11092003))
}
