package eowire

// ServerVerificationHash hashes the challenge value exchanged during
// connection initialization. The client sends a challenge in its INIT
// packet, hashes it locally, and drops the connection unless the server's
// INIT reply carries the same hash.
//
// The input is not range-checked: oversized challenges produce negative
// hashes, which the protocol's encoded integers cannot carry. That is an
// accepted limitation of the scheme, not something to mask here.
func ServerVerificationHash(challenge int64) int32 {
	c := challenge + 1
	return int32(110905 +
		(c%9+1)*((11092004-c)%((c%11+1)*119))*119 +
		c%2004)
}
