package scramble

import (
	"crypto/sha256"
	"encoding/binary"
)

// KeyMaterial is everything derived from a password for one scramble operation.
// It is a pure function of the password, with no salt or randomness involved,
// so the same password always yields the same material.
type KeyMaterial struct {
	// MaskByte is XORed against every buffer byte in ModeXor and ModeBoth.
	MaskByte byte
	// PermSeed seeds the shuffle permutation in ModeShuffle and ModeBoth.
	PermSeed uint64
}

// DeriveKey reduces a password to KeyMaterial using SHA-256.
// The mask byte is digest byte 0, and the seed is the big-endian uint64 of
// digest bytes 0 through 7. The hash is pinned deliberately: buffers scrambled
// by one release must reverse correctly under any other.
//
// An empty password is accepted and derives the SHA-256-of-empty material.
// It makes a poor key, but rejecting it is the caller's policy decision.
func DeriveKey(password string) KeyMaterial {
	sum := sha256.Sum256([]byte(password))
	return KeyMaterial{
		MaskByte: sum[0],
		PermSeed: binary.BigEndian.Uint64(sum[:8]),
	}
}
