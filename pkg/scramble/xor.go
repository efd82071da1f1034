package scramble

// ApplyMask XORs every byte of buf with mask, in place.
// The operation is its own inverse: applying the same mask twice restores the
// original buffer. A zero mask is a no-op.
func ApplyMask(buf []byte, mask byte) {
	for i := range buf {
		buf[i] ^= mask
	}
}
