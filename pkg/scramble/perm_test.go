package scramble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBuffer(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i*7 + 3)
	}
	return buf
}

func TestGeneratePermutation_Deterministic(t *testing.T) {
	for _, seed := range []uint64{0, 1, 0x9b8769a4a742959a, ^uint64(0)} {
		for _, length := range []int{0, 1, 2, 16, 1000} {
			assert.Equal(t, GeneratePermutation(seed, length), GeneratePermutation(seed, length))
		}
	}
}

func TestGeneratePermutation_Bijective(t *testing.T) {
	const length = 1000
	p := GeneratePermutation(42, length)
	assert.Len(t, p, length)

	seen := make([]bool, length)
	for _, j := range p {
		assert.GreaterOrEqual(t, j, 0)
		assert.Less(t, j, length)
		assert.False(t, seen[j], "index %d appears more than once", j)
		seen[j] = true
	}
}

func TestGeneratePermutation_SeedsDiffer(t *testing.T) {
	// Not guaranteed for tiny lengths, but 256 elements make a collision
	// between two fixed seeds effectively impossible.
	assert.NotEqual(t, GeneratePermutation(1, 256), GeneratePermutation(2, 256))
}

func TestPermutation_Invert(t *testing.T) {
	p := GeneratePermutation(7, 128)
	inv := p.Invert()
	for i := range p {
		assert.Equal(t, i, inv[p[i]])
	}
	assert.Equal(t, p, inv.Invert())
}

func TestPermutation_RoundTrip(t *testing.T) {
	buf := testBuffer(97)
	p := GeneratePermutation(0x1234, len(buf))

	shuffled, err := p.Apply(buf)
	assert.NoError(t, err)
	assert.Len(t, shuffled, len(buf))

	restored, err := p.Invert().Apply(shuffled)
	assert.NoError(t, err)
	assert.Equal(t, buf, restored)
}

func TestPermutation_ApplyScatterConvention(t *testing.T) {
	// out[p[i]] = in[i], fixed by hand.
	p := Permutation{2, 0, 3, 1}
	out, err := p.Apply([]byte{10, 20, 30, 40})
	assert.NoError(t, err)
	assert.Equal(t, []byte{20, 40, 10, 30}, out)

	restored, err := p.Invert().Apply(out)
	assert.NoError(t, err)
	assert.Equal(t, []byte{10, 20, 30, 40}, restored)
}

func TestPermutation_Apply_LengthMismatch(t *testing.T) {
	p := GeneratePermutation(9, 8)
	_, err := p.Apply(testBuffer(9))
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = p.Apply(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPermutation_TrivialLengths(t *testing.T) {
	empty, err := GeneratePermutation(3, 0).Apply([]byte{})
	assert.NoError(t, err)
	assert.Empty(t, empty)

	one, err := GeneratePermutation(3, 1).Apply([]byte{0xaa})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xaa}, one)
}
