package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	v := Of[uint32]()
	require.NotNil(t, v)
	assert.Empty(t, v)
}

func TestSingle(t *testing.T) {
	v := Of[uint32](42)
	require.Len(t, v, 1)
	assert.Equal(t, uint32(42), v[0])
}

func TestDouble(t *testing.T) {
	v := Of[uint32](42, 43)
	require.Len(t, v, 2)
	assert.Equal(t, uint32(42), v[0])
	assert.Equal(t, uint32(43), v[1])
}

func TestMany(t *testing.T) {
	v := Of(
		"dasdanjshaskdhasjkdhasdjkhasdjkashdjkashdajks",
		"dasdanjshaskdhasjkdhasdjkhasdjkashdjkashdajks",
		"dasdanjshaskdhasjkdhasdjkhasdjkashdjkashdajks",
		"dasdanjshaskdhasjkdhasdjkhasdjkashdjkashdajks",
		"dasdanjshaskdhasjkdhasdjkhasdjkashdjkashdajks",
	)
	assert.Len(t, v, 5)
}

func TestOfCopiesSpread(t *testing.T) {
	src := []int{1, 2, 3}
	v := Of(src...)
	v[0] = 100
	assert.Equal(t, []int{1, 2, 3}, src)
	assert.Equal(t, []int{100, 2, 3}, v)
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []string{"x", "x", "x"}, Repeat("x", 3))
	assert.Empty(t, Repeat(7, 0))
	assert.Panics(t, func() { Repeat(7, -1) })
}
