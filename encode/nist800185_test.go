package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftEncodeZero(t *testing.T) {
	assert.Equal(t, []byte{1, 0}, LeftEncode(0))
}

func TestRightEncodeZero(t *testing.T) {
	assert.Equal(t, []byte{0, 1}, RightEncode(0))
}

func TestLeftEncodeSmallValue(t *testing.T) {
	assert.Equal(t, []byte{1, 136}, LeftEncode(136))
}

func TestRightEncodeSmallValue(t *testing.T) {
	assert.Equal(t, []byte{136, 1}, RightEncode(136))
}

func TestLeftEncodeUsesMinimalBytes(t *testing.T) {
	assert.Equal(t, []byte{2, 1, 0}, LeftEncode(256))
}

func TestEncodeStringEmpty(t *testing.T) {
	assert.Equal(t, []byte{1, 0}, EncodeString(nil))
}

func TestEncodeStringPrefixesBitLength(t *testing.T) {
	got := EncodeString([]byte("ab"))
	assert.Equal(t, append(LeftEncode(16), 'a', 'b'), got)
}

func TestBytePadIsMultipleOfW(t *testing.T) {
	for _, w := range []int{136, 168, 172} {
		got := BytePad([]byte("hello"), w)
		assert.Zero(t, len(got)%w)
	}
}

func TestBytePadStartsWithLeftEncodeOfW(t *testing.T) {
	got := BytePad([]byte("x"), 168)
	assert.Equal(t, LeftEncode(168), got[:len(LeftEncode(168))])
}
