package xof

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha3EmptyInput256(t *testing.T) {
	got, err := Sha3(nil, D256)
	require.NoError(t, err)
	want, err := hex.DecodeString("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSha3OutputLengthMatchesD(t *testing.T) {
	for _, d := range []SecLevel{D224, D256, D384, D512} {
		got, err := Sha3([]byte("abc"), d)
		require.NoError(t, err)
		assert.Len(t, got, int(d)/8)
	}
}

func TestSha3RejectsBadSecLevel(t *testing.T) {
	_, err := Sha3(nil, SecLevel(123))
	assert.ErrorIs(t, err, ErrUnsupportedSecurityParameter)
}

func TestShakeOutputLengthIsRequested(t *testing.T) {
	out, err := Shake([]byte("abc"), 4000, D256)
	require.NoError(t, err)
	assert.Len(t, out, 500)
}

func TestShakeRejectsNonByteMultiple(t *testing.T) {
	_, err := Shake(nil, 7, D256)
	assert.Error(t, err)
}

func TestShakeDeterministic(t *testing.T) {
	a, err := Shake([]byte("x"), 256, D256)
	require.NoError(t, err)
	b, err := Shake([]byte("x"), 256, D256)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
