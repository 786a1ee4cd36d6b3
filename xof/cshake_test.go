package xof

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCShakeEmptyNSFallsBackToShake(t *testing.T) {
	a, err := CShake([]byte("payload"), 256, "", "", D256)
	require.NoError(t, err)
	b, err := Shake([]byte("payload"), 256, D256)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestCShakeDiffersWithCustomizationString(t *testing.T) {
	a, err := CShake([]byte("payload"), 256, "", "alice", D256)
	require.NoError(t, err)
	b, err := CShake([]byte("payload"), 256, "", "bob", D256)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestKmacXOFOutputLengthIsRequested(t *testing.T) {
	out, err := KmacXOF([]byte("key"), []byte("data"), 256, "", D256)
	require.NoError(t, err)
	assert.Len(t, out, 32)
}

func TestKmacXOFDiffersByKey(t *testing.T) {
	a, err := KmacXOF([]byte("key1"), []byte("data"), 256, "", D256)
	require.NoError(t, err)
	b, err := KmacXOF([]byte("key2"), []byte("data"), 256, "", D256)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestKmacXOFTaggedHashVector(t *testing.T) {
	out, err := KmacXOF([]byte("test"), nil, 512, "", D512)
	require.NoError(t, err)
	want, err := hex.DecodeString(
		"0f9b5dcd47dc08e08a173bbe9a57b1a65784e318cf93cccb7f1f79f186ee1ca" +
			"eff11b12f8ca3a39db82a63f4ca0b65836f5261ee64644ce5a88456d3d30efbed")
	require.NoError(t, err)
	assert.Equal(t, want, out)
}
