package capycrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyPairIsDeterministic(t *testing.T) {
	pw := []byte("same passphrase")
	a, err := NewKeyPair(pw, "owner", "E448", D256)
	require.NoError(t, err)
	b, err := NewKeyPair(pw, "owner", "E448", D256)
	require.NoError(t, err)
	assert.True(t, a.Pub.Equal(b.Pub))
}

func TestNewKeyPairDiffersByPassphrase(t *testing.T) {
	a, err := NewKeyPair([]byte("pw1"), "owner", "E448", D256)
	require.NoError(t, err)
	b, err := NewKeyPair([]byte("pw2"), "owner", "E448", D256)
	require.NoError(t, err)
	assert.False(t, a.Pub.Equal(b.Pub))
}

func TestNewKeyPairStoresPassphraseNotScalar(t *testing.T) {
	pw := []byte("stored as-is")
	kp, err := NewKeyPair(pw, "owner", "E448", D256)
	require.NoError(t, err)
	assert.Equal(t, pw, kp.PrivKeyBytes)
}

func TestNewKeyPairRejectsBadSecParam(t *testing.T) {
	_, err := NewKeyPair([]byte("pw"), "owner", "E448", SecParam(999))
	assert.ErrorIs(t, err, ErrUnsupportedSecurityParameter)
}

func TestNewKeyPairAttestationIsNonEmpty(t *testing.T) {
	kp, err := NewKeyPair([]byte("pw"), "owner", "E448", D256)
	require.NoError(t, err)
	assert.Len(t, kp.Attestation, 32)
}
