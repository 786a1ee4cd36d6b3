package capycrypt

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEncryptDecryptRoundTrip(t *testing.T) {
	pw := []byte("keypair passphrase")
	kp, err := NewKeyPair(pw, "alice", "E448", D256)
	require.NoError(t, err)

	plaintext := []byte("a message for alice")
	m := NewMessage(plaintext)

	require.NoError(t, KeyEncrypt(m, kp.Pub, D256))
	assert.NotEqual(t, plaintext, m.Msg)

	require.NoError(t, KeyDecrypt(m, pw))
	assert.True(t, m.OpResult)
	assert.Equal(t, plaintext, m.Msg)
}

func TestKeyDecryptWrongPassphraseRejects(t *testing.T) {
	kp, err := NewKeyPair([]byte("right passphrase"), "bob", "E448", D256)
	require.NoError(t, err)

	m := NewMessage([]byte("confidential"))
	require.NoError(t, KeyEncrypt(m, kp.Pub, D256))

	err = KeyDecrypt(m, []byte("wrong passphrase"))
	assert.ErrorIs(t, err, ErrKeyDecryptionError)
	assert.False(t, m.OpResult)
}

func TestKeyDecryptTamperedNonceRejects(t *testing.T) {
	pw := []byte("yet another passphrase")
	kp, err := NewKeyPair(pw, "carol", "E448", D256)
	require.NoError(t, err)

	m := NewMessage([]byte("confidential"))
	require.NoError(t, KeyEncrypt(m, kp.Pub, D256))

	m.AsymNonce.X.Add(m.AsymNonce.X, big.NewInt(1))
	err = KeyDecrypt(m, pw)
	assert.ErrorIs(t, err, ErrKeyDecryptionError)
}

func TestKeyDecryptMissingFieldsError(t *testing.T) {
	m := NewMessage([]byte("x"))
	assert.ErrorIs(t, KeyDecrypt(m, []byte("pw")), ErrSecurityParameterNotSet)

	d := D256
	m.D = &d
	assert.ErrorIs(t, KeyDecrypt(m, []byte("pw")), ErrSymNonceNotSet)
}
