package capycrypt

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPwEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	m := NewMessage(plaintext)
	pw := []byte("correct horse battery staple")

	require.NoError(t, PwEncrypt(m, pw, D256))
	assert.NotEqual(t, plaintext, m.Msg)
	assert.Len(t, m.Msg, len(plaintext))

	require.NoError(t, PwDecrypt(m, pw))
	assert.True(t, m.OpResult)
	assert.Equal(t, plaintext, m.Msg)
}

func TestPwEncryptDecryptRoundTrip5MiB(t *testing.T) {
	plaintext := make([]byte, 5*1024*1024)
	_, err := rand.Read(plaintext)
	require.NoError(t, err)

	m := NewMessage(plaintext)
	pw := []byte("another passphrase")

	require.NoError(t, PwEncrypt(m, pw, D512))
	require.NoError(t, PwDecrypt(m, pw))
	assert.True(t, m.OpResult)
	assert.Equal(t, plaintext, m.Msg)
}

func TestPwDecryptWrongPassphraseRejects(t *testing.T) {
	m := NewMessage([]byte("secret message"))
	require.NoError(t, PwEncrypt(m, []byte("right"), D256))

	err := PwDecrypt(m, []byte("wrong"))
	assert.ErrorIs(t, err, ErrSHA3DecryptionFailure)
	assert.False(t, m.OpResult)
}

func TestPwDecryptTamperedCiphertextRejects(t *testing.T) {
	m := NewMessage([]byte("secret message"))
	pw := []byte("passphrase")
	require.NoError(t, PwEncrypt(m, pw, D256))

	m.Msg[0] ^= 0xFF
	err := PwDecrypt(m, pw)
	assert.ErrorIs(t, err, ErrSHA3DecryptionFailure)
	assert.False(t, m.OpResult)
}

func TestPwDecryptTamperedTagRejects(t *testing.T) {
	m := NewMessage([]byte("secret message"))
	pw := []byte("passphrase")
	require.NoError(t, PwEncrypt(m, pw, D256))

	m.Digest[0] ^= 0xFF
	err := PwDecrypt(m, pw)
	assert.ErrorIs(t, err, ErrSHA3DecryptionFailure)
	assert.False(t, m.OpResult)
}

func TestPwDecryptMissingFieldsError(t *testing.T) {
	m := NewMessage([]byte("x"))
	assert.ErrorIs(t, PwDecrypt(m, []byte("pw")), ErrSecurityParameterNotSet)

	d := D256
	m.D = &d
	assert.ErrorIs(t, PwDecrypt(m, []byte("pw")), ErrSymNonceNotSet)

	m.SymNonce = make([]byte, 64)
	assert.ErrorIs(t, PwDecrypt(m, []byte("pw")), ErrDigestNotSet)
}
