package capycrypt

import (
	"crypto/aes"
	"crypto/cipher"

	"capycrypt/byteutils"
	"capycrypt/xof"
)

// AESEncrypt turns m.Msg into an AES-CTR ciphertext of the same
// length, in place, using key directly (no passphrase stretching —
// callers that start from a passphrase should derive key themselves,
// e.g. via TaggedHash). It reuses SymNonce for the 16-byte IV and sets
// Digest to a KMACXOF tag over the ciphertext (encrypt-then-MAC, unlike
// PwEncrypt, which tags the plaintext).
func (m *Message) AESEncrypt(key []byte, d SecParam) error {
	if err := d.Validate(); err != nil {
		return err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}

	iv, err := byteutils.RandBytes(aes.BlockSize)
	if err != nil {
		return err
	}

	cipherText := make([]byte, len(m.Msg))
	cipher.NewCTR(block, iv).XORKeyStream(cipherText, m.Msg)

	tag, err := xof.KmacXOF(key, cipherText, 512, "AESA", d.toXOF())
	if err != nil {
		return err
	}

	m.Msg = cipherText
	m.SymNonce = iv
	m.Digest = tag
	m.D = &d
	return nil
}

// AESDecrypt reverses AESEncrypt in place and sets OpResult. The tag
// is checked against the ciphertext before the key stream is applied,
// so a forged ciphertext is rejected without ever running
// XORKeyStream over attacker data; on a tag mismatch Msg still holds
// the ciphertext.
func (m *Message) AESDecrypt(key []byte) error {
	if m.D == nil {
		return ErrSecurityParameterNotSet
	}
	if m.SymNonce == nil {
		return ErrSymNonceNotSet
	}
	if m.Digest == nil {
		return ErrDigestNotSet
	}
	d := *m.D

	tagPrime, err := xof.KmacXOF(key, m.Msg, 512, "AESA", d.toXOF())
	if err != nil {
		return err
	}
	m.OpResult = constantTimeEqual(tagPrime, m.Digest)
	if !m.OpResult {
		return ErrAESDecryptionFailure
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	plain := make([]byte, len(m.Msg))
	cipher.NewCTR(block, m.SymNonce).XORKeyStream(plain, m.Msg)
	m.Msg = plain
	return nil
}
