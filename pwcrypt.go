package capycrypt

import (
	"capycrypt/byteutils"
	"capycrypt/xof"
)

// PwEncrypt turns m.Msg into a passphrase-authenticated ciphertext of
// the same length, in place. It sets SymNonce, Digest, and D; a
// subsequent PwDecrypt(m, pw) with the same pw reverses it.
func PwEncrypt(m *Message, pw []byte, d SecParam) error {
	if err := d.Validate(); err != nil {
		return err
	}

	z, err := byteutils.RandBytes(64)
	if err != nil {
		return err
	}

	keka, err := xof.KmacXOF(append(append([]byte(nil), z...), pw...), nil, 1024, "S", d.toXOF())
	if err != nil {
		return err
	}
	ke, ka := keka[:64], keka[64:]

	c, err := xof.KmacXOF(ke, nil, 8*len(m.Msg), "SKE", d.toXOF())
	if err != nil {
		return err
	}
	t, err := xof.KmacXOF(ka, m.Msg, 512, "SKA", d.toXOF())
	if err != nil {
		return err
	}

	cipher, err := byteutils.XOR(m.Msg, c)
	if err != nil {
		return ErrXORFailure
	}

	m.Msg = cipher
	m.SymNonce = z
	m.Digest = t
	m.D = &d
	return nil
}

// PwDecrypt recovers m.Msg from a PwEncrypt'd message under pw, in
// place, and sets OpResult. A tag mismatch is reported via OpResult
// and ErrSHA3DecryptionFailure, not by leaving Msg untouched: Msg is
// overwritten with the recomputed (and unauthenticated) candidate
// plaintext regardless of outcome, per spec.
func PwDecrypt(m *Message, pw []byte) error {
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

	keka, err := xof.KmacXOF(append(append([]byte(nil), m.SymNonce...), pw...), nil, 1024, "S", d.toXOF())
	if err != nil {
		return err
	}
	ke, ka := keka[:64], keka[64:]

	c, err := xof.KmacXOF(ke, nil, 8*len(m.Msg), "SKE", d.toXOF())
	if err != nil {
		return err
	}
	plain, err := byteutils.XOR(m.Msg, c)
	if err != nil {
		return ErrXORFailure
	}

	tPrime, err := xof.KmacXOF(ka, plain, 512, "SKA", d.toXOF())
	if err != nil {
		return err
	}

	m.Msg = plain
	m.OpResult = constantTimeEqual(tPrime, m.Digest)
	if !m.OpResult {
		return ErrSHA3DecryptionFailure
	}
	return nil
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
