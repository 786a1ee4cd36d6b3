package capycrypt

import (
	"math/big"

	"capycrypt/byteutils"
	"capycrypt/curve"
	"capycrypt/xof"
)

// deriveScalar is the shared s <- (bytes_to_int(KMACXOF(pw, "", 512,
// "K", d)) * 4) mod r step used by KeyPair derivation and KeyDecrypt.
// Sign derives its own s without the final mod r reduction.
func deriveScalar(pw []byte, d SecParam) (*big.Int, error) {
	h, err := xof.KmacXOF(pw, nil, 512, "K", d.toXOF())
	if err != nil {
		return nil, err
	}
	s := byteutils.BytesToInt(h)
	s.Mul(s, curve.Cofactor())
	s.Mod(s, curve.Order())
	return s, nil
}

// KeyEncrypt turns m.Msg into a Schnorr/ECDHIES ciphertext under the
// public point V, in place. It sets AsymNonce (Z), Digest, and D.
func KeyEncrypt(m *Message, V *curve.Point, d SecParam) error {
	if err := d.Validate(); err != nil {
		return err
	}

	kBytes, err := byteutils.RandBytes(64)
	if err != nil {
		return err
	}
	k := byteutils.BytesToInt(kBytes)
	k.Mul(k, curve.Cofactor())
	k.Mod(k, curve.Order())

	W := V.ScalarMul(k)
	Z := curve.Generator().ScalarMul(k)

	keka, err := xof.KmacXOF(byteutils.IntToBytes(W.X), nil, 1024, "PK", d.toXOF())
	if err != nil {
		return err
	}
	ke, ka := keka[:64], keka[64:]

	t, err := xof.KmacXOF(ka, m.Msg, 512, "PKA", d.toXOF())
	if err != nil {
		return err
	}
	c, err := xof.KmacXOF(ke, nil, 8*len(m.Msg), "PKE", d.toXOF())
	if err != nil {
		return err
	}
	cipher, err := byteutils.XOR(m.Msg, c)
	if err != nil {
		return ErrXORFailure
	}

	m.Msg = cipher
	m.AsymNonce = Z
	m.Digest = t
	m.D = &d
	return nil
}

// KeyDecrypt recovers m.Msg under the passphrase whose KeyPair holds
// the private scalar matching the point AsymNonce was encrypted
// against, in place, and sets OpResult.
func KeyDecrypt(m *Message, pw []byte) error {
	if m.D == nil {
		return ErrSecurityParameterNotSet
	}
	if m.AsymNonce == nil {
		return ErrSymNonceNotSet
	}
	if m.Digest == nil {
		return ErrDigestNotSet
	}
	d := *m.D

	s, err := deriveScalar(pw, d)
	if err != nil {
		return err
	}
	W := m.AsymNonce.ScalarMul(s)

	keka, err := xof.KmacXOF(byteutils.IntToBytes(W.X), nil, 1024, "PK", d.toXOF())
	if err != nil {
		return err
	}
	ke, ka := keka[:64], keka[64:]

	c, err := xof.KmacXOF(ke, nil, 8*len(m.Msg), "PKE", d.toXOF())
	if err != nil {
		return err
	}
	plain, err := byteutils.XOR(m.Msg, c)
	if err != nil {
		return ErrXORFailure
	}

	tPrime, err := xof.KmacXOF(ka, plain, 512, "PKA", d.toXOF())
	if err != nil {
		return err
	}

	m.Msg = plain
	m.OpResult = constantTimeEqual(tPrime, m.Digest)
	if !m.OpResult {
		return ErrKeyDecryptionError
	}
	return nil
}
