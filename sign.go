package capycrypt

import (
	"math/big"

	"capycrypt/byteutils"
	"capycrypt/curve"
	"capycrypt/xof"
)

// Sign computes a Schnorr signature over m.Msg under the passphrase
// that owns kp, and stores it on m.Sig. It sets D but leaves Msg
// untouched.
func Sign(m *Message, kp *KeyPair, d SecParam) error {
	if err := d.Validate(); err != nil {
		return err
	}

	hK, err := xof.KmacXOF(kp.PrivKeyBytes, nil, 512, "K", d.toXOF())
	if err != nil {
		return err
	}
	// s is deliberately NOT reduced mod r here; only the final z is.
	s := byteutils.BytesToInt(hK)
	s.Mul(s, curve.Cofactor())

	hN, err := xof.KmacXOF(byteutils.IntToBytes(s), m.Msg, 512, "N", d.toXOF())
	if err != nil {
		return err
	}
	k := byteutils.BytesToInt(hN)
	k.Mul(k, curve.Cofactor())
	k.Mod(k, curve.Order())

	U := curve.Generator().ScalarMul(k)

	h, err := xof.KmacXOF(byteutils.IntToBytes(U.X), m.Msg, 512, "T", d.toXOF())
	if err != nil {
		return err
	}

	z := new(big.Int).Mul(byteutils.BytesToInt(h), s)
	z.Sub(k, z)
	z.Mod(z, curve.Order())
	z.Add(z, curve.Order())
	z.Mod(z, curve.Order())

	m.Sig = &Signature{H: h, Z: z}
	m.D = &d
	return nil
}

// Verify checks m.Sig against m.Msg and the public point V, and sets
// m.OpResult.
func Verify(m *Message, V *curve.Point) error {
	if m.D == nil {
		return ErrSecurityParameterNotSet
	}
	if m.Sig == nil {
		return ErrSignatureNotSet
	}
	d := *m.D

	hInt := byteutils.BytesToInt(m.Sig.H)
	Uprime := curve.Generator().ScalarMul(m.Sig.Z).Add(V.ScalarMul(hInt))

	hPrime, err := xof.KmacXOF(byteutils.IntToBytes(Uprime.X), m.Msg, 512, "T", d.toXOF())
	if err != nil {
		return err
	}

	m.OpResult = constantTimeEqual(hPrime, m.Sig.H)
	if !m.OpResult {
		return ErrSignatureVerificationFailure
	}
	return nil
}
