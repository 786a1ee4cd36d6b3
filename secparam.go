// Package capycrypt provides a message-centric API for the Keccak-f[1600]
// sponge and its FIPS 202 / SP 800-185 derivatives (SHA3, SHAKE, cSHAKE,
// KMACXOF), a passphrase-based authenticated encryption scheme built on
// KMACXOF, and Schnorr/ECDHIES asymmetric encryption and signatures over
// the Ed448-Goldilocks curve.
package capycrypt

import "capycrypt/xof"

// SecParam is the security parameter d of spec.md §3: one of 224, 256,
// 384, or 512 bits. It drives cSHAKE/KMAC capacity, rate, and bytepad
// width, and the requested digest length for SHA3-d.
type SecParam int

const (
	D224 SecParam = 224
	D256 SecParam = 256
	D384 SecParam = 384
	D512 SecParam = 512
)

// Validate reports an UnsupportedSecurityParameter error unless d is
// one of the four FIPS-approved strengths.
func (d SecParam) Validate() error {
	if xof.SecLevel(d).Validate() != nil {
		return ErrUnsupportedSecurityParameter
	}
	return nil
}

func (d SecParam) toXOF() xof.SecLevel { return xof.SecLevel(d) }
