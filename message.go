package capycrypt

import (
	"math/big"

	"capycrypt/curve"
	"capycrypt/xof"
)

// Signature is a Schnorr signature (h, z): h is a 64-byte KMACXOF tag,
// z a scalar mod the curve's order r.
type Signature struct {
	H []byte
	Z *big.Int
}

// Message is the mutable carrier every operation in this package reads
// from and writes to, per spec.md's data model. Optional fields are
// nil/zero until the relevant operation sets them; decrypt/verify
// operations report a missing required field as the matching
// *NotSet error rather than panicking.
type Message struct {
	// Msg is the plaintext (before encrypt) or ciphertext (after
	// encrypt/before decrypt) buffer; encryption never changes its
	// length.
	Msg []byte

	// D is the security parameter this message was last operated on
	// under. Set by hash/encrypt/sign, read by decrypt/verify; callers
	// must not change it between a matched encrypt/decrypt pair.
	D *SecParam

	// SymNonce is the 64-byte salt z chosen at PwEncrypt time, or the
	// 16-byte IV chosen at AESEncrypt time.
	SymNonce []byte

	// AsymNonce is the curve point Z chosen at KeyEncrypt time.
	AsymNonce *curve.Point

	// Digest holds either a plain hash (Hash) or an authentication tag
	// t (PwEncrypt/KeyEncrypt/TaggedHash).
	Digest []byte

	// Sig is the Schnorr signature (h, z) produced by Sign.
	Sig *Signature

	// OpResult is the accept/reject outcome of the last
	// PwDecrypt/KeyDecrypt/Verify call.
	OpResult bool
}

// NewMessage wraps data in a fresh Message with no optional slots set.
func NewMessage(data []byte) *Message {
	return &Message{Msg: append([]byte(nil), data...)}
}

// Hash fills Digest with the SHA3-d digest of Msg. It does not consume
// or modify Msg.
func (m *Message) Hash(d SecParam) error {
	if err := d.Validate(); err != nil {
		return err
	}
	digest, err := xof.Sha3(m.Msg, d.toXOF())
	if err != nil {
		return err
	}
	m.Digest = digest
	m.D = &d
	return nil
}

// TaggedHash fills Digest with KMACXOF(pw, Msg, d, s, d): a keyed hash
// of Msg under passphrase pw, domain-separated by s.
func (m *Message) TaggedHash(pw []byte, s string, d SecParam) error {
	if err := d.Validate(); err != nil {
		return err
	}
	digest, err := xof.KmacXOF(pw, m.Msg, int(d), s, d.toXOF())
	if err != nil {
		return err
	}
	m.Digest = digest
	m.D = &d
	return nil
}
