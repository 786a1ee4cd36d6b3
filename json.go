package capycrypt

import (
	"encoding/json"
	"math/big"

	"capycrypt/curve"
)

// jsonPoint is a curve point's coordinate encoding for the wire
// format: decimal strings, since the coordinates exceed JSON's safe
// integer range.
type jsonPoint struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type jsonSignature struct {
	H []byte `json:"h"`
	Z string `json:"z"`
}

// jsonMessage mirrors spec.md §6's persisted field set. kem_ciphertext
// is accepted on input for forward compatibility with the excluded
// ML-KEM module, then discarded: Message has no slot for it, so
// MarshalJSON never writes it.
type jsonMessage struct {
	Msg           []byte         `json:"msg"`
	D             *int           `json:"d,omitempty"`
	SymNonce      []byte         `json:"sym_nonce,omitempty"`
	AsymNonce     *jsonPoint     `json:"asym_nonce,omitempty"`
	Digest        []byte         `json:"digest,omitempty"`
	OpResult      bool           `json:"op_result"`
	Sig           *jsonSignature `json:"sig,omitempty"`
	KEMCiphertext []byte         `json:"kem_ciphertext,omitempty"`
}

// MarshalJSON renders m in the persisted format of spec.md §6. Byte
// fields (msg, sym_nonce, digest, sig.h) are written with
// encoding/json's default []byte encoding, a base64 string, not as
// arrays of numbers; UnmarshalJSON accepts either form.
func (m *Message) MarshalJSON() ([]byte, error) {
	jm := jsonMessage{
		Msg:      m.Msg,
		SymNonce: m.SymNonce,
		Digest:   m.Digest,
		OpResult: m.OpResult,
	}
	if m.D != nil {
		d := int(*m.D)
		jm.D = &d
	}
	if m.AsymNonce != nil {
		jm.AsymNonce = &jsonPoint{X: m.AsymNonce.X.String(), Y: m.AsymNonce.Y.String()}
	}
	if m.Sig != nil {
		jm.Sig = &jsonSignature{H: m.Sig.H, Z: m.Sig.Z.String()}
	}
	return json.Marshal(jm)
}

// UnmarshalJSON populates m from the persisted format of spec.md §6.
// Unknown fields are ignored, per its forward-compatibility note.
func (m *Message) UnmarshalJSON(data []byte) error {
	var jm jsonMessage
	if err := json.Unmarshal(data, &jm); err != nil {
		return err
	}

	m.Msg = jm.Msg
	m.SymNonce = jm.SymNonce
	m.Digest = jm.Digest
	m.OpResult = jm.OpResult

	if jm.D != nil {
		d := SecParam(*jm.D)
		m.D = &d
	}
	if jm.AsymNonce != nil {
		x, ok := new(big.Int).SetString(jm.AsymNonce.X, 10)
		if !ok {
			return ErrKeyDecryptionError
		}
		y, ok := new(big.Int).SetString(jm.AsymNonce.Y, 10)
		if !ok {
			return ErrKeyDecryptionError
		}
		m.AsymNonce = curve.New(x, y)
	}
	if jm.Sig != nil {
		z, ok := new(big.Int).SetString(jm.Sig.Z, 10)
		if !ok {
			return ErrSignatureVerificationFailure
		}
		m.Sig = &Signature{H: jm.Sig.H, Z: z}
	}
	return nil
}
