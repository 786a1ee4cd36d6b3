package capycrypt

import (
	"fmt"
	"time"

	"capycrypt/byteutils"
	"capycrypt/curve"
)

// KeyPair holds a passphrase-derived identity: the raw passphrase
// (never the scalar s, which is re-derived on every use per spec.md
// §4.7) plus the public point V = sG.
type KeyPair struct {
	Owner        string
	PrivKeyBytes []byte
	Pub          *curve.Point
	CreatedAt    time.Time
	CurveID      string
	D            SecParam

	// Attestation is a TaggedHash of the key's own metadata under its
	// own passphrase, computed once here and not re-verified
	// elsewhere; it carries forward the teacher's self-signed key
	// record behavior.
	Attestation []byte
}

// NewKeyPair derives s <- (bytes_to_int(KMACXOF(pw, "", 512, "K", d)) *
// 4) mod r and V <- sG, and self-attests the resulting metadata.
func NewKeyPair(pw []byte, owner, curveID string, d SecParam) (*KeyPair, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	s, err := deriveScalar(pw, d)
	if err != nil {
		return nil, err
	}
	V := curve.Generator().ScalarMul(s)

	kp := &KeyPair{
		Owner:        owner,
		PrivKeyBytes: append([]byte(nil), pw...),
		Pub:          V,
		CreatedAt:    byteutils.Timestamp(),
		CurveID:      curveID,
		D:            d,
	}

	meta := NewMessage([]byte(fmt.Sprintf("%s|%s|%s|%s", owner, V.X.String(), V.Y.String(), kp.CreatedAt.Format(time.RFC3339Nano))))
	if err := meta.TaggedHash(pw, "", d); err != nil {
		return nil, err
	}
	kp.Attestation = meta.Digest

	return kp, nil
}
