// Package byteutils implements the byte-level helpers the rest of the
// library treats as primitive operations: XOR, big-int <-> byte
// conversion, and the random-byte oracle.
package byteutils

import (
	"errors"

	"github.com/lukechampine/fastxor"
)

// ErrLengthMismatch is returned by XOR when its two operands differ in
// length; under the invariants in spec.md this should be unreachable.
var ErrLengthMismatch = errors.New("byteutils: XOR operands have different lengths")

// XOR returns a XOR b, byte for byte. Both slices must be the same
// length; spec.md names a length mismatch here XORFailure, since every
// caller in this library XORs a keystream against a same-length
// plaintext or ciphertext.
func XOR(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	out := make([]byte, len(a))
	fastxor.Bytes(out, a, b)
	return out, nil
}

// XORInPlace XORs b into a in place. a and b must be the same length.
func XORInPlace(a, b []byte) error {
	if len(a) != len(b) {
		return ErrLengthMismatch
	}
	fastxor.Bytes(a, a, b)
	return nil
}
