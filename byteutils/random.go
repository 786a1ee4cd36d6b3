package byteutils

import "crypto/rand"

// RandBytes is the rand_bytes(n) oracle spec.md treats as an external
// collaborator: n cryptographically random bytes. Deterministic
// substitution is only for tests, never for production code paths.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
