package byteutils

import "math/big"

// BytesToInt treats b as a big-endian unsigned integer, per spec's
// bytes_to_int.
func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// IntToBytes renders x as big-endian bytes with no leading zero byte
// (big.Int.Bytes' own convention), per spec's int_to_bytes.
func IntToBytes(x *big.Int) []byte {
	return x.Bytes()
}
