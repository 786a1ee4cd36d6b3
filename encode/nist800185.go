// Package encode implements the length-encoding functions of NIST
// SP 800-185 §2.3: left_encode, right_encode, encode_string, and
// bytepad.
package encode

import "encoding/binary"

// LeftEncode returns n (1 byte) followed by the n big-endian bytes of
// x, where n is the minimum number of bytes needed to hold x (n >= 1).
// LeftEncode(0) == []byte{1, 0}.
func LeftEncode(x uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], x)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	n := 8 - i
	out := make([]byte, 0, n+1)
	out = append(out, byte(n))
	return append(out, buf[i:]...)
}

// RightEncode returns the big-endian bytes of x followed by n (1
// byte), where n is the minimum number of bytes needed to hold x.
// RightEncode(0) == []byte{0, 1}.
func RightEncode(x uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], x)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	n := 8 - i
	out := make([]byte, 0, n+1)
	out = append(out, buf[i:]...)
	return append(out, byte(n))
}

// EncodeString returns left_encode(8*len(s)) || s: a bit-length prefix
// followed by the string itself.
func EncodeString(s []byte) []byte {
	return append(LeftEncode(uint64(len(s))*8), s...)
}

// BytePad prepends left_encode(w) to x, then right-pads with zero
// bytes until the result's length is a multiple of w.
func BytePad(x []byte, w int) []byte {
	z := append(LeftEncode(uint64(w)), x...)
	for len(z)%w != 0 {
		z = append(z, 0)
	}
	return z
}
