// Package sponge implements the Keccak-f[1600] permutation and the
// sponge absorb/squeeze construction built on top of it, per FIPS 202 §3.
//
// Inspiration for the compact permutation shape:
// https://github.com/mjosaarinen/tiny_sha3
// https://keccak.team/keccak_specs_summary.html
package sponge

import "encoding/binary"

// LaneCount is the number of 64-bit lanes in a Keccak-f[1600] state (5x5).
const LaneCount = 25

// StateBytes is the width of the Keccak-f[1600] state in bytes (1600 bits).
const StateBytes = 200

// roundConstants are the ι-step round constants RC[0..24), FIPS 202 §3.2.5.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets are the ρ-step rotation amounts, indexed in π-traversal order.
var rotationOffsets = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piLanes is the π-step lane permutation target index for each traversal step.
var piLanes = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}

// theta mixes each column's parity into the lanes of the two neighboring
// columns, per FIPS 202 §3.2.1.
func theta(a *[LaneCount]uint64) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		t := c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
		for y := 0; y < 25; y += 5 {
			a[y+x] ^= t
		}
	}
}

// rhoPi combines the ρ (rotation) and π (lane permutation) steps, per
// FIPS 202 §3.2.2–3.2.3. Fused as in the reference compact implementation.
func rhoPi(a *[LaneCount]uint64) {
	var scratch uint64
	t := a[1]
	for i := 0; i < 24; i++ {
		j := piLanes[i]
		scratch = a[j]
		a[j] = rotl64(t, rotationOffsets[i])
		t = scratch
	}
}

// chi applies the nonlinear row transform, per FIPS 202 §3.2.4.
func chi(a *[LaneCount]uint64) {
	var row [5]uint64
	for y := 0; y < 25; y += 5 {
		for x := 0; x < 5; x++ {
			row[x] = a[y+x]
		}
		for x := 0; x < 5; x++ {
			a[y+x] ^= ^row[(x+1)%5] & row[(x+2)%5]
		}
	}
}

// iota XORs the round constant into lane (0,0), per FIPS 202 §3.2.5.
func iota(a *[LaneCount]uint64, round int) {
	a[0] ^= roundConstants[round]
}

// permute applies all 24 rounds of Keccak-f[1600] to the lane state in place.
func permute(a *[LaneCount]uint64) {
	for round := 0; round < 24; round++ {
		theta(a)
		rhoPi(a)
		chi(a)
		iota(a, round)
	}
}

// bytesToLanes unpacks a little-endian 200-byte state into 25 64-bit lanes.
func bytesToLanes(b *[StateBytes]byte) [LaneCount]uint64 {
	var a [LaneCount]uint64
	for i := 0; i < LaneCount; i++ {
		a[i] = binary.LittleEndian.Uint64(b[i*8 : i*8+8])
	}
	return a
}

// lanesToBytes packs 25 64-bit lanes into a little-endian 200-byte state.
func lanesToBytes(a *[LaneCount]uint64, b *[StateBytes]byte) {
	for i := 0; i < LaneCount; i++ {
		binary.LittleEndian.PutUint64(b[i*8:i*8+8], a[i])
	}
}

// KeccakF1600 applies the Keccak-f[1600] permutation to a 200-byte state
// in place, treating the bytes as 25 little-endian 64-bit lanes.
func KeccakF1600(state *[StateBytes]byte) {
	a := bytesToLanes(state)
	permute(&a)
	lanesToBytes(&a, state)
}
