package sponge

// Sponge implements the Keccak sponge construction: absorb input at a
// fixed byte rate, then squeeze output at the same rate, applying
// Keccak-f[1600] between blocks. It moves through three logical phases,
// per spec: Fresh -> Absorbing -> Squeezing. There is no phase back
// from Squeezing to Absorbing; create a new Sponge to start over.
type Sponge struct {
	state     [StateBytes]byte
	rate      int
	pos       int
	squeezing bool
}

// New creates a sponge with the given rate in bytes. rate must be in
// (0, StateBytes]; the capacity is StateBytes*8 - rate*8 bits.
func New(rateBytes int) *Sponge {
	if rateBytes <= 0 || rateBytes > StateBytes {
		panic("sponge: rate out of range")
	}
	return &Sponge{rate: rateBytes}
}

// Absorb XORs p into the state in rate-sized blocks, permuting after
// each full block. A final partial block is buffered until Finalize.
func (s *Sponge) Absorb(p []byte) {
	if s.squeezing {
		panic("sponge: absorb called after squeezing began")
	}
	for len(p) > 0 {
		n := s.rate - s.pos
		if n > len(p) {
			n = len(p)
		}
		for i := 0; i < n; i++ {
			s.state[s.pos+i] ^= p[i]
		}
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			KeccakF1600(&s.state)
			s.pos = 0
		}
	}
}

// Finalize appends the domain-separation suffix byte at the current
// input offset, sets the final pad10*1 bit at position rate-1, and
// permutes once, transitioning the sponge to the squeezing phase.
func (s *Sponge) Finalize(delimSuffix byte) {
	if s.squeezing {
		return
	}
	s.state[s.pos] ^= delimSuffix
	s.state[s.rate-1] ^= 0x80
	KeccakF1600(&s.state)
	s.pos = 0
	s.squeezing = true
}

// Squeeze returns n bytes of output, permuting as needed once the
// current rate-sized block has been fully read. Finalize must have
// been called (directly or via Squeeze) before output is produced.
func (s *Sponge) Squeeze(n int) []byte {
	if !s.squeezing {
		s.Finalize(0)
	}
	out := make([]byte, n)
	got := 0
	for got < n {
		avail := s.rate - s.pos
		take := n - got
		if take > avail {
			take = avail
		}
		copy(out[got:got+take], s.state[s.pos:s.pos+take])
		s.pos += take
		got += take
		if s.pos == s.rate {
			KeccakF1600(&s.state)
			s.pos = 0
		}
	}
	return out
}

// Squeeze1600 runs the full absorb/finalize/squeeze cycle in one call:
// absorb input at rateBytes, finalize with delimSuffix, then squeeze
// outputBytes of output. This is the shape most XOF derivations need.
func Squeeze1600(input []byte, delimSuffix byte, rateBytes int, outputBytes int) []byte {
	s := New(rateBytes)
	s.Absorb(input)
	s.Finalize(delimSuffix)
	return s.Squeeze(outputBytes)
}
