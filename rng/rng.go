package rng

// Generator is a mulberry32 pseudo-random generator.
//
// All arithmetic is performed on uint32 values, so the sequence is exact
// and identical across architectures. Instances share no hidden state;
// copying a Generator forks the stream at its current position.
type Generator struct {
	state uint32
}

// New creates a Generator from a 32-bit seed.
func New(seed uint32) *Generator {
	return &Generator{state: seed}
}

// Uint32 returns the next raw 32-bit value of the stream.
//
// Mulberry32 mixing, step by step:
//
//	state += 0x6D2B79F5
//	z  = state
//	z  = (z ^ z>>15) * (z | 1)
//	z ^= z + (z ^ z>>7) * (z | 61)
//	return z ^ z>>14
func (g *Generator) Uint32() uint32 {
	g.state += 0x6D2B79F5

	z := g.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)

	return z ^ (z >> 14)
}

// Float64 returns the next value in [0, 1).
//
// The 32-bit output is divided by 2^32, so the result has 32 bits of
// precision and never reaches 1.
func (g *Generator) Float64() float64 {
	return float64(g.Uint32()) / 4294967296.0
}

// Intn returns a deterministic integer in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return int(g.Float64() * float64(n))
}

// Perm returns a deterministic permutation of [0, n) using a Fisher-Yates
// shuffle driven by generator draws.
func (g *Generator) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
