package mt19937

import (
	"sync"

	"github.com/skiprand/prand/gf2poly"
)

// jumpTable[i][j] holds x^((j+1)*8^i) mod phi, phi being MT19937's
// degree-19937 minimal polynomial, as an N-word coefficient vector. It is
// built once, lazily, by repeated squaring from the monomial x^1 — the
// literal table contents are not part of the public contract, only that
// jumping ahead by a given step is equivalent to multiplying the state's
// characteristic polynomial by x^step mod phi (Haramoto et al.,
// https://doi.org/10.1007/978-3-540-85912-3_26), decomposed in base 8
// (Matsumoto & Nishimura).
var (
	jumpTableOnce sync.Once
	jumpTable     [maxStepBase8][7][N]uint32
)

func ensureJumpTable() {
	jumpTableOnce.Do(buildJumpTable)
}

func buildJumpTable() {
	p := make([]uint32, N)
	gf2poly.SetCoeff(p, 1)

	for i := 0; i < maxStepBase8; i++ {
		acc := make([]uint32, N)
		copy(acc, p)
		for j := 0; j < 7; j++ {
			copy(jumpTable[i][j][:], acc)
			acc = mulModPhi(acc, p)
		}
		p = mulModPhi(p, p)
		p = mulModPhi(p, p)
		p = mulModPhi(p, p)
	}
}

// mulModPhi returns a*b mod phi, each operand an N-word polynomial.
func mulModPhi(a, b []uint32) []uint32 {
	prod := make([]uint32, 2*N)
	gf2poly.Mul(prod, a, b, N)
	tmp := make([]uint32, gf2poly.ModPhiScratchLimbs)
	gf2poly.ModPhi(prod, tmp)
	out := make([]uint32, N)
	copy(out, prod[:N])
	return out
}

// polyForStep evaluates x^step mod phi by multiplying together the
// precomputed table entries for step's base-8 digits.
func polyForStep(step uint64) []uint32 {
	ensureJumpTable()
	poly := make([]uint32, N)
	initialised := false
	n := step
	for i := 0; n != 0; i++ {
		digit := n & 7
		if digit != 0 {
			term := jumpTable[i][digit-1][:]
			if !initialised {
				copy(poly, term)
				initialised = true
			} else {
				poly = mulModPhi(poly, term)
			}
		}
		n >>= 3
	}
	return poly
}

// recoverState reconstructs a twist register from the characteristic
// polynomial of its future output stream, per the Boost
// random/mersenne_twister.hpp algorithm: run the twist recurrence in
// reverse, reading off each new word's top bit from the polynomial's
// coefficients.
func recoverState(s *State, poly []uint32) {
	const k = polyDegree
	var y0 uint32
	for i := k - N + 1; i <= k; i++ {
		s.mt[i%N] = gf2poly.Coeff(poly, i)
	}
	for i := k + 1; i >= N-1; i-- {
		y1 := s.mt[i%N] ^ s.mt[(i+m)%N]
		if gf2poly.Coeff(poly, i-N+1) != 0 {
			y1 = ((y1 ^ matrixA) << 1) | 1
		} else {
			y1 <<= 1
		}
		s.mt[(i+1)%N] = (y0 & upperMask) | (y1 & lowerMask)
		y0 = y1
	}
	s.idx = 0
}

// advance writes into out the state that results from drawing step raw
// words from in, where poly = x^step mod phi. in and out may be the same
// state.
func advance(out, in *State, poly []uint32) {
	if out != in {
		*out = *in
	}

	const k = polyDegree
	pm := make([]uint32, 2*N)
	for i := 2*k - 1; i >= 0; i-- {
		if out.nextRaw()&1 != 0 {
			gf2poly.SetCoeff(pm, i)
		}
	}

	ph := make([]uint32, 3*N)
	gf2poly.MulUnbalanced(ph, pm, poly, N)

	coeffs := make([]uint32, N)
	for i := 0; i <= k; i++ {
		j := 2*k - 1 - i
		if gf2poly.Coeff(ph, j) != 0 {
			gf2poly.SetCoeff(coeffs, i)
		}
	}

	recoverState(out, coeffs)
}

// Jump advances state in place by step draws.
func Jump(s *State, step uint64) error {
	if step == 0 {
		return nil
	}
	if step > MaxStep {
		return ErrStepTooLarge
	}
	advance(s, s, polyForStep(step))
	return nil
}

// JumpSeq fills states[0] from init, then advances each subsequent stream
// by step draws relative to its predecessor, so stream i starts step*i
// draws after init. It is meant to be called once, at initialisation.
func JumpSeq(states []*State, init *State, step uint64) error {
	if len(states) == 0 {
		return nil
	}
	*states[0] = *init
	if step == 0 {
		for i := 1; i < len(states); i++ {
			*states[i] = *states[i-1]
		}
		return nil
	}
	if step > MaxStep {
		return ErrStepTooLarge
	}
	poly := polyForStep(step)
	for i := 1; i < len(states); i++ {
		advance(states[i], states[i-1], poly)
	}
	return nil
}

// JumpAll advances every state in states by step draws, independently.
func JumpAll(states []*State, step uint64) error {
	if step == 0 {
		return nil
	}
	if step > MaxStep {
		return ErrStepTooLarge
	}
	poly := polyForStep(step)
	for _, s := range states {
		advance(s, s, poly)
	}
	return nil
}

// Reset reseeds a single stream and jumps it ahead by step.
func Reset(s *State, seed, step uint64) (usedDefaultSeed bool, err error) {
	usedDefaultSeed = SeedOrDefault(s, seed)
	err = Jump(s, step)
	return usedDefaultSeed, err
}

// ResetAll reseeds states[0] and, for step != 0, re-derives the rest of
// states from it spaced by step. When step == 0 the other streams are left
// untouched: unlike mrg32k3a, MT19937's reference implementation does not
// propagate a fresh seed to every stream on a zero-step reset, only to the
// default stream.
func ResetAll(states []*State, seed, step uint64) (usedDefaultSeed bool, err error) {
	usedDefaultSeed = SeedOrDefault(states[0], seed)
	if step == 0 {
		return usedDefaultSeed, nil
	}
	if step > MaxStep {
		return usedDefaultSeed, ErrStepTooLarge
	}
	if len(states) <= 1 {
		return usedDefaultSeed, Jump(states[0], step)
	}
	return usedDefaultSeed, JumpSeq(states, states[0], step)
}

// Init allocates nstream states (nstream < 1 is treated as 1), seeds the
// first from seed, and spaces the rest step draws apart.
func Init(seed uint64, nstream int, step uint64) (states []*State, usedDefaultSeed bool, err error) {
	if step > MaxStep {
		return nil, false, ErrStepTooLarge
	}
	n := nstream
	if n < 1 {
		n = 1
	}
	backing := make([]State, n)
	states = make([]*State, n)
	for i := range states {
		states[i] = &backing[i]
	}

	usedDefaultSeed = SeedOrDefault(states[0], seed)
	if n <= 1 {
		err = Jump(states[0], step)
	} else {
		err = JumpSeq(states, states[0], step)
	}
	return states, usedDefaultSeed, err
}
