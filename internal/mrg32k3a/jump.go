package mrg32k3a

import "sync"

// matrix is a 3x3 matrix, stored row-major, representing one component's
// recurrence advanced some number of steps.
type matrix [9]uint64

// baseMatrix1, baseMatrix2 advance a single draw of each component:
//
//	[ s0 ]     [  0        1        0    ] [ s0 ]
//	[ s1 ]  =  [  0        0        1    ] [ s1 ]  mod m
//	[ s2 ]     [ m-810728  1403580  0    ] [ s2 ]   (component 1)
//
//	[ s0 ]     [  0        1        0    ] [ s0 ]
//	[ s1 ]  =  [  0        0        1    ] [ s1 ]  mod m
//	[ s2 ]     [ m-1370589 0        527612] [ s2 ]  (component 2)
//
// The bottom row's negative coefficients are folded into m so every entry
// stays non-negative.
var (
	baseMatrix1 = matrix{0, 1, 0, 0, 0, 1, m1 - 810728, 1403580, 0}
	baseMatrix2 = matrix{0, 1, 0, 0, 0, 1, m2 - 1370589, 0, 527612}
)

// jumpTable1[i][j], jumpTable2[i][j] hold baseMatrix^((j+1)*8^i) mod m1 and
// mod m2 respectively. Built once, lazily, from the base matrix by squaring
// three times (8 = 2^3) per base-8 digit, mirroring mt19937's polynomial jump table but using
// 3x3 modular matrix multiplication in place of GF(2) polynomial
// multiplication.
var (
	jumpTableOnce sync.Once
	jumpTable1    [maxStepBase8][7]matrix
	jumpTable2    [maxStepBase8][7]matrix
)

func ensureJumpTable() {
	jumpTableOnce.Do(buildJumpTable)
}

func buildJumpTable() {
	p1, p2 := baseMatrix1, baseMatrix2
	for i := 0; i < maxStepBase8; i++ {
		acc1, acc2 := p1, p2
		for j := 0; j < 7; j++ {
			jumpTable1[i][j] = acc1
			jumpTable2[i][j] = acc2
			acc1 = matrixDot(acc1, p1, m1)
			acc2 = matrixDot(acc2, p2, m2)
		}
		p1 = matrixDot(p1, p1, m1)
		p1 = matrixDot(p1, p1, m1)
		p1 = matrixDot(p1, p1, m1)
		p2 = matrixDot(p2, p2, m2)
		p2 = matrixDot(p2, p2, m2)
		p2 = matrixDot(p2, p2, m2)
	}
}

// matrixDot computes a*b mod m.
func matrixDot(a, b matrix, m uint64) matrix {
	var out matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum uint64
			for k := 0; k < 3; k++ {
				sum += (a[row*3+k] * b[k*3+col]) % m
			}
			out[row*3+col] = sum % m
		}
	}
	return out
}

// matrixVec computes out = a*v mod m, where v and out are length-3 vectors.
func matrixVec(a matrix, v [3]int64, m uint64) [3]int64 {
	var out [3]int64
	for row := 0; row < 3; row++ {
		var sum uint64
		for k := 0; k < 3; k++ {
			sum += (a[row*3+k] * uint64(v[k])) % m
		}
		out[row] = int64(sum % m)
	}
	return out
}

// matricesForStep evaluates baseMatrix1^step mod m1 and baseMatrix2^step mod
// m2 by multiplying together the precomputed table entries for step's
// base-8 digits.
func matricesForStep(step uint64) (a1, a2 matrix) {
	ensureJumpTable()
	initialised := false
	n := step
	for i := 0; n != 0; i++ {
		digit := n & 7
		if digit != 0 {
			t1 := jumpTable1[i][digit-1]
			t2 := jumpTable2[i][digit-1]
			if !initialised {
				a1, a2 = t1, t2
				initialised = true
			} else {
				a1 = matrixDot(t1, a1, m1)
				a2 = matrixDot(t2, a2, m2)
			}
		}
		n >>= 3
	}
	return a1, a2
}

// advance writes into out the state that results from jumping in ahead by
// the step encoded in a1, a2. in and out may be the same state.
func advance(out, in *State, a1, a2 matrix) {
	v1 := matrixVec(a1, [3]int64{in.s10, in.s11, in.s12}, m1)
	v2 := matrixVec(a2, [3]int64{in.s20, in.s21, in.s22}, m2)
	out.s10, out.s11, out.s12 = v1[0], v1[1], v1[2]
	out.s20, out.s21, out.s22 = v2[0], v2[1], v2[2]
}

// Jump advances state in place by step draws.
func Jump(s *State, step uint64) error {
	if step == 0 {
		return nil
	}
	if step > MaxStep {
		return ErrStepTooLarge
	}
	a1, a2 := matricesForStep(step)
	advance(s, s, a1, a2)
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
	a1, a2 := matricesForStep(step)
	for i := 1; i < len(states); i++ {
		advance(states[i], states[i-1], a1, a2)
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
	a1, a2 := matricesForStep(step)
	for _, s := range states {
		advance(s, s, a1, a2)
	}
	return nil
}

// Reset reseeds a single stream and jumps it ahead by step.
func Reset(s *State, seed, step uint64) (usedDefaultSeed bool, err error) {
	usedDefaultSeed = SeedOrDefault(s, seed)
	err = Jump(s, step)
	return usedDefaultSeed, err
}

// ResetAll reseeds states[0]. When step == 0 the reseeded state is copied
// to every other stream: unlike mt19937, MRG32k3a's reference
// implementation does propagate a fresh zero-step seed to all streams, not
// just the default one. When step != 0 the other streams are re-derived
// from states[0] spaced by step, as in JumpSeq.
func ResetAll(states []*State, seed, step uint64) (usedDefaultSeed bool, err error) {
	usedDefaultSeed = SeedOrDefault(states[0], seed)
	if step == 0 {
		for i := 1; i < len(states); i++ {
			*states[i] = *states[0]
		}
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
//
// The reference C implementation only takes this nstream<=1 direct-jump
// path when nstream is exactly 0; passing nstream==1 explicitly falls into
// its jump_seq loop, whose `for(i=1;i<nstream;i++)` never executes, so the
// single stream is silently never advanced by step. That looks like a
// latent bug rather than a documented behaviour, so this port normalises
// it the way mt19937's own Init already does, and always advances a
// single requested stream.
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
