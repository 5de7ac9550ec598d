// Package mrg32k3a implements L'Ecuyer's MRG32k3a combined multiple
// recursive generator and its jump-ahead operation.
// ref: https://doi.org/10.1287/opre.47.1.159
package mrg32k3a

import "errors"

const (
	m1 = 4294967087 // 2^32 - 209
	m2 = 4294944443 // 2^32 - 22853

	a12 = 1403580
	a13 = -810728
	a21 = 527612
	a23 = -1370589

	// add1, add2 keep the recurrence's intermediate sum non-negative
	// before the final reduction: add1 = m1*810728, add2 = m2*1370589.
	add1 = 3482050076509336
	add2 = 5886603609186927

	// norm maps a raw draw to [0,1); normOpen maps it to (0,1).
	norm     = 1.0 / (m1 + 1)
	normOpen = 1.0 / (m1 + 2)

	// lcgMultiplier, lcgIncrement drive the seeding LCG: n' = 69069n+1.
	lcgMultiplier = 69069
	lcgIncrement  = 1

	// DefaultSeed replaces a caller-supplied zero seed.
	DefaultSeed = 1

	// Max is the largest value Uint64 can return; its smallest is 1.
	Max = m1

	maxStepBase8 = 21
	// MaxStep is the largest step jump-ahead will accept.
	MaxStep = 0x7fffffffffffffff
)

// ErrStepTooLarge is returned by Jump, JumpSeq, and JumpAll when step
// exceeds MaxStep.
var ErrStepTooLarge = errors.New("mrg32k3a: step size is too large to jump ahead")

// State is one MRG32k3a generator state: two component triples, each held
// mod its own prime.
type State struct {
	s10, s11, s12 int64
	s20, s21, s22 int64
}

func lcg(n uint64) uint64 {
	return (lcgMultiplier*n + lcgIncrement) & 0xffffffff
}

// Seed initialises state from six successive outputs of the reference LCG,
// the first three reduced mod m1 and the last three mod m2.
func Seed(s *State, seed uint64) {
	n := lcg(seed)
	s.s10 = int64(n % m1)
	n = lcg(n)
	s.s11 = int64(n % m1)
	n = lcg(n)
	s.s12 = int64(n % m1)

	n = lcg(n)
	s.s20 = int64(n % m2)
	n = lcg(n)
	s.s21 = int64(n % m2)
	n = lcg(n)
	s.s22 = int64(n % m2)
}

// SeedOrDefault seeds state with seed, substituting DefaultSeed and
// reporting true when seed is zero.
func SeedOrDefault(s *State, seed uint64) (usedDefault bool) {
	if seed == 0 {
		Seed(s, DefaultSeed)
		return true
	}
	Seed(s, seed)
	return false
}

// Uint64 draws the next output, in [1, m1], and updates state.
func (s *State) Uint64() uint64 {
	p1 := (a12*s.s11 + a13*s.s10 + add1) % m1
	s.s10, s.s11, s.s12 = s.s11, s.s12, p1

	p2 := (a21*s.s22 + a23*s.s20 + add2) % m2
	s.s20, s.s21, s.s22 = s.s21, s.s22, p2

	if p1 <= p2 {
		return uint64(p1 - p2 + m1)
	}
	return uint64(p1 - p2)
}

// Float64 draws a pseudo-random float in [0,1).
func (s *State) Float64() float64 {
	return float64(s.Uint64()) * norm
}

// Float64Open draws a pseudo-random float in (0,1).
func (s *State) Float64Open() float64 {
	return (float64(s.Uint64()) + 1) * normOpen
}
