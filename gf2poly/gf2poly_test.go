package gf2poly

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// naiveMul multiplies two n-limb GF(2) polynomials bit by bit, as a
// reference independent of the Karatsuba machinery under test.
func naiveMul(a, b []uint32, n int) []uint32 {
	r := make([]uint32, 2*n)
	for i := 0; i < n*32; i++ {
		if Coeff(a, i) == 0 {
			continue
		}
		for j := 0; j < n*32; j++ {
			if Coeff(b, j) == 0 {
				continue
			}
			limb, bit := wordBit(i + j)
			r[limb] ^= uint32(1) << uint(bit)
		}
	}
	return r
}

func randPoly(rng *rand.Rand, n int) []uint32 {
	p := make([]uint32, n)
	for i := range p {
		p[i] = rng.Uint32()
	}
	return p
}

func TestMulAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= 14; n++ {
		a := randPoly(rng, n)
		b := randPoly(rng, n)
		got := make([]uint32, 2*n)
		Mul(got, a, b, n)
		want := naiveMul(a, b, n)
		require.Equalf(t, want, got, "n=%d", n)
	}
}

func TestMulUnbalancedAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 1; n <= 8; n++ {
		a := randPoly(rng, 2*n)
		b := randPoly(rng, n)
		got := make([]uint32, 3*n)
		MulUnbalanced(got, a, b, n)

		want := make([]uint32, 3*n)
		lowProd := make([]uint32, 2*n)
		Mul(lowProd, a[:n], b, n)
		copy(want[:2*n], lowProd)
		highProd := make([]uint32, 2*n)
		Mul(highProd, a[n:2*n], b, n)
		for i := range highProd {
			want[n+i] ^= highProd[i]
		}
		require.Equalf(t, want, got, "n=%d", n)
	}
}

// TestModPhiReducesLeadingTerm checks that reducing x^19937 (phi's leading
// term) mod phi yields exactly phi's remaining terms, since phi(x) = 0 mod
// phi implies x^19937 = phi(x) - x^19937 = sum of phi's lower-order terms
// over GF(2).
func TestModPhiReducesLeadingTerm(t *testing.T) {
	const limbs = 1248 // 2*624, enough for any MT19937 jump product
	r := make([]uint32, limbs)
	SetCoeff(r, mt19937PolyDegree)
	tmp := make([]uint32, ModPhiScratchLimbs)

	ModPhi(r, tmp)

	want := make([]uint32, limbs)
	for _, pos := range phiBitPos {
		SetCoeff(want, pos)
	}
	require.Equal(t, want, r)
}

// TestModPhiIdempotent checks that reducing an already-reduced polynomial
// (degree < 19937) leaves it unchanged.
func TestModPhiIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const limbs = 1248
	r := make([]uint32, limbs)
	for i := 0; i < 19937; i++ {
		if rng.Intn(2) == 1 {
			SetCoeff(r, i)
		}
	}
	want := make([]uint32, limbs)
	copy(want, r)

	tmp := make([]uint32, ModPhiScratchLimbs)
	ModPhi(r, tmp)

	require.Equal(t, want, r)
}
