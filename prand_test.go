package prand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMultiStreamMTMatchesSingleStream checks scenario 3: the first draw of
// stream i from a 5-stream MT19937 handle equals the (i*step)-th draw of a
// single-stream handle seeded the same way.
func TestMultiStreamMTMatchesSingleStream(t *testing.T) {
	const nstream = 5
	const step = 100000

	ref, _, err := Init(MT19937, 1, 1, 0)
	require.NoError(t, err)

	multi, _, err := Init(MT19937, 1, nstream, step)
	require.NoError(t, err)
	require.Equal(t, nstream, multi.NumStream())

	drawn := 0
	for i := 0; i < nstream; i++ {
		for ; drawn < i*step; drawn++ {
			ref.GetU64(0)
		}
		require.Equal(t, ref.GetU64(0), multi.GetU64(i))
		drawn++
	}
}

// TestMultiStreamMRGMatchesSingleStream checks scenario 4, the MRG32k3a
// analogue of TestMultiStreamMTMatchesSingleStream.
func TestMultiStreamMRGMatchesSingleStream(t *testing.T) {
	const nstream = 5
	const step = 100000

	ref, _, err := Init(MRG32K3A, 1, 1, 0)
	require.NoError(t, err)

	multi, _, err := Init(MRG32K3A, 1, nstream, step)
	require.NoError(t, err)

	drawn := 0
	for i := 0; i < nstream; i++ {
		for ; drawn < i*step; drawn++ {
			ref.GetU64(0)
		}
		require.Equal(t, ref.GetU64(0), multi.GetU64(i))
		drawn++
	}
}

// TestOversizeStepRejected checks scenario 5.
func TestOversizeStepRejected(t *testing.T) {
	h, _, err := Init(MT19937, 1, 1, MaxStep+1)
	require.Nil(t, h)
	require.ErrorIs(t, err, ErrStep)
}

// TestZeroSeedBehavesAsDefault checks scenario 6: a zero seed succeeds,
// reports the substitution, and produces the same stream as seed=1.
func TestZeroSeedBehavesAsDefault(t *testing.T) {
	withZero, usedDefault, err := Init(MRG32K3A, 0, 2, 10)
	require.NoError(t, err)
	require.True(t, usedDefault)

	withOne, usedDefault2, err := Init(MRG32K3A, 1, 2, 10)
	require.NoError(t, err)
	require.False(t, usedDefault2)

	for i := 0; i < 2; i++ {
		for n := 0; n < 5; n++ {
			require.Equal(t, withOne.GetU64(i), withZero.GetU64(i))
		}
	}
}

func TestBoundsAndKind(t *testing.T) {
	mt, _, err := Init(MT19937, 1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, MT19937, mt.Kind())
	min, max := mt.Bounds()
	require.Equal(t, uint64(0), min)
	require.Equal(t, uint64(0xffffffff), max)

	mrg, _, err := Init(MRG32K3A, 1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, MRG32K3A, mrg.Kind())
	min, max = mrg.Bounds()
	require.Equal(t, uint64(1), min)
	for i := 0; i < 1000; i++ {
		v := mrg.GetU64(0)
		require.GreaterOrEqual(t, v, min)
		require.LessOrEqual(t, v, max)
	}
}

func TestUnknownKindRejected(t *testing.T) {
	h, _, err := Init(Kind(99), 1, 1, 0)
	require.Nil(t, h)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestErrmsgTable(t *testing.T) {
	require.Equal(t, "no error", Errmsg(nil))
	require.Equal(t, "the step size for jumping ahead is too large", Errmsg(ErrStep))
	require.Equal(t, "the type of the random number generator is undefined", Errmsg(ErrUnknownKind))
}

func TestDefaultStreamAccessors(t *testing.T) {
	a, _, err := Init(MT19937, 42, 3, 7)
	require.NoError(t, err)
	b, _, err := Init(MT19937, 42, 3, 7)
	require.NoError(t, err)

	require.Equal(t, a.GetU64(0), b.GetU64Default())
	require.Equal(t, a.GetUnitInterval(0), b.GetUnitIntervalDefault())
	require.Equal(t, a.GetUnitIntervalOpen(0), b.GetUnitIntervalOpenDefault())
}
