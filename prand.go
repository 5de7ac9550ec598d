// Package prand provides a uniform handle over two jump-ahead pseudo-random
// number generators, MT19937 and MRG32k3a, so a caller can split one long
// reference sequence into N non-overlapping streams without knowing either
// generator's internals.
//
// A caller asking for N streams with step k gets back stream i seeded so
// that its first draw is the (i*k)-th draw of the single-stream reference
// sequence with the same seed — see the mt19937 and mrg32k3a packages for
// how each generator actually jumps ahead.
package prand

import (
	"github.com/pkg/errors"

	"github.com/skiprand/prand/internal/mrg32k3a"
	"github.com/skiprand/prand/internal/mt19937"
)

// Kind selects which generator a Handle wraps.
type Kind int

const (
	// MT19937 selects the Mersenne Twister generator.
	MT19937 Kind = iota
	// MRG32K3A selects L'Ecuyer's combined multiple recursive generator.
	MRG32K3A
)

func (k Kind) String() string {
	switch k {
	case MT19937:
		return "MT19937"
	case MRG32K3A:
		return "MRG32K3A"
	default:
		return "unknown"
	}
}

// MaxStep is the largest step jump-ahead will accept, shared by both
// generators.
const MaxStep = mt19937.MaxStep

// Sentinel errors, matching spec's negative error codes. errors.Is works
// against these regardless of which generator produced the underlying
// failure.
var (
	// ErrMemory reports that the handle or its state slots could not be
	// allocated. Go's runtime does not offer a recoverable allocation
	// failure, so this is unreachable in practice; it is kept for parity
	// with the C API's error-code table.
	ErrMemory = errors.New("prand: failed to allocate memory for the random number generator")
	// ErrMemoryJump is the jump-scratch analogue of ErrMemory, equally
	// unreachable under normal operation in Go.
	ErrMemoryJump = errors.New("prand: failed to allocate memory for jumping ahead")
	// ErrStep reports a step size larger than MaxStep.
	ErrStep = errors.New("prand: the step size for jumping ahead is too large")
	// ErrUnknownKind reports an invalid Kind passed to Init.
	ErrUnknownKind = errors.New("prand: the type of the random number generator is undefined")
	// WarnSeed is not an error: it reports that a zero seed was replaced by
	// the generator's default seed. It is never returned from a method; it
	// is only ever compared against with errors.Is after a call reports
	// usedDefaultSeed through its bool return.
	WarnSeed = errors.New("prand: invalid seed value")
)

// Errmsg returns a human-readable message for one of this package's
// sentinel errors, or "no error" for nil, matching the C library's error
// code table.
func Errmsg(err error) string {
	switch {
	case err == nil:
		return "no error"
	case errors.Is(err, ErrMemory):
		return "failed to allocate memory for the random number generator"
	case errors.Is(err, ErrMemoryJump):
		return "failed to allocate memory for jumping ahead"
	case errors.Is(err, ErrStep):
		return "the step size for jumping ahead is too large"
	case errors.Is(err, ErrUnknownKind):
		return "the type of the random number generator is undefined"
	case errors.Is(err, WarnSeed):
		return "invalid seed value"
	default:
		return "undefined error code"
	}
}

// generator is the capability set spec.md §9 calls for: seed, step, and the
// three draw shapes, implemented once per concrete generator kind.
type generator interface {
	uint64(stream int) uint64
	float64(stream int) float64
	float64Open(stream int) float64
	reset(stream int, seed, step uint64) (usedDefaultSeed bool, err error)
	resetAll(seed, step uint64) (usedDefaultSeed bool, err error)
	jump(stream int, step uint64) error
	jumpAll(step uint64) error
	numStream() int
	max() uint64
}

// Handle is a uniform handle over an MT19937 or MRG32k3a generator split
// into one or more independent jump-ahead streams. The zero Handle is not
// usable; construct one with Init.
type Handle struct {
	kind Kind
	gen  generator
}

// Init allocates a Handle for the chosen generator kind with nstream
// streams (nstream == 0 is normalized to 1), seeding stream 0 from seed
// (substituting the generator's default seed, and reporting usedDefault,
// if seed is zero) and spacing the remaining streams step draws apart.
//
// When nstream <= 1 the single stream is advanced by step once, matching
// a plain jump. step must not exceed MaxStep.
func Init(kind Kind, seed uint64, nstream int, step uint64) (h *Handle, usedDefaultSeed bool, err error) {
	if step > MaxStep {
		return nil, false, ErrStep
	}
	switch kind {
	case MT19937:
		states, used, err := mt19937.Init(seed, nstream, step)
		if err != nil {
			return nil, used, translateStepErr(err)
		}
		return &Handle{kind: kind, gen: &mtGenerator{states: states}}, used, nil
	case MRG32K3A:
		states, used, err := mrg32k3a.Init(seed, nstream, step)
		if err != nil {
			return nil, used, translateStepErr(err)
		}
		return &Handle{kind: kind, gen: &mrgGenerator{states: states}}, used, nil
	default:
		return nil, false, ErrUnknownKind
	}
}

// Destroy releases h's resources. It is idempotent on a fresh Handle;
// calling any other method after Destroy is undefined, matching the C
// API's lifecycle contract. Go's garbage collector reclaims the backing
// memory regardless, so Destroy exists for API parity rather than
// necessity.
func (h *Handle) Destroy() {
	h.gen = nil
}

// Kind reports which generator h wraps.
func (h *Handle) Kind() Kind {
	return h.kind
}

// NumStream reports how many independent streams h holds.
func (h *Handle) NumStream() int {
	return h.gen.numStream()
}

// Bounds reports the inclusive range of GetU64's output: [0, max] for
// MT19937, [1, max] for MRG32k3a.
func (h *Handle) Bounds() (min, max uint64) {
	if h.kind == MRG32K3A {
		return 1, h.gen.max()
	}
	return 0, h.gen.max()
}

// GetU64 draws the next raw output from the given stream.
func (h *Handle) GetU64(stream int) uint64 {
	return h.gen.uint64(stream)
}

// GetUnitInterval draws the next output from the given stream, mapped to
// [0, 1).
func (h *Handle) GetUnitInterval(stream int) float64 {
	return h.gen.float64(stream)
}

// GetUnitIntervalOpen draws the next output from the given stream, mapped
// to (0, 1).
func (h *Handle) GetUnitIntervalOpen(stream int) float64 {
	return h.gen.float64Open(stream)
}

// GetU64Default draws the next raw output from stream 0, the default
// stream.
func (h *Handle) GetU64Default() uint64 {
	return h.GetU64(0)
}

// GetUnitIntervalDefault draws the next output from stream 0, mapped to
// [0, 1).
func (h *Handle) GetUnitIntervalDefault() float64 {
	return h.GetUnitInterval(0)
}

// GetUnitIntervalOpenDefault draws the next output from stream 0, mapped
// to (0, 1).
func (h *Handle) GetUnitIntervalOpenDefault() float64 {
	return h.GetUnitIntervalOpen(0)
}

// Reset reseeds the given stream and jumps it ahead by step.
func (h *Handle) Reset(stream int, seed, step uint64) (usedDefaultSeed bool, err error) {
	if step > MaxStep {
		return false, ErrStep
	}
	used, err := h.gen.reset(stream, seed, step)
	return used, translateStepErr(err)
}

// ResetAll reseeds stream 0 and, for step != 0, re-derives every other
// stream from it, spaced step draws apart. For step == 0, MRG32k3a copies
// stream 0 verbatim into every other stream, while MT19937 leaves the other
// streams untouched — see mrg32k3a.ResetAll and mt19937.ResetAll for the
// asymmetry this preserves from the reference implementations.
func (h *Handle) ResetAll(seed, step uint64) (usedDefaultSeed bool, err error) {
	if step > MaxStep {
		return false, ErrStep
	}
	used, err := h.gen.resetAll(seed, step)
	return used, translateStepErr(err)
}

// Jump advances the given stream by step draws without reseeding.
func (h *Handle) Jump(stream int, step uint64) error {
	if step > MaxStep {
		return ErrStep
	}
	return translateStepErr(h.gen.jump(stream, step))
}

// JumpAll advances every stream by step draws, independently, without
// reseeding.
func (h *Handle) JumpAll(step uint64) error {
	if step > MaxStep {
		return ErrStep
	}
	return translateStepErr(h.gen.jumpAll(step))
}

// Errmsg returns a human-readable message for err, using the same table as
// the package-level Errmsg function.
func (h *Handle) Errmsg(err error) string {
	return Errmsg(err)
}

func translateStepErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mt19937.ErrStepTooLarge) || errors.Is(err, mrg32k3a.ErrStepTooLarge) {
		return ErrStep
	}
	return err
}
