package prand

import (
	"github.com/skiprand/prand/internal/mrg32k3a"
	"github.com/skiprand/prand/internal/mt19937"
)

// mtGenerator adapts a slice of mt19937 states to the generator interface.
type mtGenerator struct {
	states []*mt19937.State
}

func (g *mtGenerator) uint64(stream int) uint64       { return uint64(g.states[stream].Uint32()) }
func (g *mtGenerator) float64(stream int) float64     { return g.states[stream].Float64() }
func (g *mtGenerator) float64Open(stream int) float64 { return g.states[stream].Float64Open() }
func (g *mtGenerator) numStream() int                 { return len(g.states) }
func (g *mtGenerator) max() uint64                    { return mt19937.Max }

func (g *mtGenerator) reset(stream int, seed, step uint64) (bool, error) {
	return mt19937.Reset(g.states[stream], seed, step)
}

func (g *mtGenerator) resetAll(seed, step uint64) (bool, error) {
	return mt19937.ResetAll(g.states, seed, step)
}

func (g *mtGenerator) jump(stream int, step uint64) error {
	return mt19937.Jump(g.states[stream], step)
}

func (g *mtGenerator) jumpAll(step uint64) error {
	return mt19937.JumpAll(g.states, step)
}

// mrgGenerator adapts a slice of mrg32k3a states to the generator
// interface.
type mrgGenerator struct {
	states []*mrg32k3a.State
}

func (g *mrgGenerator) uint64(stream int) uint64       { return g.states[stream].Uint64() }
func (g *mrgGenerator) float64(stream int) float64     { return g.states[stream].Float64() }
func (g *mrgGenerator) float64Open(stream int) float64 { return g.states[stream].Float64Open() }
func (g *mrgGenerator) numStream() int                 { return len(g.states) }
func (g *mrgGenerator) max() uint64                    { return mrg32k3a.Max }

func (g *mrgGenerator) reset(stream int, seed, step uint64) (bool, error) {
	return mrg32k3a.Reset(g.states[stream], seed, step)
}

func (g *mrgGenerator) resetAll(seed, step uint64) (bool, error) {
	return mrg32k3a.ResetAll(g.states, seed, step)
}

func (g *mrgGenerator) jump(stream int, step uint64) error {
	return mrg32k3a.Jump(g.states[stream], step)
}

func (g *mrgGenerator) jumpAll(step uint64) error {
	return mrg32k3a.JumpAll(g.states, step)
}
