// Package metrics provides per-run reductions over the world, reported by
// the headless runner.
package metrics

import (
	"github.com/amesaru/horizon/internal/sim"
)

// KineticEnergy tracks the mean total particle kinetic energy.
type KineticEnergy struct {
	samples int
	total   float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(w *sim.World, t float64) {
	k.total += w.KineticEnergy()
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// Consumed reports the total number of particle captures.
type Consumed struct {
	final int
}

func NewConsumed() *Consumed { return &Consumed{} }

func (c *Consumed) Name() string                    { return "consumed" }
func (c *Consumed) Observe(w *sim.World, t float64) { c.final = w.Consumed() }
func (c *Consumed) Value() float64                  { return float64(c.final) }
func (c *Consumed) Reset()                          { c.final = 0 }

// Merges reports the total number of black hole merges.
type Merges struct {
	final int
}

func NewMerges() *Merges { return &Merges{} }

func (m *Merges) Name() string                    { return "merges" }
func (m *Merges) Observe(w *sim.World, t float64) { m.final = w.Merges() }
func (m *Merges) Value() float64                  { return float64(m.final) }
func (m *Merges) Reset()                          { m.final = 0 }

// PeakMass tracks the heaviest black hole seen during a run.
type PeakMass struct {
	peak float64
}

func NewPeakMass() *PeakMass { return &PeakMass{} }

func (p *PeakMass) Name() string { return "peak_mass" }

func (p *PeakMass) Observe(w *sim.World, t float64) {
	for _, h := range w.Holes {
		if h.Mass > p.peak {
			p.peak = h.Mass
		}
	}
}

func (p *PeakMass) Value() float64 { return p.peak }
func (p *PeakMass) Reset()         { p.peak = 0 }

// Defaults is the metric set the CLI attaches to every run.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewKineticEnergy(),
		NewConsumed(),
		NewMerges(),
		NewPeakMass(),
	}
}
