package sim

import "math"

// Params are the physical tuning constants of a world, fixed at creation.
type Params struct {
	Width  float64
	Height float64

	Particles int

	RefMass       float64 // mass at which the event horizon equals BaseRadius
	BaseRadius    float64
	MinMass       float64 // floor applied to user mass adjustments
	MergeDistance float64
	HoleMass      float64 // mass of the initial and of freshly added holes
	WaveLifetime  float64

	MassUpStep   float64 // per frame while the increase key is held
	MassDownStep float64
	SizeStep     float64
	MinSize      float64
	ScaleFactor  float64 // time-scale multiplier per frame while held
}

// DefaultParams mirrors the classic 800x600 toy with 100 particles.
func DefaultParams() Params {
	return Params{
		Width:         800,
		Height:        600,
		Particles:     100,
		RefMass:       1000,
		BaseRadius:    15,
		MinMass:       1,
		MergeDistance: 30,
		HoleMass:      1000,
		WaveLifetime:  2,
		MassUpStep:    1,
		MassDownStep:  10,
		SizeStep:      0.1,
		MinSize:       0.1,
		ScaleFactor:   1.1,
	}
}

// EventHorizon derives the horizon radius from a mass. This is the only
// place the radius is computed; holes never store a stale value.
func (p Params) EventHorizon(mass float64) float64 {
	return math.Sqrt(mass/p.RefMass) * p.BaseRadius
}
