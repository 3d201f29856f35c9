package metrics

import (
	"math"
	"testing"

	"github.com/amesaru/horizon/internal/sim"
)

func TestKineticEnergy(t *testing.T) {
	w := sim.NewWorld(sim.DefaultParams(), 1)
	w.Particles = []sim.Particle{
		{Vel: sim.Vec2{X: 3, Y: 4}, Mass: 2}, // 0.5*2*25 = 25
	}

	k := NewKineticEnergy()
	k.Observe(w, 0)

	if math.Abs(k.Value()-25) > 1e-9 {
		t.Errorf("kinetic energy = %v, want 25", k.Value())
	}

	k.Reset()
	if k.Value() != 0 {
		t.Errorf("value after reset = %v, want 0", k.Value())
	}
}

func TestKineticEnergyAverages(t *testing.T) {
	w := sim.NewWorld(sim.DefaultParams(), 1)
	w.Particles = []sim.Particle{{Vel: sim.Vec2{X: 1}, Mass: 2}} // 1.0

	k := NewKineticEnergy()
	k.Observe(w, 0)
	w.Particles[0].Vel.X = math.Sqrt(3) // 3.0
	k.Observe(w, 1)

	if math.Abs(k.Value()-2) > 1e-9 {
		t.Errorf("mean kinetic energy = %v, want 2", k.Value())
	}
}

func TestPeakMass(t *testing.T) {
	w := sim.NewWorld(sim.DefaultParams(), 1)

	p := NewPeakMass()
	p.Observe(w, 0)
	if p.Value() != 1000 {
		t.Errorf("peak = %v, want 1000", p.Value())
	}

	w.Holes[0].Mass = 2500
	p.Observe(w, 1)
	w.Holes[0].Mass = 100
	p.Observe(w, 2)

	if p.Value() != 2500 {
		t.Errorf("peak = %v, want 2500", p.Value())
	}
}

func TestDefaults(t *testing.T) {
	ms := Defaults()
	if len(ms) != 4 {
		t.Fatalf("expected 4 default metrics, got %d", len(ms))
	}

	seen := make(map[string]bool)
	for _, m := range ms {
		if seen[m.Name()] {
			t.Errorf("duplicate metric name %s", m.Name())
		}
		seen[m.Name()] = true
	}
}
