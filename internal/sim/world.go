package sim

import (
	"math"
	"math/rand"
)

// World owns every live collection of the toy: particles, black holes and
// merge waves, plus the user settings. It is stepped once per rendered
// frame, single-threaded; all mutation happens inside Step and Resize.
//
// Within one step the order is fixed: input, physics, merge detection,
// wave aging. Rendering reads the world only after Step returns, so it
// never sees a just-despawned hole.
type World struct {
	Params    Params
	Particles []Particle
	Holes     []BlackHole
	Waves     []Wave
	Settings  Settings

	rng    *rand.Rand
	events []MergeEvent

	consumed int
	merges   int
}

// NewWorld seeds the particle field and spawns the initial black hole at
// the viewport center.
func NewWorld(p Params, seed int64) *World {
	w := &World{
		Params: p,
		rng:    rand.New(rand.NewSource(seed)),
		Settings: Settings{
			ParticleSize: 1,
			TimeScale:    1,
		},
	}

	w.Particles = make([]Particle, p.Particles)
	for i := range w.Particles {
		w.Particles[i] = Particle{
			Pos:  Vec2{w.rng.Float64() * p.Width, w.rng.Float64() * p.Height},
			Vel:  Vec2{w.rng.Float64()*2 - 1, w.rng.Float64()*2 - 1},
			Mass: 0.1 + w.rng.Float64()*0.9,
		}
	}

	w.Holes = []BlackHole{{
		Pos:          Vec2{p.Width / 2, p.Height / 2},
		Mass:         p.HoleMass,
		EventHorizon: p.EventHorizon(p.HoleMass),
	}}

	return w
}

// Step advances the world by one frame. dt is the wall-clock frame delta;
// the user time scale is applied to particle integration only, never to
// wave lifetimes. Pausing freezes particle state but input, merging and
// wave aging still run, matching the interactive behavior of the toy.
func (w *World) Step(in Input, dt float64) {
	w.events = w.events[:0]

	w.applyInput(in)

	if !w.Settings.Paused {
		w.integrate(dt * w.Settings.TimeScale)
	}

	w.mergeHoles()
	w.ageWaves(dt)
}

// AddHole spawns a fresh black hole of the configured mass at a random
// position. Selection is left untouched.
func (w *World) AddHole() {
	w.Holes = append(w.Holes, BlackHole{
		Pos:          Vec2{w.rng.Float64() * w.Params.Width, w.rng.Float64() * w.Params.Height},
		Mass:         w.Params.HoleMass,
		EventHorizon: w.Params.EventHorizon(w.Params.HoleMass),
	})
}

// Events returns the merges produced by the most recent Step. The slice is
// reused; callers must not retain it across steps.
func (w *World) Events() []MergeEvent { return w.events }

// Consumed reports how many particles have been captured and respawned.
func (w *World) Consumed() int { return w.consumed }

// Merges reports how many black hole merges have occurred.
func (w *World) Merges() int { return w.merges }

func (w *World) applyInput(in Input) {
	s := &w.Settings

	if in.TogglePause {
		s.Paused = !s.Paused
	}

	if in.AddHole {
		w.AddHole()
		// Selection follows the newest hole.
		s.Selected = len(w.Holes) - 1
	}

	if in.CycleSelection && len(w.Holes) > 0 {
		s.Selected = (s.Selected + 1) % len(w.Holes)
	}

	if in.RemoveSelected && len(w.Holes) > 1 {
		w.Holes = append(w.Holes[:s.Selected], w.Holes[s.Selected+1:]...)
		w.clampSelection()
	}

	h := &w.Holes[s.Selected]
	if in.Dragging {
		h.Pos = in.Pointer
	}
	if in.MassUp {
		h.Mass += w.Params.MassUpStep
	}
	if in.MassDown {
		h.Mass = math.Max(h.Mass-w.Params.MassDownStep, w.Params.MinMass)
	}
	h.EventHorizon = w.Params.EventHorizon(h.Mass)

	if in.GrowParticles {
		s.ParticleSize += w.Params.SizeStep
	}
	if in.ShrinkParticles {
		s.ParticleSize = math.Max(s.ParticleSize-w.Params.SizeStep, w.Params.MinSize)
	}
	if in.SpeedUp {
		s.TimeScale *= w.Params.ScaleFactor
	}
	if in.SlowDown {
		s.TimeScale /= w.Params.ScaleFactor
	}
}

// integrate runs the force/consumption pass over every particle with the
// already-scaled timestep.
func (w *World) integrate(sdt float64) {
	for i := range w.Particles {
		p := &w.Particles[i]

		for _, h := range w.Holes {
			d := h.Pos.Sub(p.Pos)
			dist := d.Length()

			// dist == 0 means the hole sits exactly on the particle;
			// normalizing would divide by zero, so treat it as capture.
			// Exactly on the horizon counts as inside.
			if dist <= h.EventHorizon || dist == 0 {
				w.respawn(p)
				continue
			}

			force := (h.Mass * p.Mass) / (dist * dist)
			p.Vel = p.Vel.Add(d.Normalize().Scale(force * sdt))
		}

		p.Pos = p.Pos.Add(p.Vel.Scale(sdt))
		p.Pos.X = wrap(p.Pos.X, w.Params.Width)
		p.Pos.Y = wrap(p.Pos.Y, w.Params.Height)
	}
}

func (w *World) respawn(p *Particle) {
	p.Pos = Vec2{w.rng.Float64() * w.Params.Width, w.rng.Float64() * w.Params.Height}
	p.Vel = Vec2{w.rng.Float64()*2 - 1, w.rng.Float64()*2 - 1}
	w.consumed++
}

// mergeHoles collapses every pair of holes closer than the merge distance
// into a fresh hole at their midpoint with summed mass. A hole merges at
// most once per frame; chains resolve on subsequent frames. If the
// selected hole is consumed, selection moves to the hole it merged into.
func (w *World) mergeHoles() {
	if len(w.Holes) < 2 {
		return
	}

	taken := make([]bool, len(w.Holes))
	var merged []BlackHole
	mergedOf := make(map[int]int) // source index -> index into merged

	for i := 0; i < len(w.Holes); i++ {
		if taken[i] {
			continue
		}
		for j := i + 1; j < len(w.Holes); j++ {
			if taken[j] {
				continue
			}
			if w.Holes[i].Pos.Distance(w.Holes[j].Pos) >= w.Params.MergeDistance {
				continue
			}

			taken[i], taken[j] = true, true
			mass := w.Holes[i].Mass + w.Holes[j].Mass
			nh := BlackHole{
				Pos:          w.Holes[i].Pos.Midpoint(w.Holes[j].Pos),
				Mass:         mass,
				EventHorizon: w.Params.EventHorizon(mass),
			}
			mergedOf[i], mergedOf[j] = len(merged), len(merged)
			merged = append(merged, nh)

			intensity := mass / w.Params.RefMass
			w.Waves = append(w.Waves, Wave{
				Pos:       nh.Pos,
				Intensity: intensity,
				Lifetime:  w.Params.WaveLifetime,
			})
			w.events = append(w.events, MergeEvent{Pos: nh.Pos, Mass: mass, Intensity: intensity})
			w.merges++
			break
		}
	}

	if len(merged) == 0 {
		return
	}

	sel := w.Settings.Selected
	next := make([]BlackHole, 0, len(w.Holes))
	newSel := -1
	for i, h := range w.Holes {
		if taken[i] {
			continue
		}
		if i == sel {
			newSel = len(next)
		}
		next = append(next, h)
	}
	if mi, ok := mergedOf[sel]; ok {
		newSel = len(next) + mi
	}
	next = append(next, merged...)

	w.Holes = next
	if newSel >= 0 {
		w.Settings.Selected = newSel
	}
	w.clampSelection()
}

func (w *World) ageWaves(dt float64) {
	live := w.Waves[:0]
	for _, wave := range w.Waves {
		wave.Age += dt
		if wave.Age < wave.Lifetime {
			live = append(live, wave)
		}
	}
	w.Waves = live
}

// Resize updates the viewport bounds. Particles left out of bounds are
// wrapped back in, consistent with the toroidal topology; holes are
// clamped so the selected hole never leaves reach of the pointer.
func (w *World) Resize(width, height float64) {
	w.Params.Width = width
	w.Params.Height = height

	for i := range w.Particles {
		w.Particles[i].Pos.X = wrap(w.Particles[i].Pos.X, width)
		w.Particles[i].Pos.Y = wrap(w.Particles[i].Pos.Y, height)
	}
	for i := range w.Holes {
		w.Holes[i].Pos.X = math.Min(w.Holes[i].Pos.X, width)
		w.Holes[i].Pos.Y = math.Min(w.Holes[i].Pos.Y, height)
	}
}

func (w *World) clampSelection() {
	if w.Settings.Selected >= len(w.Holes) {
		w.Settings.Selected = len(w.Holes) - 1
	}
	if w.Settings.Selected < 0 {
		w.Settings.Selected = 0
	}
}

// KineticEnergy sums 0.5*m*v^2 over all particles.
func (w *World) KineticEnergy() float64 {
	ke := 0.0
	for _, p := range w.Particles {
		v2 := p.Vel.X*p.Vel.X + p.Vel.Y*p.Vel.Y
		ke += 0.5 * p.Mass * v2
	}
	return ke
}

// TotalHoleMass sums the masses of all live black holes.
func (w *World) TotalHoleMass() float64 {
	m := 0.0
	for _, h := range w.Holes {
		m += h.Mass
	}
	return m
}

// wrap maps x into [0,limit) modularly, handling any magnitude of
// overshoot in either direction.
func wrap(x, limit float64) float64 {
	m := math.Mod(x, limit)
	if m < 0 {
		m += limit
	}
	return m
}
