package sim

// Particle drifts under the pull of every black hole. Mass is fixed at
// creation; position and velocity are mutated in place by the world step.
// A particle crossing an event horizon is respawned, never freed, so the
// particle count stays constant for the life of the world.
type Particle struct {
	Pos  Vec2
	Vel  Vec2
	Mass float64
}

// BlackHole attracts particles with an inverse-square force. EventHorizon
// is always derived from Mass via Params.EventHorizon and never set
// independently.
type BlackHole struct {
	Pos          Vec2
	Mass         float64
	EventHorizon float64
}

// Wave is the transient burst spawned by a merge: an expanding, fading
// circle that removes itself when Age reaches Lifetime. Presentation-only
// state with no feedback into physics.
type Wave struct {
	Pos       Vec2
	Intensity float64
	Age       float64
	Lifetime  float64
}

// Fraction returns elapsed lifetime in [0,1].
func (w Wave) Fraction() float64 {
	if w.Lifetime <= 0 {
		return 1
	}
	f := w.Age / w.Lifetime
	if f > 1 {
		return 1
	}
	return f
}

// Scale is the rendered size multiplier, growing over the wave's life.
func (w Wave) Scale() float64 { return 1 + w.Fraction()*5 }

// Alpha is the rendered opacity, fading over the wave's life.
func (w Wave) Alpha() float64 { return 1 - w.Fraction() }

// Settings are the user-facing toggles: created once at startup, mutated
// only by input handling.
type Settings struct {
	Paused       bool
	Selected     int
	ParticleSize float64
	TimeScale    float64
}

// Input is the per-frame digest of pointer and key state. The GUI and TUI
// layers translate their host framework's events into this struct; the
// world never queries input devices itself.
type Input struct {
	Pointer  Vec2 // drag target in sim coordinates
	Dragging bool // primary button held

	MassUp   bool // held
	MassDown bool // held

	TogglePause    bool // pressed
	AddHole        bool // pressed
	CycleSelection bool // pressed
	RemoveSelected bool // pressed

	GrowParticles   bool // held
	ShrinkParticles bool // held
	SpeedUp         bool // held
	SlowDown        bool // held
}

// MergeEvent records one black hole merge from the most recent step.
type MergeEvent struct {
	Pos       Vec2
	Mass      float64
	Intensity float64
}

// Metric observes the world once per step and reduces to a single value,
// reported by the headless runner.
type Metric interface {
	Name() string
	Observe(w *World, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every completed step.
type Observer interface {
	OnStep(w *World, t float64)
}
