package sim

import (
	"context"
	"fmt"
)

// FrameColumns names the per-step series a Runner samples, in the order
// they appear in Result.Frames rows.
var FrameColumns = []string{"kinetic", "hole_mass", "holes", "consumed", "waves"}

// Config drives a headless run of the world at a fixed timestep.
type Config struct {
	Dt       float64
	Duration float64
	Seed     int64
	Holes    int // initial black hole count; 0 means 1

	// Script supplies the input for each step. Nil runs hands-off.
	Script func(step int, t float64) Input
}

// Result collects the sampled series and final metric values of a run.
type Result struct {
	Times   []float64
	Frames  [][]float64
	Metrics map[string]float64
}

// Runner steps a world non-interactively for a fixed duration, sampling
// one frame row per step. It exists for the CLI and for tests; the GUI
// and TUI drive the world directly.
type Runner struct {
	params    Params
	metrics   []Metric
	observers []Observer
}

func NewRunner(p Params) *Runner {
	return &Runner{params: p}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validate(cfg); err != nil {
		return nil, err
	}

	world := NewWorld(r.params, cfg.Seed)
	for i := 1; i < cfg.Holes; i++ {
		world.AddHole()
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps),
		Frames:  make([][]float64, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		var in Input
		if cfg.Script != nil {
			in = cfg.Script(i, t)
		}

		world.Step(in, cfg.Dt)
		t += cfg.Dt

		for _, m := range r.metrics {
			m.Observe(world, t)
		}
		for _, o := range r.observers {
			o.OnStep(world, t)
		}

		result.Times = append(result.Times, t)
		result.Frames = append(result.Frames, []float64{
			world.KineticEnergy(),
			world.TotalHoleMass(),
			float64(len(world.Holes)),
			float64(world.Consumed()),
			float64(len(world.Waves)),
		})
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if r.params.Particles <= 0 {
		return fmt.Errorf("particle count must be positive, got %d", r.params.Particles)
	}
	if r.params.Width <= 0 || r.params.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", r.params.Width, r.params.Height)
	}
	return nil
}
