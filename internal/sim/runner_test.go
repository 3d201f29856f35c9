package sim

import (
	"context"
	"testing"
)

func TestRunnerRun(t *testing.T) {
	r := NewRunner(DefaultParams())

	cfg := Config{Dt: 0.02, Duration: 1.0, Seed: 42}
	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Times) != 50 {
		t.Errorf("expected 50 samples, got %d", len(result.Times))
	}
	if len(result.Frames) != 50 {
		t.Errorf("expected 50 frames, got %d", len(result.Frames))
	}
	for i, frame := range result.Frames {
		if len(frame) != len(FrameColumns) {
			t.Fatalf("frame %d has %d columns, want %d", i, len(frame), len(FrameColumns))
		}
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		cfg    Config
	}{
		{"zero dt", DefaultParams(), Config{Dt: 0, Duration: 1}},
		{"negative dt", DefaultParams(), Config{Dt: -0.1, Duration: 1}},
		{"zero duration", DefaultParams(), Config{Dt: 0.1, Duration: 0}},
		{"no particles", Params{Width: 800, Height: 600}, Config{Dt: 0.1, Duration: 1}},
		{"no viewport", Params{Particles: 10}, Config{Dt: 0.1, Duration: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRunner(tt.params).Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunnerScript(t *testing.T) {
	r := NewRunner(DefaultParams())

	cfg := Config{
		Dt:       0.02,
		Duration: 0.2,
		Seed:     1,
		Script: func(step int, t float64) Input {
			return Input{AddHole: step == 0}
		},
	}

	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// The scripted AddHole shows up in the "holes" column unless the
	// random spawn happened to merge immediately.
	holes := result.Frames[0][2]
	if holes != 2 && holes != 1 {
		t.Errorf("holes column = %v, want 2 (or 1 after instant merge)", holes)
	}
}

func TestRunnerMetrics(t *testing.T) {
	r := NewRunner(DefaultParams())

	m := &countingMetric{}
	r.AddMetric(m)

	cfg := Config{Dt: 0.02, Duration: 1.0, Seed: 3}
	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if m.count != 50 {
		t.Errorf("expected 50 observations, got %d", m.count)
	}
	if _, ok := result.Metrics["count"]; !ok {
		t.Error("metric missing from result")
	}
}

func TestRunnerCanceled(t *testing.T) {
	r := NewRunner(DefaultParams())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Run(ctx, Config{Dt: 0.02, Duration: 1.0}); err == nil {
		t.Error("expected context error, got nil")
	}
}

func TestEnsemble(t *testing.T) {
	e := NewEnsemble(DefaultParams(), 4, 100)

	results, err := e.Run(context.Background(), Config{Dt: 0.02, Duration: 0.5})
	if err != nil {
		t.Fatalf("ensemble run failed: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if len(r.Times) != 25 {
			t.Errorf("run %d: expected 25 samples, got %d", i, len(r.Times))
		}
	}
}

type countingMetric struct {
	count int
}

func (m *countingMetric) Name() string                { return "count" }
func (m *countingMetric) Observe(w *World, t float64) { m.count++ }
func (m *countingMetric) Value() float64              { return float64(m.count) }
func (m *countingMetric) Reset()                      { m.count = 0 }
