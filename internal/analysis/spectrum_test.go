package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumEmpty(t *testing.T) {
	if got := PowerSpectrum(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestDominantFrequencySine(t *testing.T) {
	// 4 hz sine sampled at 128 hz over 2 seconds.
	dt := 1.0 / 128.0
	data := make([]float64, 256)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) * dt)
	}

	freq, power := DominantFrequency(data, dt)
	if math.Abs(freq-4) > 0.5 {
		t.Errorf("dominant frequency = %v, want ~4", freq)
	}
	if power <= 0 {
		t.Errorf("power = %v, want > 0", power)
	}
}

func TestDominantFrequencyShortSeries(t *testing.T) {
	freq, power := DominantFrequency([]float64{1, 2}, 0.01)
	if freq != 0 || power != 0 {
		t.Errorf("expected 0,0 for short series, got %v,%v", freq, power)
	}
}

func TestDetrend(t *testing.T) {
	out := Detrend([]float64{1, 2, 3})

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if math.Abs(sum) > 1e-12 {
		t.Errorf("detrended sum = %v, want 0", sum)
	}
	if math.Abs(out[0]+1) > 1e-12 {
		t.Errorf("out[0] = %v, want -1", out[0])
	}
}
