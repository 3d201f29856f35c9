// Package audio sonifies the simulation: a low pad whose filter opens
// with the particle field's kinetic energy, and a decaying chirp for
// every black hole merge. Output-only; if no stream can be opened the
// processor stays inactive and the toy runs silent.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

type Processor struct {
	Stream *portaudio.Stream
	Active bool

	// Synthesis state, touched only by the stream callback.
	time        float64
	filterState [2]float64

	// Merge chirp envelope.
	chirpAmp   float64
	chirpPhase float64

	// Physics inputs, written by the render thread.
	mu           sync.Mutex
	totalEnergy  float64
	energySmooth float64
	pendingChirp float64
}

func NewProcessor() *Processor {
	return &Processor{}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
		a.Stream = nil
	}
	if a.Active {
		portaudio.Terminate()
	}
	a.Active = false
}

// UpdateEnergy feeds the current total kinetic energy; called once per
// rendered frame.
func (a *Processor) UpdateEnergy(energy float64) {
	a.mu.Lock()
	a.totalEnergy = energy
	a.mu.Unlock()
}

// Trigger queues a merge chirp. Intensity follows the merged mass over
// the reference mass, so heavier collisions ring louder.
func (a *Processor) Trigger(intensity float64) {
	a.mu.Lock()
	if intensity > a.pendingChirp {
		a.pendingChirp = intensity
	}
	a.mu.Unlock()
}

// Triangle wave: smooth, flute-like, no harsh buzz.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// One-pole low pass filter.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (a *Processor) process(out [][]float32) {
	a.mu.Lock()
	energy := a.totalEnergy
	if a.pendingChirp > 0 {
		a.chirpAmp = math.Min(a.pendingChirp, 2.0)
		a.chirpPhase = 0
		a.pendingChirp = 0
	}
	a.mu.Unlock()

	dt := 1.0 / float64(SampleRate)

	for i := range out[0] {
		// Slow morph so the pad breathes instead of jumping.
		a.energySmooth += (energy - a.energySmooth) * 0.0001

		// Two detuned triangles an octave apart.
		pad := 0.3*triangle(a.time*55.0) + 0.2*triangle(a.time*110.5)

		// Kinetic energy opens the filter.
		cutoff := 120.0 + math.Min(a.energySmooth*4.0, 2000.0)

		// Merge chirp: descending sine with exponential decay.
		var chirp float64
		if a.chirpAmp > 1e-4 {
			freq := 880.0 * math.Exp(-a.chirpPhase*3.0)
			chirp = a.chirpAmp * 0.4 * math.Sin(2*math.Pi*freq*a.chirpPhase)
			a.chirpAmp *= 0.99995
			a.chirpPhase += dt
		}

		mix := pad + chirp
		var l, r float64
		l, a.filterState[0] = lpf(mix, cutoff, dt, a.filterState[0])
		r, a.filterState[1] = lpf(mix, cutoff*1.01, dt, a.filterState[1])

		out[0][i] = float32(l)
		out[1][i] = float32(r)

		a.time += dt
	}
}
