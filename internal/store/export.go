package store

import (
	"encoding/json"
	"io"

	"github.com/amesaru/horizon/internal/sim"
)

type ExportData struct {
	ID        string             `json:"id"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Steps     int                `json:"steps"`
	Columns   []string           `json:"columns"`
	Times     []float64          `json:"times"`
	Frames    [][]float64        `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
	Particles int                `json:"particles"`
	Holes     int                `json:"holes"`
}

// ExportJSON writes a run as a single self-describing JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, frames [][]float64, times []float64) error {
	data := ExportData{
		ID:        meta.ID,
		Seed:      meta.Seed,
		Dt:        meta.Dt,
		Duration:  meta.Duration,
		Steps:     len(times),
		Columns:   sim.FrameColumns,
		Times:     times,
		Frames:    frames,
		Metrics:   meta.Metrics,
		Particles: meta.Particles,
		Holes:     meta.Holes,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
