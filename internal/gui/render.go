package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const particleBaseRadius = 2.0

func (a *App) drawSim() {
	a.drawWaves()
	a.drawParticles()
	a.drawHoles()
}

// drawParticles colors each particle by speed so infalling matter streaks
// toward the hot end of the hue wheel.
func (a *App) drawParticles() {
	r := float32(particleBaseRadius * a.World.Settings.ParticleSize)
	for _, p := range a.World.Particles {
		speed := p.Vel.Length()
		hue := math.Mod(speed*50, 360)
		col := rl.ColorFromHSV(float32(hue), 0.7, 1.0)
		rl.DrawCircleV(a.toScreen(p.Pos), r, col)
	}
}

func (a *App) drawHoles() {
	for i, h := range a.World.Holes {
		center := a.toScreen(h.Pos)
		eh := float32(h.EventHorizon)

		rl.DrawCircleV(center, eh, ColHole)
		rl.DrawRing(center, eh, eh+1.5, 0, 360, 64, ColRim)

		if i == a.World.Settings.Selected {
			rl.DrawRing(center, eh+5, eh+6.5, 0, 360, 64, ColSelect)
		}
	}
}

func (a *App) drawWaves() {
	for _, w := range a.World.Waves {
		frac := w.Fraction()
		radius := float32(w.Intensity * 30 * w.Scale())
		alpha := uint8(255 * w.Alpha())
		col := rl.NewColor(180, 180, 180, alpha)

		center := a.toScreen(w.Pos)
		rl.DrawRing(center, radius, radius+2, 0, 360, 64, col)

		// Faint inner echo during the first half of the burst.
		if frac < 0.5 {
			rl.DrawRing(center, radius*0.6, radius*0.6+1, 0, 360, 48,
				rl.NewColor(180, 180, 180, alpha/3))
		}
	}
}
