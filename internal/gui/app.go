package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/amesaru/horizon/internal/audio"
	"github.com/amesaru/horizon/internal/config"
	"github.com/amesaru/horizon/internal/sim"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColHole    = rl.NewColor(0, 0, 0, 255)       // True Black
	ColRim     = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
)

type App struct {
	World *sim.World
	Cfg   *config.Config
	Font  rl.Font

	// Audio
	Audio *audio.Processor
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config) *App {
	world := sim.NewWorld(cfg.Params(), cfg.Seed)
	world.Settings = cfg.Settings()
	for i := 1; i < cfg.Holes; i++ {
		world.AddHole()
	}

	proc := audio.NewProcessor()
	if err := proc.Start(); err != nil {
		// No audio device is fine, the sim runs silent.
		proc = nil
	}

	return &App{
		World: world,
		Cfg:   cfg,
		Font:  loadFont(),
		Audio: proc,
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(cfg)
	defer app.shutdown()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) shutdown() {
	if a.Audio != nil {
		a.Audio.Stop()
	}
}

// toSim maps a screen point to sim coordinates. Raylib's Y axis grows
// downward, the sim's grows upward.
func (a *App) toSim(v rl.Vector2) sim.Vec2 {
	return sim.Vec2{
		X: float64(v.X),
		Y: a.World.Params.Height - float64(v.Y),
	}
}

func (a *App) toScreen(p sim.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(a.World.Params.Height-p.Y))
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.World.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	in := sim.Input{
		TogglePause:    rl.IsKeyPressed(rl.KeySpace),
		AddHole:        rl.IsKeyPressed(rl.KeyN),
		CycleSelection: rl.IsKeyPressed(rl.KeyTab),
		RemoveSelected: rl.IsKeyPressed(rl.KeyDelete),

		MassUp:   rl.IsKeyDown(rl.KeyUp),
		MassDown: rl.IsKeyDown(rl.KeyDown),

		GrowParticles:   rl.IsKeyDown(rl.KeyEqual) || rl.IsKeyDown(rl.KeyKpAdd),
		ShrinkParticles: rl.IsKeyDown(rl.KeyMinus) || rl.IsKeyDown(rl.KeyKpSubtract),

		SpeedUp:  rl.IsKeyDown(rl.KeyRightBracket),
		SlowDown: rl.IsKeyDown(rl.KeyLeftBracket),
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		in.Dragging = true
		in.Pointer = a.toSim(rl.GetMousePosition())
	}

	dt := float64(rl.GetFrameTime())
	a.World.Step(in, dt)

	// Sonification
	if a.Audio != nil {
		a.Audio.UpdateEnergy(a.World.KineticEnergy())
		for _, ev := range a.World.Events() {
			a.Audio.Trigger(ev.Intensity)
		}
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawSim()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("horizon", 30, 30, 24, ColSelect)

	s := a.World.Settings
	status := "RUNNING"
	col := ColSelect
	if s.Paused {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, int(a.World.Params.Width)-120, 30, 16, col)

	sel := a.World.Holes[s.Selected]
	a.drawText(fmt.Sprintf("MASS %.0f  HORIZON %.1f  SCALE %.2fx  SIZE %.1f",
		sel.Mass, sel.EventHorizon, s.TimeScale, s.ParticleSize), 30, 60, 14, ColText)
	a.drawText(fmt.Sprintf("HOLES %d  CONSUMED %d  MERGES %d",
		len(a.World.Holes), a.World.Consumed(), a.World.Merges()), 30, 80, 14, ColTextDim)

	y := int(a.World.Params.Height) - 40
	a.drawText("[SPACE] PAUSE  [N] SPAWN  [TAB] SELECT  [DEL] REMOVE  [UP/DN] MASS  [+/-] SIZE  [[/]] SPEED  [DRAG] MOVE", 30, y, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), int(a.World.Params.Width)-90, y, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
