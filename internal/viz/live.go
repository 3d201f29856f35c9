// Package viz renders the simulation live in a terminal using a braille
// canvas, for machines without a GL context. Input mirrors the GUI keys
// except that arrow keys nudge the selected hole in place of pointer
// dragging.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/amesaru/horizon/internal/sim"
)

const (
	canvasCols      = 80
	canvasRows      = 24
	historyCapacity = 120
	nudgeStep       = 10.0
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	statsStyle  = lipgloss.NewStyle().Padding(0, 2)
)

type TickMsg time.Time

// Model steps the world on a fixed tick and draws it as braille pixels.
type Model struct {
	world   *sim.World
	canvas  *Canvas
	fps     int
	pending sim.Input
	energy  []float64
}

func NewModel(world *sim.World, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		world:  world,
		canvas: NewCanvas(canvasCols, canvasRows),
		fps:    fps,
		energy: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		dt := 1.0 / float64(m.fps)
		m.world.Step(m.pending, dt)
		m.pending = sim.Input{}

		m.energy = append(m.energy, m.world.KineticEnergy())
		if len(m.energy) > historyCapacity {
			m.energy = m.energy[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.pending.TogglePause = true
	case "n":
		m.pending.AddHole = true
	case "tab":
		m.pending.CycleSelection = true
	case "d", "delete":
		m.pending.RemoveSelected = true
	case "m":
		m.pending.MassUp = true
	case "M":
		m.pending.MassDown = true
	case "+", "=":
		m.pending.GrowParticles = true
	case "-":
		m.pending.ShrinkParticles = true
	case "]":
		m.pending.SpeedUp = true
	case "[":
		m.pending.SlowDown = true
	case "up":
		m.nudge(0, nudgeStep)
	case "down":
		m.nudge(0, -nudgeStep)
	case "left":
		m.nudge(-nudgeStep, 0)
	case "right":
		m.nudge(nudgeStep, 0)
	}
	return m, nil
}

// nudge emulates pointer dragging for keyboards: the selected hole moves
// by a fixed step on the next tick.
func (m *Model) nudge(dx, dy float64) {
	h := m.world.Holes[m.world.Settings.Selected]
	base := h.Pos
	if m.pending.Dragging {
		base = m.pending.Pointer
	}
	m.pending.Dragging = true
	m.pending.Pointer = sim.Vec2{X: base.X + dx, Y: base.Y + dy}
}

func (m Model) View() string {
	m.drawWorld()

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("horizon :: black hole simulator"))
	sb.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(m.statsView()),
	)
	sb.WriteString(body)

	if len(m.energy) > 2 {
		graph := asciigraph.Plot(m.energy,
			asciigraph.Height(5),
			asciigraph.Width(70),
			asciigraph.Caption("kinetic energy"),
		)
		sb.WriteString("\n")
		sb.WriteString(graphStyle.Render(graph))
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("[space] pause  [n] add  [tab] select  [d] remove  [m/M] mass  [arrows] move  [+/-] size  [[/]] speed  [q] quit"))
	return sb.String()
}

func (m Model) drawWorld() {
	m.canvas.Clear()

	pw := float64(m.canvas.PixelWidth())
	ph := float64(m.canvas.PixelHeight())
	sx := pw / m.world.Params.Width
	sy := ph / m.world.Params.Height

	// Terminal rows grow downward; sim Y grows upward.
	toPixel := func(p sim.Vec2) (int, int) {
		return int(p.X * sx), int(ph - 1 - p.Y*sy)
	}

	for _, p := range m.world.Particles {
		x, y := toPixel(p.Pos)
		m.canvas.Set(x, y)
	}

	for i, h := range m.world.Holes {
		x, y := toPixel(h.Pos)
		r := int(h.EventHorizon * sx)
		if r < 1 {
			r = 1
		}
		m.canvas.FillCircle(x, y, r)
		if i == m.world.Settings.Selected {
			m.canvas.DrawCircle(x, y, r+2)
		}
	}

	for _, w := range m.world.Waves {
		x, y := toPixel(w.Pos)
		r := int(w.Intensity * 10 * w.Scale() * sx)
		m.canvas.DrawCircle(x, y, r)
	}
}

func (m Model) statsView() string {
	s := m.world.Settings

	status := valueStyle.Render("running")
	if s.Paused {
		status = pausedStyle.Render("paused")
	}

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(labelStyle.Render("status") + status + "\n")
	sb.WriteString(row("holes", fmt.Sprintf("%d", len(m.world.Holes))))
	sb.WriteString(row("selected", fmt.Sprintf("%d", s.Selected)))
	sb.WriteString(row("sel. mass", fmt.Sprintf("%.0f", m.world.Holes[s.Selected].Mass)))
	sb.WriteString(row("particles", fmt.Sprintf("%d", len(m.world.Particles))))
	sb.WriteString(row("size", fmt.Sprintf("%.1f", s.ParticleSize)))
	sb.WriteString(row("time scale", fmt.Sprintf("%.2fx", s.TimeScale)))
	sb.WriteString(row("consumed", fmt.Sprintf("%d", m.world.Consumed())))
	sb.WriteString(row("merges", fmt.Sprintf("%d", m.world.Merges())))
	return sb.String()
}

// Run starts the terminal UI and blocks until quit.
func Run(world *sim.World, fps int) error {
	p := tea.NewProgram(NewModel(world, fps))
	_, err := p.Run()
	return err
}
