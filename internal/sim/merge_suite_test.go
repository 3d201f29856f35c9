package sim_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amesaru/horizon/internal/sim"
)

func TestSimSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sim Suite")
}

func holeAt(p sim.Params, x, y, mass float64) sim.BlackHole {
	return sim.BlackHole{
		Pos:          sim.Vec2{X: x, Y: y},
		Mass:         mass,
		EventHorizon: p.EventHorizon(mass),
	}
}

var _ = Describe("black hole merging", func() {
	var (
		w *sim.World
		p sim.Params
	)

	BeforeEach(func() {
		p = sim.DefaultParams()
		w = sim.NewWorld(p, 42)
	})

	step := func() { w.Step(sim.Input{}, 0.016) }

	Context("two holes within the merge distance", func() {
		BeforeEach(func() {
			w.Holes = []sim.BlackHole{
				holeAt(p, 100, 100, 400),
				holeAt(p, 120, 100, 600),
			}
		})

		It("replaces the pair with a single hole at the midpoint", func() {
			step()
			Expect(w.Holes).To(HaveLen(1))
			Expect(w.Holes[0].Pos).To(Equal(sim.Vec2{X: 110, Y: 100}))
		})

		It("sums the masses and rederives the horizon", func() {
			step()
			Expect(w.Holes[0].Mass).To(Equal(1000.0))
			Expect(w.Holes[0].EventHorizon).To(BeNumerically("~", 15.0, 1e-12))
		})

		It("spawns one wave scaled by the resulting mass", func() {
			step()
			Expect(w.Waves).To(HaveLen(1))
			Expect(w.Waves[0].Intensity).To(BeNumerically("~", 1.0, 1e-12))
		})

		It("merges even while paused", func() {
			w.Step(sim.Input{TogglePause: true}, 0.016)
			Expect(w.Settings.Paused).To(BeTrue())
			Expect(w.Holes).To(HaveLen(1))
		})
	})

	Context("three holes where only one pair is close", func() {
		BeforeEach(func() {
			w.Holes = []sim.BlackHole{
				holeAt(p, 100, 100, 400),
				holeAt(p, 120, 100, 600),
				holeAt(p, 700, 500, 1000),
			}
		})

		It("leaves the distant hole untouched", func() {
			step()
			Expect(w.Holes).To(HaveLen(2))
			Expect(w.Holes[0].Pos).To(Equal(sim.Vec2{X: 700, Y: 500}))
			Expect(w.Holes[1].Mass).To(Equal(1000.0))
		})
	})

	Context("selection across a merge", func() {
		BeforeEach(func() {
			w.Holes = []sim.BlackHole{
				holeAt(p, 700, 500, 1000),
				holeAt(p, 100, 100, 400),
				holeAt(p, 120, 100, 600),
			}
		})

		It("moves selection to the merged hole when the selected one is consumed", func() {
			w.Settings.Selected = 2
			step()
			Expect(w.Holes).To(HaveLen(2))
			Expect(w.Holes[w.Settings.Selected].Mass).To(Equal(1000.0))
			Expect(w.Holes[w.Settings.Selected].Pos).To(Equal(sim.Vec2{X: 110, Y: 100}))
		})

		It("follows the surviving hole's new index otherwise", func() {
			w.Settings.Selected = 0
			step()
			Expect(w.Settings.Selected).To(Equal(0))
			Expect(w.Holes[0].Pos).To(Equal(sim.Vec2{X: 700, Y: 500}))
		})
	})

	Context("a chain of three mutually close holes", func() {
		BeforeEach(func() {
			w.Holes = []sim.BlackHole{
				holeAt(p, 100, 100, 300),
				holeAt(p, 110, 100, 300),
				holeAt(p, 120, 100, 400),
			}
		})

		It("merges one pair per frame and settles into a single hole", func() {
			step()
			Expect(w.Holes).To(HaveLen(2))
			step()
			Expect(w.Holes).To(HaveLen(1))
			Expect(w.Holes[0].Mass).To(Equal(1000.0))
		})
	})
})

var _ = Describe("selection state machine", func() {
	var (
		w *sim.World
		p sim.Params
	)

	BeforeEach(func() {
		p = sim.DefaultParams()
		w = sim.NewWorld(p, 7)
		w.Holes = []sim.BlackHole{
			holeAt(p, 100, 100, 1000),
			holeAt(p, 400, 300, 1000),
			holeAt(p, 700, 500, 1000),
		}
	})

	It("always holds a valid index after removals", func() {
		w.Settings.Selected = 2
		w.Step(sim.Input{RemoveSelected: true}, 0.016)
		Expect(w.Settings.Selected).To(BeNumerically("<", len(w.Holes)))
		Expect(w.Settings.Selected).To(BeNumerically(">=", 0))
	})

	It("never removes the final hole", func() {
		for i := 0; i < 5; i++ {
			w.Step(sim.Input{RemoveSelected: true}, 0.016)
		}
		Expect(w.Holes).To(HaveLen(1))
	})

	It("cycles modulo the live count", func() {
		w.Settings.Selected = 2
		w.Step(sim.Input{CycleSelection: true}, 0.016)
		Expect(w.Settings.Selected).To(Equal(0))
	})
})
