package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/solarsim/internal/orbit"
)

const tol = 1e-6

var _ = Describe("Updater", func() {
	var (
		bodies []orbit.Body
		u      *orbit.Updater
	)

	BeforeEach(func() {
		bodies = []orbit.Body{
			{Name: "Venus", Radius: 100, Period: 0.62, Color: "gold", Size: 200},
			{Name: "Earth", Radius: 150, Period: 1.00, Color: "deepskyblue", Size: 250},
			{Name: "Slow", Radius: 420, Period: 2.5, Color: "#ffffff", Size: 100},
			{Name: "Core", Radius: 0, Period: 3, Color: "white", Size: 10},
		}
		var err error
		u, err = orbit.New(bodies, orbit.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
	})

	It("keeps every body on its circle in the x-y plane", func() {
		for f := 0; f < 2000; f += 7 {
			for _, b := range bodies {
				p := u.Position(b, f)
				Expect(math.Hypot(p.X, p.Y)).To(BeNumerically("~", b.Radius, tol))
			}
		}
	})

	It("bounds the bobbing term by tilt times radius", func() {
		for f := 0; f < 500; f++ {
			for _, b := range bodies {
				Expect(math.Abs(u.Position(b, f).Z)).To(BeNumerically("<=", b.Radius*orbit.DefaultTilt+tol))
			}
		}
	})

	It("repeats the in-plane position after one period", func() {
		for _, b := range bodies[1:3] {
			n := u.PeriodFrames(b)
			for f := 0; f < 200; f += 3 {
				a, c := u.Position(b, f), u.Position(b, f+n)
				Expect(c.X).To(BeNumerically("~", a.X, tol))
				Expect(c.Y).To(BeNumerically("~", a.Y, tol))
			}
		}
	})

	It("repeats the full 3D position after two periods", func() {
		b := bodies[1]
		n := 2 * u.PeriodFrames(b)
		for f := 0; f < 100; f++ {
			a, c := u.Position(b, f), u.Position(b, f+n)
			Expect(c.Sub(a).Length()).To(BeNumerically("<", tol))
		}
	})

	It("is deterministic", func() {
		Expect(u.Frame(123)).To(Equal(u.Frame(123)))
	})

	It("places labels at a fixed offset from the body", func() {
		fr := u.Frame(57)
		for _, s := range fr.Bodies {
			d := s.Label.Sub(s.Position)
			Expect(d.X).To(BeNumerically("~", orbit.DefaultLabelOffset, tol))
			Expect(d.Y).To(BeNumerically("~", orbit.DefaultLabelOffset, tol))
			Expect(d.Z).To(BeNumerically("~", orbit.DefaultLabelOffset, tol))
		}
	})

	It("moves less per frame as the time step shrinks", func() {
		b := bodies[1]
		step := func(k float64) float64 {
			p := orbit.DefaultParams()
			p.TimeStep = k
			v, err := orbit.New(bodies, p)
			Expect(err).NotTo(HaveOccurred())
			return v.Position(b, 11).Sub(v.Position(b, 10)).Length()
		}
		coarse, fine, finer := step(0.05), step(0.005), step(0.0005)
		Expect(fine).To(BeNumerically("<", coarse))
		Expect(finer).To(BeNumerically("<", fine))
		Expect(finer).To(BeNumerically("<", 1.0))
	})

	It("reports frame output in configuration order", func() {
		fr := u.Frame(3)
		Expect(fr.Bodies).To(HaveLen(len(bodies)))
		for i, b := range bodies {
			Expect(fr.Bodies[i].Name).To(Equal(b.Name))
		}
		Expect(fr.Time).To(BeNumerically("~", 0.15, tol))
	})
})
