package atom_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atomlab/internal/atom"
)

var _ = Describe("Partition", func() {
	It("places every electron while the shells have room", func() {
		for e := 0; e <= atom.MaxElectrons; e++ {
			shells := atom.Partition(e)
			Expect(atom.Placed(shells)).To(Equal(e), "electrons=%d", e)
			Expect(len(shells)).To(BeNumerically("<=", 3))
		}
	})

	It("drops electrons past the capacity ceiling", func() {
		for _, e := range []int{19, 20, 25, 100} {
			shells := atom.Partition(e)
			Expect(shells).To(HaveLen(3))
			Expect(atom.Placed(shells)).To(Equal(atom.MaxElectrons))
		}
	})

	It("uses the fixed radii in order", func() {
		shells := atom.Partition(11)
		Expect(shells).To(Equal([]atom.Shell{
			{Radius: 70, Electrons: 2},
			{Radius: 100, Electrons: 8},
			{Radius: 130, Electrons: 1},
		}))
	})

	It("emits nothing for zero or negative electrons", func() {
		Expect(atom.Partition(0)).To(BeEmpty())
		Expect(atom.Partition(-3)).To(BeEmpty())
	})
})

var _ = Describe("LayoutNucleus", func() {
	center := atom.Point{X: 250, Y: 175}

	It("emits one position per nucleon with protons first", func() {
		for p := 0; p <= 6; p++ {
			for n := 0; n <= 6; n++ {
				nuc := atom.LayoutNucleus(p, n, center)
				Expect(nuc.Particles).To(HaveLen(p + n))
				for i, part := range nuc.Particles {
					if i < p {
						Expect(part.Kind).To(Equal(atom.Proton))
					} else {
						Expect(part.Kind).To(Equal(atom.Neutron))
					}
				}
			}
		}
	})

	It("handles an empty nucleus without placing particles", func() {
		nuc := atom.LayoutNucleus(0, 0, center)
		Expect(nuc.Particles).To(BeEmpty())
		Expect(nuc.Radius).To(Equal(atom.MinNucleusRadius))
		Expect(nuc.Empty).To(BeTrue())
	})

	It("keeps nucleons on a ring at 0.6 of the radius", func() {
		nuc := atom.LayoutNucleus(11, 12, center)
		Expect(nuc.Radius).To(Equal(56.0))
		for _, part := range nuc.Particles {
			d := math.Hypot(part.X-center.X, part.Y-center.Y)
			Expect(d).To(BeNumerically("~", 56*0.6, 1e-9))
		}
	})

	It("lays out hydrogen as a single proton at angle zero", func() {
		nuc := atom.LayoutNucleus(1, 0, center)
		Expect(nuc.Radius).To(Equal(12.0))
		Expect(nuc.Particles).To(HaveLen(1))
		Expect(nuc.Particles[0].Kind).To(Equal(atom.Proton))
		Expect(nuc.Particles[0].X).To(BeNumerically("~", center.X+12*0.6, 1e-9))
		Expect(nuc.Particles[0].Y).To(BeNumerically("~", center.Y, 1e-9))
	})
})

var _ = Describe("LayoutShell", func() {
	center := atom.Point{X: 0, Y: 0}

	It("signals no ring for an empty shell", func() {
		pos, ring := atom.LayoutShell(atom.Shell{Radius: 70}, 0, center)
		Expect(pos).To(BeEmpty())
		Expect(ring).To(BeFalse())

		pos, ring = atom.LayoutShell(atom.Shell{Radius: 100}, 2, center)
		Expect(pos).To(BeEmpty())
		Expect(ring).To(BeFalse())
	})

	It("places electrons on the shell radius", func() {
		pos, ring := atom.LayoutShell(atom.Shell{Radius: 100, Electrons: 8}, 2, center)
		Expect(ring).To(BeTrue())
		Expect(pos).To(HaveLen(8))
		for _, p := range pos {
			Expect(p.Kind).To(Equal(atom.Electron))
			Expect(math.Hypot(p.X, p.Y)).To(BeNumerically("~", 100, 1e-9))
		}
	})

	It("spaces electrons evenly without an offset", func() {
		pos, _ := atom.LayoutShell(atom.Shell{Radius: 70, Electrons: 2}, 0, center)
		Expect(pos[0].X).To(BeNumerically("~", 70, 1e-9))
		Expect(pos[1].X).To(BeNumerically("~", -70, 1e-9))
	})

	It("rotates electrons by the offset", func() {
		pos, _ := atom.LayoutShell(atom.Shell{Radius: 130, Electrons: 1}, 10, center)
		angle := 2 * math.Pi * 10 / 11
		Expect(pos[0].X).To(BeNumerically("~", 130*math.Cos(angle), 1e-9))
		Expect(pos[0].Y).To(BeNumerically("~", 130*math.Sin(angle), 1e-9))
	})
})
