package atom

import "math"

const (
	MinNucleusRadius   = 10.0
	NucleonGrowth      = 2.0
	NucleonOrbitFactor = 0.6
)

type Nucleus struct {
	Center    Point
	Radius    float64
	Particles []ParticlePosition
	// Empty marks a nucleus with no nucleons; views draw it faded.
	Empty bool
}

func NucleusRadius(protons, neutrons int) float64 {
	total := max(protons+neutrons, 0)
	return MinNucleusRadius + float64(total)*NucleonGrowth
}

// LayoutNucleus places protons first, then neutrons, evenly on a circle at
// 0.6 of the nucleus radius.
func LayoutNucleus(protons, neutrons int, center Point) Nucleus {
	n := Nucleus{
		Center: center,
		Radius: NucleusRadius(protons, neutrons),
	}
	total := protons + neutrons
	if total <= 0 {
		n.Radius = MinNucleusRadius
		n.Empty = true
		return n
	}

	orbit := n.Radius * NucleonOrbitFactor
	n.Particles = make([]ParticlePosition, total)
	for i := range n.Particles {
		angle := 2 * math.Pi * float64(i) / float64(total)
		kind := Neutron
		if i < protons {
			kind = Proton
		}
		n.Particles[i] = ParticlePosition{
			X:    center.X + math.Cos(angle)*orbit,
			Y:    center.Y + math.Sin(angle)*orbit,
			Kind: kind,
		}
	}
	return n
}
