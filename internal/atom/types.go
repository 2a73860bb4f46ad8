package atom

import "fmt"

type Kind int

const (
	Proton Kind = iota
	Neutron
	Electron
)

func (k Kind) String() string {
	switch k {
	case Proton:
		return "proton"
	case Neutron:
		return "neutron"
	case Electron:
		return "electron"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Point struct {
	X, Y float64
}

// ParticlePosition is a particle placed in surface coordinates for one frame.
type ParticlePosition struct {
	X, Y float64
	Kind Kind
}

// Counts is the particle makeup every layout and render call works from.
type Counts struct {
	Protons   int
	Neutrons  int
	Electrons int
}

func (c Counts) IsZero() bool {
	return c.Protons == 0 && c.Neutrons == 0 && c.Electrons == 0
}

func (c Counts) Nucleons() int {
	return c.Protons + c.Neutrons
}

func (c Counts) String() string {
	return fmt.Sprintf("p=%d n=%d e=%d", c.Protons, c.Neutrons, c.Electrons)
}
