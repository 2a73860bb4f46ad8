package atom

import "math"

// MaxElectrons is the number of electrons the three modelled shells can hold.
// Anything beyond it is not placed.
const MaxElectrons = 18

var (
	ShellCapacities = [3]int{2, 8, 8}
	ShellRadii      = [3]float64{70, 100, 130}
)

type Shell struct {
	Radius    float64
	Electrons int
}

// Partition fills shells inside-out using the 2/8/8 rule. Electrons past
// MaxElectrons are dropped; there is no fourth shell.
func Partition(electrons int) []Shell {
	shells := make([]Shell, 0, len(ShellCapacities))
	remaining := electrons
	for i, capacity := range ShellCapacities {
		if remaining <= 0 {
			break
		}
		n := min(remaining, capacity)
		shells = append(shells, Shell{Radius: ShellRadii[i], Electrons: n})
		remaining -= n
	}
	return shells
}

// Placed sums the electrons that made it into shells.
func Placed(shells []Shell) int {
	total := 0
	for _, s := range shells {
		total += s.Electrons
	}
	return total
}

// LayoutShell spaces a shell's electrons around its ring. The offset rotates
// the first electron away from angle zero so rings do not line up. The bool
// result is false for an empty shell, whose ring is not drawn.
func LayoutShell(shell Shell, offset int, center Point) ([]ParticlePosition, bool) {
	if shell.Electrons <= 0 {
		return nil, false
	}
	positions := make([]ParticlePosition, shell.Electrons)
	span := float64(shell.Electrons + offset)
	for i := range positions {
		angle := 2 * math.Pi * float64(i+offset) / span
		positions[i] = ParticlePosition{
			X:    center.X + math.Cos(angle)*shell.Radius,
			Y:    center.Y + math.Sin(angle)*shell.Radius,
			Kind: Electron,
		}
	}
	return positions, true
}
