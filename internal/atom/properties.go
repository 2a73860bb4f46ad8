package atom

import "fmt"

type Properties struct {
	AtomicNumber int
	MassNumber   int
	ShellCount   int
	Charge       int
}

func Describe(c Counts) Properties {
	return Properties{
		AtomicNumber: c.Protons,
		MassNumber:   c.Nucleons(),
		ShellCount:   len(Partition(c.Electrons)),
		Charge:       c.Protons - c.Electrons,
	}
}

// FormatCharge renders a net charge as "2+", "1-" or "Neutral".
func FormatCharge(charge int) string {
	switch {
	case charge > 0:
		return fmt.Sprintf("%d+", charge)
	case charge < 0:
		return fmt.Sprintf("%d-", -charge)
	}
	return "Neutral"
}

func (p Properties) ChargeLabel() string {
	return FormatCharge(p.Charge)
}
