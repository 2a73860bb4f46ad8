package atom

// Build is the user-assembled atom. Counters only grow until Reset.
type Build struct {
	counts Counts
}

func NewBuild() *Build { return &Build{} }

// FromCounts seeds a build, clamping negatives to zero.
func FromCounts(c Counts) *Build {
	return &Build{counts: Counts{
		Protons:   max(c.Protons, 0),
		Neutrons:  max(c.Neutrons, 0),
		Electrons: max(c.Electrons, 0),
	}}
}

func (b *Build) AddProton()   { b.counts.Protons++ }
func (b *Build) AddNeutron()  { b.counts.Neutrons++ }
func (b *Build) AddElectron() { b.counts.Electrons++ }

// Add increments the counter for kind.
func (b *Build) Add(kind Kind) {
	switch kind {
	case Proton:
		b.AddProton()
	case Neutron:
		b.AddNeutron()
	case Electron:
		b.AddElectron()
	}
}

func (b *Build) Reset() { b.counts = Counts{} }

func (b *Build) Counts() Counts { return b.counts }

// Name looks up the catalog by proton count alone.
func (b *Build) Name(c *Catalog) string {
	return c.NameFor(b.counts.Protons)
}

func (b *Build) Charge() string {
	return FormatCharge(b.counts.Protons - b.counts.Electrons)
}
