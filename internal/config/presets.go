package config

import (
	"sort"

	"github.com/san-kum/atomlab/internal/atom"
)

// Presets are named starting points for the build view.
var Presets = map[string]atom.Counts{
	"hydrogen":   {Protons: 1, Neutrons: 0, Electrons: 1},
	"deuterium":  {Protons: 1, Neutrons: 1, Electrons: 1},
	"hydride":    {Protons: 1, Neutrons: 0, Electrons: 2},
	"helium-ion": {Protons: 2, Neutrons: 2, Electrons: 1},
	"lithium":    {Protons: 3, Neutrons: 4, Electrons: 3},
	"carbon-14":  {Protons: 6, Neutrons: 8, Electrons: 6},
	"oxide":      {Protons: 8, Neutrons: 8, Electrons: 10},
	"sodium-ion": {Protons: 11, Neutrons: 12, Electrons: 10},
	"overflow":   {Protons: 20, Neutrons: 20, Electrons: 20},
}

func GetPreset(name string) (atom.Counts, bool) {
	c, ok := Presets[name]
	return c, ok
}

// ListPresets returns preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
