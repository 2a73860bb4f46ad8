package atom

import (
	"fmt"
	"strings"
)

// UnknownName is reported when no catalog entry matches a proton count.
const UnknownName = "Unknown Atom"

type Element struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Symbol    string `json:"symbol" yaml:"symbol"`
	Protons   int    `json:"protons" yaml:"protons"`
	Neutrons  int    `json:"neutrons" yaml:"neutrons"`
	Electrons int    `json:"electrons" yaml:"electrons"`
}

func (e Element) Counts() Counts {
	return Counts{Protons: e.Protons, Neutrons: e.Neutrons, Electrons: e.Electrons}
}

// Label is the "Name (Symbol)" form used by selectors.
func (e Element) Label() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Symbol)
}

// Catalog is an ordered, read-only element table. Lookups by proton count
// return the first matching entry in table order.
type Catalog struct {
	elements []Element
	index    map[string]int
}

func NewCatalog(elements ...Element) *Catalog {
	c := &Catalog{
		elements: make([]Element, len(elements)),
		index:    make(map[string]int, len(elements)),
	}
	copy(c.elements, elements)
	for i, e := range c.elements {
		c.index[e.ID] = i
	}
	return c
}

var defaultCatalog = NewCatalog(
	Element{ID: "hydrogen", Name: "Hydrogen", Symbol: "H", Protons: 1, Neutrons: 0, Electrons: 1},
	Element{ID: "helium", Name: "Helium", Symbol: "He", Protons: 2, Neutrons: 2, Electrons: 2},
	Element{ID: "lithium", Name: "Lithium", Symbol: "Li", Protons: 3, Neutrons: 4, Electrons: 3},
	Element{ID: "carbon", Name: "Carbon", Symbol: "C", Protons: 6, Neutrons: 6, Electrons: 6},
	Element{ID: "oxygen", Name: "Oxygen", Symbol: "O", Protons: 8, Neutrons: 8, Electrons: 8},
	Element{ID: "sodium", Name: "Sodium", Symbol: "Na", Protons: 11, Neutrons: 12, Electrons: 11},
)

// DefaultCatalog returns the built-in six element table.
func DefaultCatalog() *Catalog { return defaultCatalog }

func (c *Catalog) Len() int { return len(c.elements) }

// Elements returns a copy of the table in catalog order.
func (c *Catalog) Elements() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.elements))
	for i, e := range c.elements {
		ids[i] = e.ID
	}
	return ids
}

func (c *Catalog) At(i int) Element {
	return c.elements[i]
}

// IndexOf returns the position of id in the table, or -1.
func (c *Catalog) IndexOf(id string) int {
	i, ok := c.index[strings.ToLower(id)]
	if !ok {
		return -1
	}
	return i
}

// Lookup resolves an identifier or symbol, case-insensitively.
func (c *Catalog) Lookup(id string) (Element, error) {
	if i, ok := c.index[strings.ToLower(id)]; ok {
		return c.elements[i], nil
	}
	for _, e := range c.elements {
		if strings.EqualFold(e.Symbol, id) || strings.EqualFold(e.Name, id) {
			return e, nil
		}
	}
	return Element{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownElement, id, strings.Join(c.IDs(), ", "))
}

// Resolve is Lookup returning the element's position in the table.
func (c *Catalog) Resolve(id string) (int, error) {
	e, err := c.Lookup(id)
	if err != nil {
		return -1, err
	}
	return c.index[e.ID], nil
}

func (c *Catalog) ByProtons(protons int) (Element, bool) {
	for _, e := range c.elements {
		if e.Protons == protons {
			return e, true
		}
	}
	return Element{}, false
}

// NameFor keys only on the proton count.
func (c *Catalog) NameFor(protons int) string {
	if e, ok := c.ByProtons(protons); ok {
		return e.Name
	}
	return UnknownName
}
