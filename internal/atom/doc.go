// Package atom holds the element catalog and the pure layout core of the
// atom diagram.
//
//   - [Catalog]: ordered, read-only element table; [Catalog.NameFor] keys on
//     proton count only
//   - [Partition]: 2/8/8 shell filling at radii 70/100/130; electrons past
//     [MaxElectrons] are dropped
//   - [LayoutNucleus]: nucleus radius 10 + 2 per nucleon, nucleons evenly
//     spaced at 0.6 of the radius, protons first
//   - [LayoutShell]: electrons evenly spaced on a ring, rotated by an offset
//   - [Build]: the counters behind the build-an-atom view
//
// Nothing here draws or holds state across frames.
package atom
