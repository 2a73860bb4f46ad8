// Package viz draws atoms in the terminal.
//
//   - [Canvas]: braille dot grid (2x4 dots per cell) with per-cell colors
//   - [Surface]: adapts a Canvas to [render.Surface], scaling the 500x350
//     layout space and stippling faint fills and rings
//   - [Theme]: lipgloss colors for the TUI chrome plus the atom palette
//
// Typical use:
//
//	c := viz.NewCanvas(64, 22)
//	render.New(render.StructureOptions()).Draw(viz.NewSurface(c), el.Counts())
//	fmt.Print(c.Render())
package viz
