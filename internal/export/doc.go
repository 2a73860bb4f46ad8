// Package export writes atom diagrams to files.
//
//   - [SVG]: vector document surface
//   - [PNG]: 4x supersampled raster surface with Go Regular text
//   - [EncodeGIF]: animated GIF, one [Slide] per frame
//
// Each surface implements [render.Surface], so the same renderer drives the
// terminal, the window and every file format.
package export
