// Package tui is the bubbletea front end: four lesson sections with the atom
// diagram drawn on a braille canvas.
package tui
