// Package gui is an optional raylib window showing the structure and build
// views.
package gui
