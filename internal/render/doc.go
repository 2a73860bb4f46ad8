// Package render turns particle counts into draw commands.
//
// A [Renderer] computes a [Frame] from [atom.Counts] and issues it against
// any [Surface]: clear, nucleus, nucleons, then a ring and electrons per
// non-empty shell, and in the build view an instructional hint when the atom
// is empty.
//
//	r := render.New(render.BuildOptions())
//	r.Draw(surface, build.Counts()) // call again after every change
//
// [StructureOptions] staggers shell offsets (0, 2, 10); [BuildOptions] keeps
// them at zero. [Recorder] captures the command stream for tests and tracing.
package render
