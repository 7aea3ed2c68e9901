// Package viz prepares a synthesized pipe scene for drawing.
//
// Renderers share the same building blocks:
//
//   - [Camera] and [Viewport]: orthographic view with one scale for every
//     axis, so the pipe is not distorted
//   - [Faces]: pressure-colored surface quads, sorted with [SortFaces]
//   - [Quiver]: velocity arrows pointing along +Z
//   - [Jet] and [JetMap]: the cool-to-hot color scale
//   - [Canvas] and [Viewer]: Braille rendering in the terminal, run with
//     Bubble Tea
package viz
