// Package pipe synthesizes the geometry and flow fields of a bent pipe.
//
// Everything in the package is a pure function of [Params]:
//
//   - [Grid]: (angle, length-position) mesh of the pipe surface
//   - [Cloud]: X, Y, Z coordinates of the surface
//   - [Bend]: length-dependent rotation about the Y axis
//   - [Pressure], [Velocity]: prescribed analytic fields
//   - [Scene]: the bundle handed to renderers
//
// All 2D arrays have RadiusPoints rows and LengthPoints columns: row i is a
// fixed angle around the circumference, column j a fixed position along the
// pipe.
//
// # Example
//
//	scene, err := pipe.Synthesize(pipe.DefaultParams())
//	if err != nil {
//		return err
//	}
//	b := scene.Cloud.Bounds()
//
// The fields are illustrative. Velocity is not coupled to the bend or to
// the pressure drop.
package pipe
