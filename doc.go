// Package ln converts a 3D scene of analytic solids and triangle meshes into
// a collection of visible 2D polylines, as seen from a pinhole camera.
//
// A [Scene] collects [Shape] values — [Sphere], [Cube], [Cylinder], [Cone],
// [Triangle], [Function], [Mesh], and the [Intersection]/[Difference] CSG
// combinators — and [Scene.Render] projects their line art (edges,
// silhouettes, lat/long grids, hatchings) through a camera, eliminates
// hidden lines against the rest of the scene, and returns the result as
// [Paths] ready for SVG or PNG export.
//
// The package does no shading, color, light transport, texture sampling,
// animation, or GPU acceleration — it produces vector line drawings only.
package ln
