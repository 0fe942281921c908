// Package geom provides the 2D point primitive and coordinate
// conversion utilities for Vellum: cartesian/polar, degree/radian,
// screen/world, local/world, angle normalization, drawing units and
// standard paper sizes. It has no dependencies on the rest of the kernel.
package geom
