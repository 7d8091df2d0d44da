// Package geom provides the pixel-space geometry primitives for the box
// layout engine: abstract dimensions resolved against a sizing context,
// per-side edge sets for padding/margin/border, and float64 rectangles.
//
// Types are re-exported through the root box package for public consumption.
// Everything here is pure data with no rendering or font dependencies.
package geom
