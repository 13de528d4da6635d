// Package mandel computes zoomable point fields of the Mandelbrot set.
//
// A render pass samples the current viewport on a uniform per-pixel grid
// and classifies every sample with the escape-time recurrence, fanned out
// across a fixed number of workers. Survivors come back projected into
// pixel space. Zooming only moves the viewport; the next pass recomputes
// everything from scratch, and nothing is cached between passes.
//
// The recurrence is seeded with the sample coordinate itself (z0 = c)
// rather than the textbook z0 = 0. Escape indices come out shifted by one
// and the drawable boundary differs subtly from the canonical set; the
// palette depends on this seeding, so renders only line up with other
// z0 = c implementations.
//
// The package is silent by default; see SetLogger for the debug stream.
package mandel
