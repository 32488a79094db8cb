// Package gfx is the software back buffer of lumen.
//
// A Buffer is a fixed-size RGBA pixel array kept in process memory. Shapes are
// rasterized into it as horizontal spans and composited with a single
// source-over blend; the buffer itself stays opaque. Presentation to a display
// surface lives in package present.
//
// Fills (rectangle, midpoint circle, two-region midpoint ellipse, scanline
// polygon) clip silently: coordinates outside the buffer are expected from
// animation code and are never an error. Degenerate shapes draw nothing.
//
// Canvas is the drawing API used by demos. It forwards to a Buffer when one is
// enabled and to an Immediate drawer (opaque, unbuffered) otherwise.
//
// Nothing in this package is safe for concurrent use; draw, then swap.
package gfx
