// Package logo overlays a logo on the center of a rendered QR code.
//
// Both the raster path (Composite, CompositePNG) and the vector path
// (CompositeSVG) share the same geometry from Compute: the logo is scaled
// uniformly to fit a square of percent% of the code's side, centered, and a
// background-colored buffer extending BufferMargin units past the logo on every
// side is drawn underneath it. The logo and its buffer always stay inside the
// code and never exceed the configured share of its size.
//
// Only PNG and JPEG logos are accepted. Any decoding or drawing failure fails
// the whole operation; no partially composited output is returned.
package logo
