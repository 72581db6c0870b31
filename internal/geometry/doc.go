// Package geometry provides the pure point/box math shared by every
// landmark-aware transform.
//
// All functions are stateless. The coordinate system matches the rest of the
// module: (0,0) is the top-left corner of the canvas, X increases rightward,
// Y increases downward, and angles are in degrees with positive values
// rotating counter-clockwise (in image coordinates).
//
// # Boxes as the unit of rotation math
//
// Rotation-class transforms do not rotate every individual landmark. They
// project the landmark set to its enclosing Box, rotate the four corners of
// that box, and reconstruct landmarks from the result via a fixed canonical
// corner order. This keeps an arbitrary polygon of points consistent under an
// affine image warp while only tracking a rectangle; the cost is that a
// reconstructed point set preserves count and order, not each point's
// original position inside the box.
//
// # Degenerate boxes
//
// ClipBox never drops a box. A box that ends up (almost) entirely outside the
// canvas is returned with Degenerate set, and ReprojectToPoints returns no
// points for it, which callers surface as a landmark-count mismatch.
package geometry
