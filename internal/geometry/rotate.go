package geometry

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RotatedSize returns the expanded canvas dimensions needed to hold a w x h
// image rotated by angle degrees without cropping content:
// (|w·cosθ| + |h·sinθ|, |w·sinθ| + |h·cosθ|), truncated to integers.
func RotatedSize(w, h int, angle float64) (int, int) {
	rad := angle * math.Pi / 180
	cos := math.Abs(math.Cos(rad))
	sin := math.Abs(math.Sin(rad))
	nw := int(float64(h)*sin + float64(w)*cos)
	nh := int(float64(h)*cos + float64(w)*sin)
	return nw, nh
}

// rotationMatrix builds the 2x3 affine matrix that rotates by angle degrees
// about (cx, cy) and then translates the result onto the center of the
// expanded RotatedSize canvas. Positive angles rotate counter-clockwise in
// image coordinates (Y down).
func rotationMatrix(angle, cx, cy float64, oldW, oldH int) f64.Aff3 {
	rad := angle * math.Pi / 180
	alpha := math.Cos(rad)
	beta := math.Sin(rad)

	nw, nh := RotatedSize(oldW, oldH, angle)
	tx := (1-alpha)*cx - beta*cy + float64(nw)/2 - cx
	ty := beta*cx + (1-alpha)*cy + float64(nh)/2 - cy

	return f64.Aff3{
		alpha, beta, tx,
		-beta, alpha, ty,
	}
}

// RotateCanvas rotates the full image about its center by angle degrees,
// expanding the canvas to RotatedSize so no content is cropped. Regions the
// source does not cover are filled with opaque black.
func RotateCanvas(img image.Image, angle float64) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	nw, nh := RotatedSize(w, h, angle)

	m := rotationMatrix(angle, float64(w/2), float64(h/2), w, h)
	return warp(img, m, nw, nh)
}

// RotatePoints applies the same rotation (and canvas-size compensation
// translation) used by RotateCanvas to each point, so rotated box corners
// remain consistent with the rotated, expanded canvas. The pivot (cx, cy) and
// the pre-rotation canvas size must match the RotateCanvas call.
func RotatePoints(points []Point, angle, cx, cy float64, oldW, oldH int) []Point {
	m := rotationMatrix(angle, cx, cy, oldW, oldH)
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{
			X: m[0]*p.X + m[1]*p.Y + m[2],
			Y: m[3]*p.X + m[4]*p.Y + m[5],
		}
	}
	return out
}

// ShearCanvas applies a horizontal shear with the given non-negative factor,
// widening the canvas by factor * height so no content is lost. Column x of
// row y moves to x + factor*y, matching the box math in the shear transform.
func ShearCanvas(img image.Image, factor float64) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	nw := w + int(factor*float64(h))

	m := f64.Aff3{
		1, factor, 0,
		0, 1, 0,
	}
	return warp(img, m, nw, h)
}

// warp renders src through the affine matrix m into a freshly allocated
// w x h canvas pre-filled with opaque black.
func warp(src image.Image, m f64.Aff3, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	black := image.NewUniform(color.NRGBA{0, 0, 0, 255})
	xdraw.Draw(dst, dst.Bounds(), black, image.Point{}, xdraw.Src)
	xdraw.ApproxBiLinear.Transform(dst, m, src, src.Bounds(), xdraw.Over, nil)
	return dst
}
