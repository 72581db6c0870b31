package tensor

import (
	"image"
	"image/color"
)

// FloatImage is an interleaved H x W x 3 float32 image. It implements
// image.Image, clamping to 8-bit on access, while keeping the raw float
// values available so an affine pixel remap (normalize followed by
// un-normalize) stays exactly invertible.
type FloatImage struct {
	// Pix holds interleaved R, G, B float32 triples.
	Pix []float32
	// Stride is the Pix offset between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewFloatImage allocates a zero-valued float image with the given bounds.
func NewFloatImage(r image.Rectangle) *FloatImage {
	return &FloatImage{
		Pix:    make([]float32, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

// Float returns img's pixel data as a FloatImage. A *FloatImage input is
// copied raw, preserving out-of-range values; anything else is sampled
// through the color interface, dropping alpha.
func Float(img image.Image) *FloatImage {
	if f, ok := img.(*FloatImage); ok {
		out := NewFloatImage(f.Rect)
		copy(out.Pix, f.Pix)
		return out
	}

	b := img.Bounds()
	out := NewFloatImage(b)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			out.Pix[i] = float32(r >> 8)
			out.Pix[i+1] = float32(g >> 8)
			out.Pix[i+2] = float32(bb >> 8)
			i += 3
		}
	}
	return out
}

// ColorModel implements image.Image.
func (f *FloatImage) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (f *FloatImage) Bounds() image.Rectangle { return f.Rect }

// At implements image.Image, clamping the float values to 8 bits.
func (f *FloatImage) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(f.Rect)) {
		return color.NRGBA{}
	}
	i := (y-f.Rect.Min.Y)*f.Stride + (x-f.Rect.Min.X)*3
	return color.NRGBA{
		R: clamp8(f.Pix[i]),
		G: clamp8(f.Pix[i+1]),
		B: clamp8(f.Pix[i+2]),
		A: 255,
	}
}

// Remap returns a new FloatImage with fn applied to every channel value.
func (f *FloatImage) Remap(fn func(float32) float32) *FloatImage {
	out := NewFloatImage(f.Rect)
	for i, v := range f.Pix {
		out.Pix[i] = fn(v)
	}
	return out
}
