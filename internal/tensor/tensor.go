package tensor

import (
	"image"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// CHW is a planar float32 image tensor with channel-major layout
// (C x H x W), the representation model runtimes expect. Values carry the
// 8-bit range 0..255 unless remapped by a normalize step.
type CHW struct {
	Data []float32
	C    int
	H    int
	W    int
}

// FromImage converts an image to a 3-channel CHW tensor, dropping alpha.
func FromImage(img image.Image) *CHW {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	t := &CHW{Data: make([]float32, 3*h*w), C: 3, H: h, W: w}

	plane := h * w
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bb, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := y*w + x
			t.Data[i] = float32(r >> 8)
			t.Data[plane+i] = float32(g >> 8)
			t.Data[2*plane+i] = float32(bb >> 8)
		}
	}
	return t
}

// Image converts the tensor back to an interleaved 8-bit image, clamping
// values to [0, 255].
func (t *CHW) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.W, t.H))
	plane := t.H * t.W
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			i := y*t.W + x
			o := img.PixOffset(x, y)
			img.Pix[o] = clamp8(t.Data[i])
			img.Pix[o+1] = clamp8(t.Data[plane+i])
			img.Pix[o+2] = clamp8(t.Data[2*plane+i])
			img.Pix[o+3] = 255
		}
	}
	return img
}

// Points is the flat landmark tensor: interleaved x, y pairs.
type Points struct {
	Data []float32
}

// FromPoints converts a landmark slice to its tensor representation.
func FromPoints(lms []geometry.Point) *Points {
	p := &Points{Data: make([]float32, 0, 2*len(lms))}
	for _, lm := range lms {
		p.Data = append(p.Data, float32(lm.X), float32(lm.Y))
	}
	return p
}

// Points converts the tensor back to a landmark slice. A trailing odd value
// is dropped.
func (p *Points) Points() []geometry.Point {
	n := len(p.Data) / 2
	out := make([]geometry.Point, n)
	for i := 0; i < n; i++ {
		out[i] = geometry.Point{X: float64(p.Data[2*i]), Y: float64(p.Data[2*i+1])}
	}
	return out
}

func clamp8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
