package transforms

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// RandomBrightness remaps every pixel value as contrast*v + brightness with
// factors drawn from evenly spaced grids built at construction (30 contrast
// steps, 60 brightness steps), clamping results to [0, 255]. Landmarks pass
// through unchanged.
type RandomBrightness struct {
	Record

	brightness []float64
	contrast   []float64
	prob       float64
	rng        *rand.Rand
}

// NewRandomBrightness builds a RandomBrightness sampling additive brightness
// from the brightness range and multiplicative contrast from the contrast
// range.
func NewRandomBrightness(brightness, contrast Range, prob float64, opts ...Option) (*RandomBrightness, error) {
	if !validProb(prob) {
		return nil, configErr("brightness: probability %v out of [0, 1]", prob)
	}
	o := applyOptions(opts)
	return &RandomBrightness{
		Record:     newRecord(),
		brightness: linspace(brightness.normalized(), 60),
		contrast:   linspace(contrast.normalized(), 30),
		prob:       prob,
		rng:        o.rng,
	}, nil
}

func (t *RandomBrightness) Name() string { return "RandomBrightness" }

func (t *RandomBrightness) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	brightness := t.brightness[intn(t.rng, len(t.brightness))]
	contrast := t.contrast[intn(t.rng, len(t.contrast))]

	out := imaging.AdjustFunc(imaging.Clone(img), func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: remap8(c.R, contrast, brightness),
			G: remap8(c.G, contrast, brightness),
			B: remap8(c.B, contrast, brightness),
			A: c.A,
		}
	})

	t.applied = true
	return out, clonePoints(lms), nil
}

// remap8 applies the affine pixel remap with clamping to [0, 255].
func remap8(v uint8, contrast, brightness float64) uint8 {
	f := contrast*float64(v) + brightness
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f + 0.5)
}

// linspace returns n evenly spaced values spanning r inclusive.
func linspace(r Range, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = r.Lo
		return out
	}
	step := (r.Hi - r.Lo) / float64(n-1)
	for i := range out {
		out[i] = r.Lo + float64(i)*step
	}
	return out
}
