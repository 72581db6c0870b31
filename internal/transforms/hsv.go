package transforms

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// RandomHSV jitters hue, saturation, and value by integer deltas sampled
// from the configured ranges. Channels use the OpenCV 8-bit convention: hue
// lives in [0, 179], saturation and value in [0, 255], and results are
// clamped to those ranges. Landmarks pass through unchanged.
type RandomHSV struct {
	Record

	hue        Range
	saturation Range
	brightness Range
	prob       float64
	rng        *rand.Rand
}

// NewRandomHSV builds a RandomHSV. Pass Sym(v) for symmetric jitter or a
// zero Range to leave a channel alone.
func NewRandomHSV(hue, saturation, brightness Range, prob float64, opts ...Option) (*RandomHSV, error) {
	if !validProb(prob) {
		return nil, configErr("hsv: probability %v out of [0, 1]", prob)
	}
	o := applyOptions(opts)
	return &RandomHSV{
		Record:     newRecord(),
		hue:        hue.normalized(),
		saturation: saturation.normalized(),
		brightness: brightness.normalized(),
		prob:       prob,
		rng:        o.rng,
	}, nil
}

func (t *RandomHSV) Name() string { return "RandomHSV" }

func (t *RandomHSV) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	dh := float64(uniformInt(t.rng, int(t.hue.Lo), int(t.hue.Hi)))
	ds := float64(uniformInt(t.rng, int(t.saturation.Lo), int(t.saturation.Hi)))
	dv := float64(uniformInt(t.rng, int(t.brightness.Lo), int(t.brightness.Hi)))

	out := imaging.AdjustFunc(imaging.Clone(img), func(c color.NRGBA) color.NRGBA {
		rgb := colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}
		h, s, v := rgb.Hsv()

		// colorful works in H [0,360), S/V [0,1]; jitter in OpenCV units.
		h8 := clampChannel(h/2+dh, 179)
		s8 := clampChannel(s*255+ds, 255)
		v8 := clampChannel(v*255+dv, 255)

		shifted := colorful.Hsv(h8*2, s8/255, v8/255).Clamped()
		r, g, b := shifted.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: c.A}
	})

	t.applied = true
	return out, clonePoints(lms), nil
}

// clampChannel constrains v to [0, hi].
func clampChannel(v, hi float64) float64 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
