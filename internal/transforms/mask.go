package transforms

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// RandomMask overwrites a randomly sized and positioned rectangle with a
// filler color, simulating occlusion. The masked area fraction is sampled up
// to maskRatio and the rectangle's aspect is randomized by transRatio while
// keeping the sampled area. Landmarks pass through unchanged, including any
// that end up under the mask.
type RandomMask struct {
	Record

	maskRatio  float64
	transRatio float64
	fill       color.NRGBA
	prob       float64
	rng        *rand.Rand
}

// NewRandomMask builds a RandomMask. maskRatio must lie in (0.1, 1) and
// transRatio in (0, 1).
func NewRandomMask(maskRatio, transRatio float64, prob float64, opts ...Option) (*RandomMask, error) {
	if !validProb(prob) {
		return nil, configErr("mask: probability %v out of [0, 1]", prob)
	}
	if maskRatio <= 0.1 || maskRatio >= 1 {
		return nil, configErr("mask: mask ratio %v out of (0.1, 1)", maskRatio)
	}
	if transRatio <= 0 || transRatio >= 1 {
		return nil, configErr("mask: trans ratio %v out of (0, 1)", transRatio)
	}
	o := applyOptions(opts)
	return &RandomMask{
		Record:     newRecord(),
		maskRatio:  maskRatio,
		transRatio: transRatio,
		fill:       color.NRGBA{0, 0, 0, 255},
		prob:       prob,
		rng:        o.rng,
	}, nil
}

func (t *RandomMask) Name() string { return "RandomMask" }

func (t *RandomMask) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	out := imaging.Clone(img)
	w, h := out.Bounds().Dx(), out.Bounds().Dy()

	mw, mh := occlusionRect(t.rng, w, h, t.maskRatio, t.transRatio)
	x0 := intn(t.rng, w-mw+1)
	y0 := intn(t.rng, h-mh+1)

	rect := image.Rect(x0, y0, x0+mw, y0+mh)
	draw.Draw(out, rect, image.NewUniform(t.fill), image.Point{}, draw.Src)

	t.applied = true
	return out, clonePoints(lms), nil
}

// occlusionRect samples the width and height of an occlusion rectangle: an
// area fraction up to maxRatio of the canvas, reshaped by transRatio while
// preserving the sampled area, clamped to fit the canvas.
func occlusionRect(rng *rand.Rand, w, h int, maxRatio, transRatio float64) (int, int) {
	ratio := math.Sqrt(uniform(rng, 0.05, maxRatio))
	rw := int(float64(w) * ratio)
	rh := int(float64(h) * ratio)
	area := rw * rh

	down := max(2, int(float64(rw)*transRatio))
	up := min(int(float64(rw)*(1+transRatio)), w-2)
	nw := uniformInt(rng, min(down, up), max(down, up))
	if nw < 1 {
		nw = 1
	}
	nh := area / nw

	nw = min(max(nw, 1), w)
	nh = min(max(nh, 1), h)
	return nw, nh
}
