package transforms

import (
	"image"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/landmark-augment/internal/geometry"
)

// RandomScale resizes the image by per-axis factors of (1 + s) with s sampled
// from the configured range, scaling every landmark coordinate by the same
// factors. With diff the axes sample independently; otherwise one sample
// drives both.
type RandomScale struct {
	Record

	scale Range
	prob  float64
	diff  bool
	rng   *rand.Rand
}

// NewRandomScale builds a RandomScale. Both range ends must be greater than
// -1, since a factor of -1 would collapse the image.
func NewRandomScale(scale Range, prob float64, diff bool, opts ...Option) (*RandomScale, error) {
	if !validProb(prob) {
		return nil, configErr("scale: probability %v out of [0, 1]", prob)
	}
	scale = scale.normalized()
	if scale.Lo <= -1 || scale.Hi <= -1 {
		return nil, configErr("scale: factors must be greater than -1, got (%v, %v)", scale.Lo, scale.Hi)
	}
	o := applyOptions(opts)
	return &RandomScale{Record: newRecord(), scale: scale, prob: prob, diff: diff, rng: o.rng}, nil
}

func (t *RandomScale) Name() string { return "RandomScale" }

func (t *RandomScale) Apply(img image.Image, lms []geometry.Point) (image.Image, []geometry.Point, error) {
	if !fires(t.rng, t.prob) {
		t.ClearAffine()
		return img, clonePoints(lms), nil
	}

	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	n := len(lms)

	sx := uniform(t.rng, t.scale.Lo, t.scale.Hi)
	sy := sx
	if t.diff {
		sy = uniform(t.rng, t.scale.Lo, t.scale.Hi)
	}
	fx := 1 + sx
	fy := 1 + sy

	out := imaging.Resize(src, int(float64(w)*fx), int(float64(h)*fy), imaging.Lanczos)

	pts := clonePoints(lms)
	for i := range pts {
		pts[i].X *= fx
		pts[i].Y *= fy
	}
	if len(pts) != n {
		return nil, nil, countMismatch(t.Name(), n, len(pts))
	}

	t.ScaleX, t.ScaleY = fx, fy
	t.applied = true
	return out, pts, nil
}
